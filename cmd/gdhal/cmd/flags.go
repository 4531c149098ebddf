package cmd

import "periph.io/x/conn/v3/physic"

// freqFlag adapts a physic.Frequency to a pflag value.
type freqFlag struct {
	f *physic.Frequency
}

func (v freqFlag) String() string     { return v.f.String() }
func (v freqFlag) Set(s string) error { return v.f.Set(s) }
func (v freqFlag) Type() string       { return "frequency" }
