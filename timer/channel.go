package timer

import (
	"gdhal/debug"
	"gdhal/internal/critical"
	"gdhal/pac"
	"gdhal/reg"
)

// Channel is a capture/compare channel number.
type Channel uint8

const (
	Ch0 Channel = iota
	Ch1
	Ch2
	Ch3

	NumChannels = 4
)

// OutputMode is the CHxCOMCTL output compare mode.
type OutputMode uint32

const (
	Frozen          OutputMode = 0b000
	ActiveOnMatch   OutputMode = 0b001
	InactiveOnMatch OutputMode = 0b010
	ToggleOnMatch   OutputMode = 0b011
	ForceLow        OutputMode = 0b100
	ForceHigh       OutputMode = 0b101
	PWM0            OutputMode = 0b110 // high while CNT < CV
	PWM1            OutputMode = 0b111 // low while CNT < CV
)

// Polarity is the active level of a channel output.
type Polarity uint8

const (
	ActiveHigh Polarity = iota
	ActiveLow
)

type channelDesc struct {
	ctl   func(*pac.TIMER_Type) *reg.Register32
	shift uint8
	cv    func(*pac.TIMER_Type) *reg.Register32
}

func chctl0(r *pac.TIMER_Type) *reg.Register32 { return &r.CHCTL0 }
func chctl1(r *pac.TIMER_Type) *reg.Register32 { return &r.CHCTL1 }

var channels = [NumChannels]channelDesc{
	{chctl0, 0, func(r *pac.TIMER_Type) *reg.Register32 { return &r.CH0CV }},
	{chctl0, 8, func(r *pac.TIMER_Type) *reg.Register32 { return &r.CH1CV }},
	{chctl1, 0, func(r *pac.TIMER_Type) *reg.Register32 { return &r.CH2CV }},
	{chctl1, 8, func(r *pac.TIMER_Type) *reg.Register32 { return &r.CH3CV }},
}

// enableBits returns a CHCTL2 field shifted to channel ch.
func enableBits(ch Channel, bits uint32) uint32 {
	return bits << (4 * uint32(ch))
}

// Valid reports whether ch names a channel.
func (ch Channel) Valid() bool {
	return ch < NumChannels
}

func (t *Timer[T]) desc(ch Channel) channelDesc {
	t.check()
	if !ch.Valid() {
		panic("timer: invalid channel")
	}
	return channels[ch]
}

// Compare returns the channel's compare value.
func (t *Timer[T]) Compare(ch Channel) uint32 {
	return t.desc(ch).cv(t.regs).Get() & pac.TIMER_CV_Msk
}

// SetCompare writes the channel's compare value. Only the low 16 bits are
// used.
func (t *Timer[T]) SetCompare(ch Channel, v uint32) {
	t.desc(ch).cv(t.regs).Set(v & pac.TIMER_CV_Msk)
}

// SetOutputMode configures the channel as an output compare channel in mode
// with the compare shadow register enabled.
func (t *Timer[T]) SetOutputMode(ch Channel, mode OutputMode) {
	d := t.desc(ch)
	critical.Do(func() {
		r := d.ctl(t.regs)
		v := r.Get()
		v &^= 0xFF << d.shift
		v |= (uint32(mode)&pac.TIMER_CHCTL_CHCOMCTL_Msk<<pac.TIMER_CHCTL_CHCOMCTL_Pos | pac.TIMER_CHCTL_CHCOMSEN) << d.shift
		r.Set(v)
		debug.Record(debug.EvtChannelMode, t.Index(), uint32(ch), uint32(mode))
	})
}

// OutputMode returns the channel's output compare mode.
func (t *Timer[T]) OutputMode(ch Channel) OutputMode {
	d := t.desc(ch)
	v := d.ctl(t.regs).Get() >> d.shift
	return OutputMode(v >> pac.TIMER_CHCTL_CHCOMCTL_Pos & pac.TIMER_CHCTL_CHCOMCTL_Msk)
}

// EnableOutput connects the channel output to its pin. On TIMER0 the primary
// output enable is switched on as well.
func (t *Timer[T]) EnableOutput(ch Channel) {
	t.desc(ch)
	critical.Do(func() {
		t.regs.CHCTL2.SetBits(enableBits(ch, pac.TIMER_CHCTL2_CHEN))
		if t.raw.Advanced() {
			t.regs.CCHP.SetBits(pac.TIMER_CCHP_POEN)
		}
		debug.Record(debug.EvtChannelOutput, t.Index(), uint32(ch), 1)
	})
}

// DisableOutput disconnects the channel output.
func (t *Timer[T]) DisableOutput(ch Channel) {
	t.desc(ch)
	critical.Do(func() {
		t.regs.CHCTL2.ClearBits(enableBits(ch, pac.TIMER_CHCTL2_CHEN))
		debug.Record(debug.EvtChannelOutput, t.Index(), uint32(ch), 0)
	})
}

// OutputEnabled reports whether the channel output is connected.
func (t *Timer[T]) OutputEnabled(ch Channel) bool {
	t.desc(ch)
	return t.regs.CHCTL2.HasBits(enableBits(ch, pac.TIMER_CHCTL2_CHEN))
}

// SetPolarity sets the active level of the channel output.
func (t *Timer[T]) SetPolarity(ch Channel, p Polarity) {
	t.desc(ch)
	critical.Do(func() {
		if p == ActiveLow {
			t.regs.CHCTL2.SetBits(enableBits(ch, pac.TIMER_CHCTL2_CHP))
		} else {
			t.regs.CHCTL2.ClearBits(enableBits(ch, pac.TIMER_CHCTL2_CHP))
		}
	})
}

// Polarity returns the active level of the channel output.
func (t *Timer[T]) Polarity(ch Channel) Polarity {
	t.desc(ch)
	if t.regs.CHCTL2.HasBits(enableBits(ch, pac.TIMER_CHCTL2_CHP)) {
		return ActiveLow
	}
	return ActiveHigh
}
