package serial

import (
	"periph.io/x/conn/v3/physic"

	"gdhal/rcu"
)

const (
	errBaud       = "serial: baud rate must be positive"
	errImpossible = "serial: impossible baudrate"
)

// Parity selects the parity bit.
type Parity uint8

const (
	ParityNone Parity = iota
	ParityEven
	ParityOdd
)

func (p Parity) String() string {
	switch p {
	case ParityEven:
		return "even"
	case ParityOdd:
		return "odd"
	default:
		return "none"
	}
}

// StopBits is the number of stop bits, in CTL1.STB encoding.
type StopBits uint8

const (
	StopBits1   StopBits = 0b00
	StopBits0_5 StopBits = 0b01
	StopBits2   StopBits = 0b10
	StopBits1_5 StopBits = 0b11
)

func (s StopBits) String() string {
	switch s {
	case StopBits0_5:
		return "0.5"
	case StopBits2:
		return "2"
	case StopBits1_5:
		return "1.5"
	default:
		return "1"
	}
}

// Config is the line configuration.
type Config struct {
	Baud     uint32
	Parity   Parity
	StopBits StopBits
}

// DefaultConfig returns 115200 baud, 8N1.
func DefaultConfig() Config {
	return Config{
		Baud:     115200,
		Parity:   ParityNone,
		StopBits: StopBits1,
	}
}

// BaudDivisor returns the integer and fractional parts of the BAUD register
// for baud at peripheral clock clk. The divisor clk/baud is rounded to the
// nearest sixteenth. It panics if baud is zero or the divisor does not fit
// the register.
func BaudDivisor(clk physic.Frequency, baud uint32) (intdiv, fradiv uint32) {
	if baud == 0 {
		panic(errBaud)
	}
	div := divisor(clk, baud)
	if !fits(div) {
		panic(errImpossible)
	}
	return uint32(div >> 4), uint32(div & 0xF)
}

// BaudInRange reports whether BaudDivisor accepts baud at clk.
func BaudInRange(clk physic.Frequency, baud uint32) bool {
	return baud != 0 && fits(divisor(clk, baud))
}

func divisor(clk physic.Frequency, baud uint32) uint64 {
	return (uint64(rcu.Hz(clk)) + uint64(baud)/2) / uint64(baud)
}

func fits(div uint64) bool {
	return div >= 16 && div <= 0xFFFF
}
