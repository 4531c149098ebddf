// Package afio drives the alternate function I/O block: which pins the
// timers and USARTs are routed to.
//
// Each remap option is a type. Its methods name the pins it routes a
// peripheral's signals to, so drivers can require at compile time that the
// pins they are given match the option they apply.
package afio

import (
	"gdhal/debug"
	"gdhal/internal/critical"
	"gdhal/pac"
	"gdhal/rcu"
)

// AFIO owns the alternate function block.
type AFIO struct {
	PCF0 *PCF0

	raw *pac.AFIO
}

// New enables the AFIO clock and returns its register tokens.
func New(raw *pac.AFIO, apb2 *rcu.APB[pac.APB2]) *AFIO {
	apb2.Enable(raw.EnableMask())
	return &AFIO{
		PCF0: &PCF0{regs: raw.Regs()},
		raw:  raw,
	}
}

// Release disables the AFIO clock and returns the raw peripheral.
func (a *AFIO) Release(apb2 *rcu.APB[pac.APB2]) *pac.AFIO {
	apb2.Disable(a.raw.EnableMask())
	return a.raw
}

// PCF0 is the token for the remap register. Peripheral constructors take it
// by pointer while they apply their remap option.
type PCF0 struct {
	regs *pac.AFIO_Type
}

// Apply writes the remap field of r. Options with no field are no-ops.
func (p *PCF0) Apply(r Remap) {
	mask, pos, value := r.field()
	if mask == 0 {
		return
	}
	critical.Do(func() {
		p.regs.PCF0.ReplaceBits(value, mask, pos)
		debug.Record(debug.EvtRemap, 0, p.regs.PCF0.Get(), 0)
	})
}

// Get returns the raw register value.
func (p *PCF0) Get() uint32 {
	return p.regs.PCF0.Get()
}

// Remap is a remap option of one peripheral.
type Remap interface {
	field() (mask uint32, pos uint8, value uint32)
}

// TimerRemap is a remap option of timer T.
type TimerRemap[T pac.TimerPeriph] interface {
	Remap
	Periph(T)
}

// USARTRemap is a remap option of USART U.
type USARTRemap[U pac.USARTPeriph] interface {
	Remap
	Periph(U)
}
