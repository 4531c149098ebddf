// Package rcu wraps the reset and clock unit: the per-bus clock-enable and
// reset handles peripherals are constructed with, and the system clock
// prescaler configuration.
package rcu

import (
	"gdhal/debug"
	"gdhal/internal/critical"
	"gdhal/pac"
	"gdhal/reg"
)

// RCU owns the reset and clock unit. Its bus handles are passed by pointer to
// peripheral constructors, which gives them exclusive use of the shared
// enable and reset registers for the duration of the call.
type RCU struct {
	APB1 *APB[pac.APB1]
	APB2 *APB[pac.APB2]

	raw *pac.RCU
}

// New takes ownership of the clock unit.
func New(raw *pac.RCU) *RCU {
	return &RCU{
		APB1: &APB[pac.APB1]{regs: raw.Regs()},
		APB2: &APB[pac.APB2]{regs: raw.Regs()},
		raw:  raw,
	}
}

// Release returns the raw peripheral.
func (r *RCU) Release() *pac.RCU {
	return r.raw
}

// APB is the enable/reset handle for the peripherals clocked by bus B.
type APB[B pac.Bus] struct {
	regs *pac.RCU_Type
}

func (a *APB[B]) apb2() bool {
	_, ok := any(*new(B)).(pac.APB2)
	return ok
}

func (a *APB[B]) enr() *reg.Register32 {
	if a.apb2() {
		return &a.regs.APB2EN
	}
	return &a.regs.APB1EN
}

func (a *APB[B]) rstr() *reg.Register32 {
	if a.apb2() {
		return &a.regs.APB2RST
	}
	return &a.regs.APB1RST
}

func (a *APB[B]) bus() uint32 {
	if a.apb2() {
		return 2
	}
	return 1
}

// Enable turns on the bus clock of the peripherals in mask.
func (a *APB[B]) Enable(mask uint32) {
	critical.Do(func() {
		a.enr().SetBits(mask)
		debug.Record(debug.EvtClockEnable, 0, a.bus(), mask)
	})
}

// Disable turns off the bus clock of the peripherals in mask.
func (a *APB[B]) Disable(mask uint32) {
	critical.Do(func() {
		a.enr().ClearBits(mask)
	})
}

// IsEnabled reports whether every clock in mask is on.
func (a *APB[B]) IsEnabled(mask uint32) bool {
	return a.enr().Get()&mask == mask
}

// Reset asserts and then releases the reset line of the peripherals in mask.
// Their registers hold reset values afterwards.
func (a *APB[B]) Reset(mask uint32) {
	critical.Do(func() {
		r := a.rstr()
		r.SetBits(mask)
		r.ClearBits(mask)
		pac.AfterReset(a.regs, a.apb2(), mask)
		debug.Record(debug.EvtResetPulse, 0, a.bus(), mask)
	})
}
