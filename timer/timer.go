// Package timer wraps the GD32VF103 timers: ownership of the register block,
// the prescaler and auto-reload arithmetic, and the per-channel compare
// registers that PWM and count-down users build on.
package timer

import (
	"errors"

	"periph.io/x/conn/v3/physic"

	"gdhal/debug"
	"gdhal/internal/critical"
	"gdhal/pac"
	"gdhal/rcu"
)

const (
	errFrequency = "timer: frequency out of range"
	errTooLong   = "timer: can not delay that long"
	errReleased  = "timer: used after release"

	// maxPeriod is the number of counts of the 16-bit counter.
	maxPeriod = 1 << 16
)

var ErrWouldBlock = errors.New("timer: would block")

// Timer owns one timer peripheral.
type Timer[T pac.TimerPeriph] struct {
	raw      T
	regs     *pac.TIMER_Type
	clk      physic.Frequency
	reset    func()
	released bool

	// clockScaler is the prescaler used by the count-down operations.
	clockScaler uint32
}

// New enables the timer's bus clock, pulses its reset line and records its
// kernel clock. The apb handle must be the one for the bus clocking raw.
func New[T pac.Timer[B], B pac.Bus](raw T, clocks rcu.Clocks, apb *rcu.APB[B]) *Timer[T] {
	mask := raw.EnableMask()
	t := &Timer[T]{
		raw:  raw,
		regs: raw.Regs(),
		clk:  apb.TimerClock(clocks),
		reset: func() {
			critical.Do(func() {
				apb.Enable(mask)
				apb.Reset(mask)
			})
		},
		clockScaler: 1000,
	}
	t.reset()
	return t
}

// Release returns the raw peripheral. The timer keeps running, but every
// later call on t panics.
func (t *Timer[T]) Release() T {
	t.check()
	t.released = true
	return t.raw
}

func (t *Timer[T]) check() {
	if t.released {
		panic(errReleased)
	}
}

// Reset enables the clock again and pulses the reset line, returning every
// register to its reset value.
func (t *Timer[T]) Reset() {
	t.check()
	t.reset()
}

// Clock returns the timer kernel clock.
func (t *Timer[T]) Clock() physic.Frequency {
	t.check()
	return t.clk
}

// Regs returns the register block.
func (t *Timer[T]) Regs() *pac.TIMER_Type {
	t.check()
	return t.regs
}

// Index returns the timer instance number.
func (t *Timer[T]) Index() uint8 {
	t.check()
	return t.raw.Index()
}

// Prescalers returns the prescaler and auto-reload values that make a timer
// clocked at clk overflow at freq: ticks = clk/freq, psc = ticks/65536 and
// car = ticks/(psc+1) - 1.
//
// Both divisions truncate, so the achieved frequency (see Achieved) can be
// above freq by up to one part in car+1. The error is not corrected. It
// panics if freq is not positive, above clk, or too low for a 16-bit
// prescaler.
func Prescalers(clk, freq physic.Frequency) (psc, car uint32) {
	ticks, ok := split(clk, freq)
	if !ok {
		panic(errFrequency)
	}
	p := ticks / maxPeriod
	return uint32(p), uint32(ticks/(p+1) - 1)
}

// InRange reports whether Prescalers can reach freq from clk.
func InRange(clk, freq physic.Frequency) bool {
	_, ok := split(clk, freq)
	return ok
}

func split(clk, freq physic.Frequency) (ticks uint64, ok bool) {
	if freq <= 0 || clk <= 0 {
		return 0, false
	}
	ticks = uint64(clk / freq)
	if ticks == 0 || ticks/maxPeriod > pac.TIMER_PSC_Msk {
		return 0, false
	}
	return ticks, true
}

// Achieved returns the overflow frequency of a timer clocked at clk with the
// given prescaler and auto-reload values.
func Achieved(clk physic.Frequency, psc, car uint32) physic.Frequency {
	return clk / physic.Frequency((uint64(psc)+1)*(uint64(car)+1))
}

// SetTimebase disables the counter and writes the prescaler and auto-reload
// registers.
func (t *Timer[T]) SetTimebase(psc, car uint32) {
	t.check()
	critical.Do(func() {
		t.regs.CTL0.ClearBits(pac.TIMER_CTL0_CEN)
		t.regs.PSC.Set(psc & pac.TIMER_PSC_Msk)
		t.regs.CAR.Set(car & pac.TIMER_CAR_Msk)
		debug.Record(debug.EvtTimebase, t.Index(), psc, car)
	})
}

// SetPeriod writes the prescaler and auto-reload registers without stopping
// the counter. With auto-reload shadowing on, the new period takes effect at
// the next overflow.
func (t *Timer[T]) SetPeriod(psc, car uint32) {
	t.check()
	critical.Do(func() {
		t.regs.PSC.Set(psc & pac.TIMER_PSC_Msk)
		t.regs.CAR.Set(car & pac.TIMER_CAR_Msk)
		debug.Record(debug.EvtTimebase, t.Index(), psc, car)
	})
}

// Timebase returns the prescaler and auto-reload registers.
func (t *Timer[T]) Timebase() (psc, car uint32) {
	t.check()
	return t.regs.PSC.Get() & pac.TIMER_PSC_Msk, t.regs.CAR.Get() & pac.TIMER_CAR_Msk
}

// GenerateUpdate issues a software update event, latching the shadow
// registers, and clears the update flag it raises.
func (t *Timer[T]) GenerateUpdate() {
	t.check()
	t.regs.SWEVG.Set(pac.TIMER_SWEVG_UPG)
	t.regs.INTF.ClearBits(pac.TIMER_INTF_UPIF)
	debug.Record(debug.EvtUpdate, t.Index(), 0, 0)
}

// EnableAutoReload turns on auto-reload shadowing: CAR writes take effect at
// the next overflow.
func (t *Timer[T]) EnableAutoReload() {
	t.check()
	t.regs.CTL0.SetBits(pac.TIMER_CTL0_ARSE)
	debug.Record(debug.EvtAutoReload, t.Index(), 0, 0)
}

// StartCounter starts the counter edge aligned, counting up, free running.
func (t *Timer[T]) StartCounter() {
	t.check()
	critical.Do(func() {
		ctl := t.regs.CTL0.Get()
		ctl &^= pac.TIMER_CTL0_CAM_Msk << pac.TIMER_CTL0_CAM_Pos
		ctl &^= pac.TIMER_CTL0_DIR | pac.TIMER_CTL0_SPM
		t.regs.CTL0.Set(ctl | pac.TIMER_CTL0_CEN)
		debug.Record(debug.EvtCounterStart, t.Index(), 0, 0)
	})
}

// StopCounter stops the counter.
func (t *Timer[T]) StopCounter() {
	t.check()
	t.regs.CTL0.ClearBits(pac.TIMER_CTL0_CEN)
	debug.Record(debug.EvtCounterStop, t.Index(), 0, 0)
}

// Running reports whether the counter is enabled.
func (t *Timer[T]) Running() bool {
	t.check()
	return t.regs.CTL0.HasBits(pac.TIMER_CTL0_CEN)
}
