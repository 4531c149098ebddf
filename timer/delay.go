package timer

import (
	"gdhal/internal/critical"
	"gdhal/pac"
	"gdhal/rcu"
)

// Start runs the timer as a count-down of count ticks of the kernel clock
// divided by the clock scaler. The counter runs from 0 to CAR, so CAR holds
// count-1. A zero count stops the counter and leaves the update flag raised
// by the software update event, so Wait succeeds at once.
func (t *Timer[T]) Start(count uint16) {
	t.check()
	critical.Do(func() {
		t.regs.PSC.Set(t.clockScaler - 1)
		if count == 0 {
			t.regs.CTL0.ClearBits(pac.TIMER_CTL0_CEN)
			t.regs.SWEVG.Set(pac.TIMER_SWEVG_UPG)
			// UPG raises UPIF; writing a one leaves it as is.
			t.regs.INTF.SetBits(pac.TIMER_INTF_UPIF)
			return
		}
		t.regs.INTF.ClearBits(pac.TIMER_INTF_UPIF)
		t.regs.SWEVG.Set(pac.TIMER_SWEVG_UPG)
		t.regs.INTF.ClearBits(pac.TIMER_INTF_UPIF)
		t.regs.CAR.Set(uint32(count) - 1)
		t.regs.CTL0.SetBits(pac.TIMER_CTL0_CEN)
	})
}

// Wait returns ErrWouldBlock until the count-down started by Start expires.
// It then clears the update flag, so the next period can be waited for.
func (t *Timer[T]) Wait() error {
	t.check()
	if !t.regs.INTF.HasBits(pac.TIMER_INTF_UPIF) {
		return ErrWouldBlock
	}
	t.regs.INTF.ClearBits(pac.TIMER_INTF_UPIF)
	return nil
}

// DelayMs blocks for ms milliseconds. It panics if the delay does not fit
// the 16-bit counter at the current clock.
func (t *Timer[T]) DelayMs(ms uint32) {
	t.check()
	count := uint64(ms) * uint64(rcu.Hz(t.clk)) / (uint64(t.clockScaler) * 1000)
	if count > 0xFFFF {
		panic(errTooLong)
	}
	t.Start(uint16(count))
	for t.Wait() == ErrWouldBlock {
	}
}
