package pwm

import (
	"gdhal/gpio"
	"gdhal/internal/critical"
	"gdhal/pac"
	"gdhal/timer"
)

// Output is a duty-cycle output.
type Output interface {
	// Enable connects the output to its pin
	Enable()

	// Disable disconnects the output; the pin idles at its inactive level
	Disable()

	// SetDuty sets the duty cycle, 0 (fully off) to MaxDuty() (fully on).
	// Larger values are clamped to MaxDuty().
	SetDuty(duty uint32)

	// Duty returns the current duty cycle
	Duty() uint32

	// MaxDuty returns the duty value of a 100% cycle
	MaxDuty() uint32
}

var _ Output = Channel[*pac.TIMER1]{}

// Channel is one bound channel of a PWM timer.
type Channel[T pac.TimerPeriph] struct {
	pwm *PWM[T]
	ch  timer.Channel
}

// Number returns the channel number.
func (c Channel[T]) Number() timer.Channel {
	return c.ch
}

// Pin returns the pin the channel drives.
func (c Channel[T]) Pin() gpio.Erased {
	return c.pwm.pins[c.ch]
}

func (c Channel[T]) Enable() {
	c.pwm.check()
	c.pwm.tim.EnableOutput(c.ch)
}

func (c Channel[T]) Disable() {
	c.pwm.check()
	c.pwm.tim.DisableOutput(c.ch)
}

// Enabled reports whether the channel output is connected.
func (c Channel[T]) Enabled() bool {
	c.pwm.check()
	return c.pwm.tim.OutputEnabled(c.ch)
}

// SetDuty sets the compare value. Values above MaxDuty are clamped to it,
// which holds the output active for the whole period.
func (c Channel[T]) SetDuty(duty uint32) {
	c.pwm.check()
	c.pwm.setDuty(c.ch, duty)
}

// Duty returns the compare value.
func (c Channel[T]) Duty() uint32 {
	c.pwm.check()
	return c.pwm.tim.Compare(c.ch)
}

// MaxDuty returns the auto-reload value shared by all channels.
func (c Channel[T]) MaxDuty() uint32 {
	return c.pwm.MaxDuty()
}

// SetMode changes the output compare mode. The output is disconnected while
// the mode changes and reconnected if it was enabled.
func (c Channel[T]) SetMode(mode timer.OutputMode) {
	c.pwm.check()
	tim := c.pwm.tim
	critical.Do(func() {
		on := tim.OutputEnabled(c.ch)
		tim.DisableOutput(c.ch)
		tim.SetOutputMode(c.ch, mode)
		if on {
			tim.EnableOutput(c.ch)
		}
	})
}

// SetPolarity sets the active level of the output.
func (c Channel[T]) SetPolarity(p timer.Polarity) {
	c.pwm.check()
	c.pwm.tim.SetPolarity(c.ch, p)
}
