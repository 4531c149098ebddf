package pwm

import (
	"errors"

	pgpio "periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"

	"gdhal/pac"
)

var ErrFrequency = errors.New("pwm: frequency is shared by all channels")

// PinOut adapts a channel to periph.io's gpio.PinOut so device drivers
// written against periph can drive it.
type PinOut[T pac.TimerPeriph] struct {
	c Channel[T]
}

var _ pgpio.PinOut = (*PinOut[*pac.TIMER1])(nil)

// NewPinOut wraps c.
func NewPinOut[T pac.TimerPeriph](c Channel[T]) *PinOut[T] {
	return &PinOut[T]{c: c}
}

func (p *PinOut[T]) String() string {
	return p.Name() + "(" + p.c.Pin().String() + ")"
}

// Name returns the timer channel name, e.g. TIMER1_CH0.
func (p *PinOut[T]) Name() string {
	return "TIMER" + string(rune('0'+p.c.pwm.tim.Index())) + "_CH" + string(rune('0'+p.c.Number()))
}

// Number returns the channel number.
func (p *PinOut[T]) Number() int {
	return int(p.c.Number())
}

// Deprecated: returns "PWM"
func (p *PinOut[T]) Function() string {
	return "PWM"
}

// Halt implements conn.Resource by disabling the output.
func (p *PinOut[T]) Halt() error {
	p.c.Disable()
	return nil
}

// Out forces the output to l: 0% or 100% duty.
func (p *PinOut[T]) Out(l pgpio.Level) error {
	if l == pgpio.High {
		p.c.SetDuty(p.c.MaxDuty())
	} else {
		p.c.SetDuty(0)
	}
	p.c.Enable()
	return nil
}

// PWM sets the duty cycle, scaled from periph's 24-bit duty range to the
// timer period. f must be 0 or the current frequency, since the period is
// shared by all channels of the timer.
func (p *PinOut[T]) PWM(duty pgpio.Duty, f physic.Frequency) error {
	if !duty.Valid() {
		return errors.New("pwm: invalid duty " + duty.String())
	}
	if f != 0 && f != p.c.pwm.Frequency() {
		return ErrFrequency
	}
	top := uint64(p.c.MaxDuty())
	p.c.SetDuty(uint32(uint64(duty) * top / uint64(pgpio.DutyMax)))
	p.c.Enable()
	return nil
}
