// Package pwm turns a timer and up to four of its channel pins into PWM
// outputs sharing one frequency.
//
// Which pins may drive which channel depends on the AFIO remap option in
// use. Pins are bound with Ch0..Ch3, instantiated with the remap option:
//
//	ch0 := pwm.Ch0[afio.Timer1NoRemap](pa0)
//	p, chans := pwm.New(tim, afio.PCF0, physic.KiloHertz, ch0)
//
// A pin the option does not route to that channel, a pin not in an
// alternate function mode, or an option that belongs to another timer fails
// to compile.
package pwm

import (
	"errors"

	"periph.io/x/conn/v3/physic"

	"gdhal/afio"
	"gdhal/debug"
	"gdhal/gpio"
	"gdhal/internal/critical"
	"gdhal/pac"
	"gdhal/timer"
)

const (
	errDuplicate = "pwm: channel bound twice"
	errNoPins    = "pwm: no channel bound"
	errReleased  = "pwm: used after release"
)

var (
	ErrInvalidChannel     = errors.New("pwm: invalid channel")
	ErrChannelNotAssigned = errors.New("pwm: channel not assigned")
)

// Binding is a pin handed to channel Ch of the timer remapped by R.
type Binding[R afio.Remap] struct {
	ch  timer.Channel
	pin gpio.Erased
}

// Channel returns the bound channel.
func (b Binding[R]) Channel() timer.Channel { return b.ch }

// Ch0Route is satisfied by the remap options that route channel 0 to pin I.
type Ch0Route[I any] interface {
	afio.Remap
	Ch0(I)
}

// Ch1Route is satisfied by the remap options that route channel 1 to pin I.
type Ch1Route[I any] interface {
	afio.Remap
	Ch1(I)
}

// Ch2Route is satisfied by the remap options that route channel 2 to pin I.
type Ch2Route[I any] interface {
	afio.Remap
	Ch2(I)
}

// Ch3Route is satisfied by the remap options that route channel 3 to pin I.
type Ch3Route[I any] interface {
	afio.Remap
	Ch3(I)
}

// Ch0 binds p to channel 0 under remap option R.
func Ch0[R Ch0Route[I], G gpio.Group, I gpio.ID[G], D gpio.Drive](p gpio.Pin[G, I, gpio.Alternate[D]]) Binding[R] {
	return Binding[R]{ch: timer.Ch0, pin: p.Erase()}
}

// Ch1 binds p to channel 1 under remap option R.
func Ch1[R Ch1Route[I], G gpio.Group, I gpio.ID[G], D gpio.Drive](p gpio.Pin[G, I, gpio.Alternate[D]]) Binding[R] {
	return Binding[R]{ch: timer.Ch1, pin: p.Erase()}
}

// Ch2 binds p to channel 2 under remap option R.
func Ch2[R Ch2Route[I], G gpio.Group, I gpio.ID[G], D gpio.Drive](p gpio.Pin[G, I, gpio.Alternate[D]]) Binding[R] {
	return Binding[R]{ch: timer.Ch2, pin: p.Erase()}
}

// Ch3 binds p to channel 3 under remap option R.
func Ch3[R Ch3Route[I], G gpio.Group, I gpio.ID[G], D gpio.Drive](p gpio.Pin[G, I, gpio.Alternate[D]]) Binding[R] {
	return Binding[R]{ch: timer.Ch3, pin: p.Erase()}
}

// PWM is a running PWM timer. The prescaler and period are shared by all of
// its channels.
type PWM[T pac.TimerPeriph] struct {
	tim      *timer.Timer[T]
	assigned [timer.NumChannels]bool
	pins     [timer.NumChannels]gpio.Erased
	released bool
}

// New applies remap R, brings the timer from reset to a running edge
// aligned PWM generator at freq and returns one Channel per binding, in
// binding order. Channels start enabled at zero duty.
//
// The whole sequence runs in one critical section. If it is interrupted by
// a fault the counter is left off; calling New again starts over from the
// reset pulse. New panics if a channel is bound twice or freq cannot be
// reached from the timer clock.
func New[R afio.TimerRemap[T], T pac.TimerPeriph](tim *timer.Timer[T], pcf0 *afio.PCF0, freq physic.Frequency, bindings ...Binding[R]) (*PWM[T], []Channel[T]) {
	if len(bindings) == 0 {
		panic(errNoPins)
	}
	p := &PWM[T]{tim: tim}
	for _, b := range bindings {
		if p.assigned[b.ch] {
			panic(errDuplicate)
		}
		p.assigned[b.ch] = true
		p.pins[b.ch] = b.pin
	}
	psc, car := timer.Prescalers(tim.Clock(), freq)

	var remap R
	critical.Do(func() {
		pcf0.Apply(remap)
		tim.Reset()
		tim.SetTimebase(psc, car)
		for _, b := range bindings {
			tim.SetOutputMode(b.ch, timer.PWM0)
		}
		tim.GenerateUpdate()
		tim.EnableAutoReload()
		tim.StartCounter()
		for _, b := range bindings {
			tim.SetCompare(b.ch, 0)
			tim.SetPolarity(b.ch, timer.ActiveHigh)
			tim.EnableOutput(b.ch)
		}
	})
	debug.Println("[PWM] TIMER" + debug.Utoa(uint32(tim.Index())) + " psc=" + debug.Utoa(psc) + " car=" + debug.Utoa(car))

	chans := make([]Channel[T], len(bindings))
	for i, b := range bindings {
		chans[i] = Channel[T]{pwm: p, ch: b.ch}
	}
	return p, chans
}

func (p *PWM[T]) check() {
	if p.released {
		panic(errReleased)
	}
}

func (p *PWM[T]) channel(ch timer.Channel) error {
	p.check()
	if !ch.Valid() {
		return ErrInvalidChannel
	}
	if !p.assigned[ch] {
		return ErrChannelNotAssigned
	}
	return nil
}

// MaxDuty returns the duty value of a 100% cycle: the auto-reload value.
func (p *PWM[T]) MaxDuty() uint32 {
	p.check()
	_, car := p.tim.Timebase()
	return car
}

// Frequency returns the frequency the timer actually runs at, which can be
// above the requested one (see timer.Prescalers).
func (p *PWM[T]) Frequency() physic.Frequency {
	p.check()
	psc, car := p.tim.Timebase()
	return timer.Achieved(p.tim.Clock(), psc, car)
}

// SetFrequency changes the frequency of every channel. The new period is
// latched at the next overflow. Compare values are kept as they are, so
// duty cycles change with the period.
func (p *PWM[T]) SetFrequency(freq physic.Frequency) {
	p.check()
	psc, car := timer.Prescalers(p.tim.Clock(), freq)
	p.tim.SetPeriod(psc, car)
}

// Enable connects channel ch to its pin.
func (p *PWM[T]) Enable(ch timer.Channel) error {
	if err := p.channel(ch); err != nil {
		return err
	}
	p.tim.EnableOutput(ch)
	return nil
}

// Disable disconnects channel ch.
func (p *PWM[T]) Disable(ch timer.Channel) error {
	if err := p.channel(ch); err != nil {
		return err
	}
	p.tim.DisableOutput(ch)
	return nil
}

// SetDuty sets the compare value of channel ch, clamped to MaxDuty.
func (p *PWM[T]) SetDuty(ch timer.Channel, duty uint32) error {
	if err := p.channel(ch); err != nil {
		return err
	}
	p.setDuty(ch, duty)
	return nil
}

// Duty returns the compare value of channel ch.
func (p *PWM[T]) Duty(ch timer.Channel) (uint32, error) {
	if err := p.channel(ch); err != nil {
		return 0, err
	}
	return p.tim.Compare(ch), nil
}

func (p *PWM[T]) setDuty(ch timer.Channel, duty uint32) {
	if top := p.MaxDuty(); duty > top {
		duty = top
	}
	p.tim.SetCompare(ch, duty)
}

// Release disables every channel, stops the counter and returns the timer.
// Channels of p panic afterwards.
func (p *PWM[T]) Release() *timer.Timer[T] {
	p.check()
	critical.Do(func() {
		for ch, on := range p.assigned {
			if on {
				p.tim.DisableOutput(timer.Channel(ch))
			}
		}
		p.tim.StopCounter()
	})
	p.released = true
	return p.tim
}
