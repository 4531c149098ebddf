// Package board brings a GD32VF103 up from a config.Board: clocks, the PWM
// timer and its channels, and the serial console.
//
// Configurations are values known only at run time, so each supported
// timer and USART remap option has its own case below that names the pins
// statically. A case that does not match its remap option does not compile.
package board

import (
	"fmt"
	"io"

	"periph.io/x/conn/v3/physic"

	"gdhal/afio"
	"gdhal/config"
	"gdhal/debug"
	"gdhal/gpio"
	"gdhal/pac"
	"gdhal/pwm"
	"gdhal/rcu"
	"gdhal/serial"
	"gdhal/timer"
)

// Board is a brought-up board.
type Board struct {
	Name   string
	Clocks rcu.Clocks
	PWM    *PWMReport
	Serial *SerialReport

	// Console is the configured USART, nil without a serial section.
	Console io.ReadWriter
}

// PWMReport describes the running PWM timer.
type PWMReport struct {
	Timer      uint8
	Clock      physic.Frequency
	Prescaler  uint32
	AutoReload uint32
	Achieved   physic.Frequency
	Channels   []ChannelReport
}

// ChannelReport describes one running PWM channel.
type ChannelReport struct {
	Channel  timer.Channel
	Pin      string
	Duty     uint32
	MaxDuty  uint32
	Polarity timer.Polarity
}

// SerialReport describes the configured USART.
type SerialReport struct {
	USART          uint8
	Tx, Rx         string
	Line           serial.Config
	IntDiv, FraDiv uint32
}

type ports struct {
	a gpio.PartsA
	b gpio.PartsB
	c gpio.PartsC
	d gpio.PartsD
	e gpio.PartsE
}

// Bring validates cfg and configures the peripherals in p accordingly.
func Bring(p *pac.Peripherals, cfg *config.Board) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := rcu.New(p.RCU)
	clocks, err := r.Freeze(cfg.Clocks.RCU())
	if err != nil {
		return nil, err
	}
	af := afio.New(p.AFIO, r.APB2)
	gp := &ports{
		a: gpio.SplitA(p.GPIOA, r.APB2),
		b: gpio.SplitB(p.GPIOB, r.APB2),
		c: gpio.SplitC(p.GPIOC, r.APB2),
		d: gpio.SplitD(p.GPIOD, r.APB2),
		e: gpio.SplitE(p.GPIOE, r.APB2),
	}

	b := &Board{Name: cfg.Name, Clocks: clocks}
	if cfg.PWM != nil {
		b.PWM, err = bringPWM(p, r, af, gp, clocks, cfg.PWM)
		if err != nil {
			return nil, err
		}
	}
	if cfg.Serial != nil {
		b.Console, b.Serial, err = bringSerial(p, r, af, gp, clocks, cfg.Serial)
		if err != nil {
			return nil, err
		}
	}
	debug.Println("[BOARD] " + b.Name + " up")
	return b, nil
}

// startPWM binds the configured channels, starts the timer and applies the
// channel duties and polarities.
func startPWM[R afio.TimerRemap[T], T pac.TimerPeriph](tim *timer.Timer[T], pcf0 *afio.PCF0, cfg *config.PWMConfig, binders [timer.NumChannels]func() pwm.Binding[R]) (*PWMReport, error) {
	bindings := make([]pwm.Binding[R], 0, len(cfg.Channels))
	for _, c := range cfg.Channels {
		bindings = append(bindings, binders[c.Channel]())
	}

	p, chans := pwm.New(tim, pcf0, cfg.PWMFrequency(), bindings...)
	psc, car := tim.Timebase()
	rep := &PWMReport{
		Timer:      tim.Index(),
		Clock:      tim.Clock(),
		Prescaler:  psc,
		AutoReload: car,
		Achieved:   p.Frequency(),
	}
	for i, ch := range chans {
		c := cfg.Channels[i]
		pol, err := c.TimerPolarity()
		if err != nil {
			return nil, err
		}
		ch.SetPolarity(pol)
		ch.SetDuty(c.DutyOf(ch.MaxDuty()))
		rep.Channels = append(rep.Channels, ChannelReport{
			Channel:  ch.Number(),
			Pin:      ch.Pin().String(),
			Duty:     ch.Duty(),
			MaxDuty:  ch.MaxDuty(),
			Polarity: pol,
		})
	}
	return rep, nil
}

func bringPWM(p *pac.Peripherals, r *rcu.RCU, af *afio.AFIO, gp *ports, clocks rcu.Clocks, cfg *config.PWMConfig) (*PWMReport, error) {
	a, b, c, d, e := &gp.a, &gp.b, &gp.c, &gp.d, &gp.e

	switch cfg.Timer {
	case 0:
		tim := timer.New(p.TIMER0, clocks, r.APB2)
		switch cfg.Remap {
		case config.RemapNone:
			type R = afio.Timer0NoRemap
			return startPWM(tim, af.PCF0, cfg, [4]func() pwm.Binding[R]{
				func() pwm.Binding[R] { return pwm.Ch0[R](a.PA8.IntoAlternatePushPull(a.CTL1)) },
				func() pwm.Binding[R] { return pwm.Ch1[R](a.PA9.IntoAlternatePushPull(a.CTL1)) },
				func() pwm.Binding[R] { return pwm.Ch2[R](a.PA10.IntoAlternatePushPull(a.CTL1)) },
				func() pwm.Binding[R] { return pwm.Ch3[R](a.PA11.IntoAlternatePushPull(a.CTL1)) },
			})
		case config.RemapPartial:
			type R = afio.Timer0PartialRemap
			return startPWM(tim, af.PCF0, cfg, [4]func() pwm.Binding[R]{
				func() pwm.Binding[R] { return pwm.Ch0[R](a.PA8.IntoAlternatePushPull(a.CTL1)) },
				func() pwm.Binding[R] { return pwm.Ch1[R](a.PA9.IntoAlternatePushPull(a.CTL1)) },
				func() pwm.Binding[R] { return pwm.Ch2[R](a.PA10.IntoAlternatePushPull(a.CTL1)) },
				func() pwm.Binding[R] { return pwm.Ch3[R](a.PA11.IntoAlternatePushPull(a.CTL1)) },
			})
		case config.RemapFull:
			type R = afio.Timer0FullRemap
			return startPWM(tim, af.PCF0, cfg, [4]func() pwm.Binding[R]{
				func() pwm.Binding[R] { return pwm.Ch0[R](e.PE9.IntoAlternatePushPull(e.CTL1)) },
				func() pwm.Binding[R] { return pwm.Ch1[R](e.PE11.IntoAlternatePushPull(e.CTL1)) },
				func() pwm.Binding[R] { return pwm.Ch2[R](e.PE13.IntoAlternatePushPull(e.CTL1)) },
				func() pwm.Binding[R] { return pwm.Ch3[R](e.PE14.IntoAlternatePushPull(e.CTL1)) },
			})
		}

	case 1:
		tim := timer.New(p.TIMER1, clocks, r.APB1)
		switch cfg.Remap {
		case config.RemapNone:
			type R = afio.Timer1NoRemap
			return startPWM(tim, af.PCF0, cfg, [4]func() pwm.Binding[R]{
				func() pwm.Binding[R] { return pwm.Ch0[R](a.PA0.IntoAlternatePushPull(a.CTL0)) },
				func() pwm.Binding[R] { return pwm.Ch1[R](a.PA1.IntoAlternatePushPull(a.CTL0)) },
				func() pwm.Binding[R] { return pwm.Ch2[R](a.PA2.IntoAlternatePushPull(a.CTL0)) },
				func() pwm.Binding[R] { return pwm.Ch3[R](a.PA3.IntoAlternatePushPull(a.CTL0)) },
			})
		case config.RemapPartial1:
			type R = afio.Timer1PartialRemap1
			return startPWM(tim, af.PCF0, cfg, [4]func() pwm.Binding[R]{
				func() pwm.Binding[R] { return pwm.Ch0[R](a.PA15.IntoAlternatePushPull(a.CTL1)) },
				func() pwm.Binding[R] { return pwm.Ch1[R](b.PB3.IntoAlternatePushPull(b.CTL0)) },
				func() pwm.Binding[R] { return pwm.Ch2[R](a.PA2.IntoAlternatePushPull(a.CTL0)) },
				func() pwm.Binding[R] { return pwm.Ch3[R](a.PA3.IntoAlternatePushPull(a.CTL0)) },
			})
		case config.RemapPartial2:
			type R = afio.Timer1PartialRemap2
			return startPWM(tim, af.PCF0, cfg, [4]func() pwm.Binding[R]{
				func() pwm.Binding[R] { return pwm.Ch0[R](a.PA0.IntoAlternatePushPull(a.CTL0)) },
				func() pwm.Binding[R] { return pwm.Ch1[R](a.PA1.IntoAlternatePushPull(a.CTL0)) },
				func() pwm.Binding[R] { return pwm.Ch2[R](b.PB10.IntoAlternatePushPull(b.CTL1)) },
				func() pwm.Binding[R] { return pwm.Ch3[R](b.PB11.IntoAlternatePushPull(b.CTL1)) },
			})
		case config.RemapFull:
			type R = afio.Timer1FullRemap
			return startPWM(tim, af.PCF0, cfg, [4]func() pwm.Binding[R]{
				func() pwm.Binding[R] { return pwm.Ch0[R](a.PA15.IntoAlternatePushPull(a.CTL1)) },
				func() pwm.Binding[R] { return pwm.Ch1[R](b.PB3.IntoAlternatePushPull(b.CTL0)) },
				func() pwm.Binding[R] { return pwm.Ch2[R](b.PB10.IntoAlternatePushPull(b.CTL1)) },
				func() pwm.Binding[R] { return pwm.Ch3[R](b.PB11.IntoAlternatePushPull(b.CTL1)) },
			})
		}

	case 2:
		tim := timer.New(p.TIMER2, clocks, r.APB1)
		switch cfg.Remap {
		case config.RemapNone:
			type R = afio.Timer2NoRemap
			return startPWM(tim, af.PCF0, cfg, [4]func() pwm.Binding[R]{
				func() pwm.Binding[R] { return pwm.Ch0[R](a.PA6.IntoAlternatePushPull(a.CTL0)) },
				func() pwm.Binding[R] { return pwm.Ch1[R](a.PA7.IntoAlternatePushPull(a.CTL0)) },
				func() pwm.Binding[R] { return pwm.Ch2[R](b.PB0.IntoAlternatePushPull(b.CTL0)) },
				func() pwm.Binding[R] { return pwm.Ch3[R](b.PB1.IntoAlternatePushPull(b.CTL0)) },
			})
		case config.RemapPartial:
			type R = afio.Timer2PartialRemap
			return startPWM(tim, af.PCF0, cfg, [4]func() pwm.Binding[R]{
				func() pwm.Binding[R] { return pwm.Ch0[R](b.PB4.IntoAlternatePushPull(b.CTL0)) },
				func() pwm.Binding[R] { return pwm.Ch1[R](b.PB5.IntoAlternatePushPull(b.CTL0)) },
				func() pwm.Binding[R] { return pwm.Ch2[R](b.PB0.IntoAlternatePushPull(b.CTL0)) },
				func() pwm.Binding[R] { return pwm.Ch3[R](b.PB1.IntoAlternatePushPull(b.CTL0)) },
			})
		case config.RemapFull:
			type R = afio.Timer2FullRemap
			return startPWM(tim, af.PCF0, cfg, [4]func() pwm.Binding[R]{
				func() pwm.Binding[R] { return pwm.Ch0[R](c.PC6.IntoAlternatePushPull(c.CTL0)) },
				func() pwm.Binding[R] { return pwm.Ch1[R](c.PC7.IntoAlternatePushPull(c.CTL0)) },
				func() pwm.Binding[R] { return pwm.Ch2[R](c.PC8.IntoAlternatePushPull(c.CTL1)) },
				func() pwm.Binding[R] { return pwm.Ch3[R](c.PC9.IntoAlternatePushPull(c.CTL1)) },
			})
		}

	case 3:
		tim := timer.New(p.TIMER3, clocks, r.APB1)
		switch cfg.Remap {
		case config.RemapNone:
			type R = afio.Timer3NoRemap
			return startPWM(tim, af.PCF0, cfg, [4]func() pwm.Binding[R]{
				func() pwm.Binding[R] { return pwm.Ch0[R](b.PB6.IntoAlternatePushPull(b.CTL0)) },
				func() pwm.Binding[R] { return pwm.Ch1[R](b.PB7.IntoAlternatePushPull(b.CTL0)) },
				func() pwm.Binding[R] { return pwm.Ch2[R](b.PB8.IntoAlternatePushPull(b.CTL1)) },
				func() pwm.Binding[R] { return pwm.Ch3[R](b.PB9.IntoAlternatePushPull(b.CTL1)) },
			})
		case config.RemapOn:
			type R = afio.Timer3Remap
			return startPWM(tim, af.PCF0, cfg, [4]func() pwm.Binding[R]{
				func() pwm.Binding[R] { return pwm.Ch0[R](d.PD12.IntoAlternatePushPull(d.CTL1)) },
				func() pwm.Binding[R] { return pwm.Ch1[R](d.PD13.IntoAlternatePushPull(d.CTL1)) },
				func() pwm.Binding[R] { return pwm.Ch2[R](d.PD14.IntoAlternatePushPull(d.CTL1)) },
				func() pwm.Binding[R] { return pwm.Ch3[R](d.PD15.IntoAlternatePushPull(d.CTL1)) },
			})
		}

	case 4:
		tim := timer.New(p.TIMER4, clocks, r.APB1)
		if cfg.Remap == config.RemapNone {
			type R = afio.Timer4NoRemap
			return startPWM(tim, af.PCF0, cfg, [4]func() pwm.Binding[R]{
				func() pwm.Binding[R] { return pwm.Ch0[R](a.PA0.IntoAlternatePushPull(a.CTL0)) },
				func() pwm.Binding[R] { return pwm.Ch1[R](a.PA1.IntoAlternatePushPull(a.CTL0)) },
				func() pwm.Binding[R] { return pwm.Ch2[R](a.PA2.IntoAlternatePushPull(a.CTL0)) },
				func() pwm.Binding[R] { return pwm.Ch3[R](a.PA3.IntoAlternatePushPull(a.CTL0)) },
			})
		}
	}
	return nil, fmt.Errorf("%w: TIMER%d remap %q", config.ErrInvalid, cfg.Timer, cfg.Remap)
}

func bringSerial(p *pac.Peripherals, r *rcu.RCU, af *afio.AFIO, gp *ports, clocks rcu.Clocks, cfg *config.SerialConfig) (io.ReadWriter, *SerialReport, error) {
	line, err := cfg.Line()
	if err != nil {
		return nil, nil, err
	}
	pins, err := config.USARTPins(cfg.USART, cfg.Remap)
	if err != nil {
		return nil, nil, err
	}
	intdiv, fradiv := serial.BaudDivisor(cfg.Clock(clocks), line.Baud)
	rep := &SerialReport{
		USART:  cfg.USART,
		Tx:     pins[0],
		Rx:     pins[1],
		Line:   line,
		IntDiv: intdiv,
		FraDiv: fradiv,
	}

	a, b, c, d := &gp.a, &gp.b, &gp.c, &gp.d
	var con io.ReadWriter
	switch {
	case cfg.USART == 0 && cfg.Remap == config.RemapNone:
		con = serial.New[afio.USART0NoRemap](p.USART0, a.PA9.IntoAlternatePushPull(a.CTL1), a.PA10, af.PCF0, line, clocks, r.APB2)
	case cfg.USART == 0 && cfg.Remap == config.RemapOn:
		con = serial.New[afio.USART0Remap](p.USART0, b.PB6.IntoAlternatePushPull(b.CTL0), b.PB7, af.PCF0, line, clocks, r.APB2)
	case cfg.USART == 1 && cfg.Remap == config.RemapNone:
		con = serial.New[afio.USART1NoRemap](p.USART1, a.PA2.IntoAlternatePushPull(a.CTL0), a.PA3, af.PCF0, line, clocks, r.APB1)
	case cfg.USART == 1 && cfg.Remap == config.RemapOn:
		con = serial.New[afio.USART1Remap](p.USART1, d.PD5.IntoAlternatePushPull(d.CTL0), d.PD6, af.PCF0, line, clocks, r.APB1)
	case cfg.USART == 2 && cfg.Remap == config.RemapNone:
		con = serial.New[afio.USART2NoRemap](p.USART2, b.PB10.IntoAlternatePushPull(b.CTL1), b.PB11, af.PCF0, line, clocks, r.APB1)
	case cfg.USART == 2 && cfg.Remap == config.RemapPartial:
		con = serial.New[afio.USART2PartialRemap](p.USART2, c.PC10.IntoAlternatePushPull(c.CTL1), c.PC11, af.PCF0, line, clocks, r.APB1)
	case cfg.USART == 2 && cfg.Remap == config.RemapFull:
		con = serial.New[afio.USART2FullRemap](p.USART2, d.PD8.IntoAlternatePushPull(d.CTL1), d.PD9, af.PCF0, line, clocks, r.APB1)
	default:
		return nil, nil, fmt.Errorf("%w: USART%d remap %q", config.ErrInvalid, cfg.USART, cfg.Remap)
	}
	return con, rep, nil
}
