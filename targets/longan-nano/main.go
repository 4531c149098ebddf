//go:build gd32vf103

// Longan Nano bring-up: USART0 debug console on PA9/PA10, the red LED on
// PC13 as a heartbeat and the green and blue LEDs (PA1, PA2) breathing on
// TIMER1 channels 1 and 2. All three LEDs are active low.
package main

import (
	"periph.io/x/conn/v3/physic"

	"gdhal/afio"
	"gdhal/debug"
	"gdhal/gpio"
	"gdhal/pac"
	"gdhal/pwm"
	"gdhal/rcu"
	"gdhal/timer"
)

func main() {
	p, _ := pac.Take()
	r := rcu.New(p.RCU)
	clocks, err := r.Freeze(rcu.Config{APB1Div: 2})
	if err != nil {
		clocks = rcu.ResetClocks()
	}

	af := afio.New(p.AFIO, r.APB2)
	a := gpio.SplitA(p.GPIOA, r.APB2)
	c := gpio.SplitC(p.GPIOC, r.APB2)

	delay := timer.New(p.TIMER5, clocks, r.APB1)
	red := gpio.AsOutput(c.PC13.IntoPushPullOutput(c.CTL1))
	red.SetHigh()

	con := InitDebugUART(p, r, af, &a, clocks)
	if err != nil {
		debug.Println("clock setup failed: " + err.Error())
		ledBlink(red, delay, 3)
	}

	_, chans := pwm.New(timer.New(p.TIMER1, clocks, r.APB1), af.PCF0, physic.KiloHertz,
		pwm.Ch1[afio.Timer1NoRemap](a.PA1.IntoAlternatePushPull(a.CTL0)),
		pwm.Ch2[afio.Timer1NoRemap](a.PA2.IntoAlternatePushPull(a.CTL0)),
	)
	green, blue := chans[0], chans[1]
	green.SetPolarity(timer.ActiveLow)
	blue.SetPolarity(timer.ActiveLow)

	top := green.MaxDuty()
	step := top / 256
	debug.Println("PWM top=" + debug.Utoa(top))

	level, up := uint32(0), true
	for tick := uint32(0); ; tick++ {
		green.SetDuty(level)
		blue.SetDuty(top - level)

		switch {
		case up && level+step >= top:
			level, up = top, false
		case up:
			level += step
		case level < step:
			level, up = 0, true
		default:
			level -= step
		}

		if tick%128 == 0 {
			red.Toggle()
		}
		pollConsole(con)
		delay.DelayMs(4)
	}
}

// ledBlink blinks the LED a specific number of times for diagnostics
func ledBlink(led gpio.OutputPin, delay *timer.Timer[*pac.TIMER5], count int) {
	for i := 0; i < count; i++ {
		led.SetLow()
		delay.DelayMs(150)
		led.SetHigh()
		delay.DelayMs(150)
	}
	delay.DelayMs(500)
}
