// All channels of a timer share one remap option.
package main

import (
	"periph.io/x/conn/v3/physic"

	"gdhal/afio"
	"gdhal/gpio"
	"gdhal/pac"
	"gdhal/pwm"
	"gdhal/rcu"
	"gdhal/timer"
)

func main() {
	p := pac.Simulate()
	r := rcu.New(p.RCU)
	af := afio.New(p.AFIO, r.APB2)
	a := gpio.SplitA(p.GPIOA, r.APB2)
	tim := timer.New(p.TIMER1, rcu.ResetClocks(), r.APB1)
	ch0 := pwm.Ch0[afio.Timer1NoRemap](a.PA0.IntoAlternatePushPull(a.CTL0))
	ch0b := pwm.Ch0[afio.Timer1PartialRemap1](a.PA15.IntoAlternatePushPull(a.CTL1))
	pwm.New(tim, af.PCF0, physic.KiloHertz, ch0, ch0b)
}
