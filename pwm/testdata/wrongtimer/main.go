// A TIMER1 remap option cannot configure TIMER2.
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
	tim := timer.New(p.TIMER2, rcu.ResetClocks(), r.APB1)
	ch0 := pwm.Ch0[afio.Timer1NoRemap](a.PA0.IntoAlternatePushPull(a.CTL0))
	pwm.New(tim, af.PCF0, physic.KiloHertz, ch0)
}
