// PA1 is channel 1 of TIMER1, not channel 0.
package main

import (
	"gdhal/afio"
	"gdhal/gpio"
	"gdhal/pac"
	"gdhal/pwm"
	"gdhal/rcu"
)

func main() {
	p := pac.Simulate()
	r := rcu.New(p.RCU)
	a := gpio.SplitA(p.GPIOA, r.APB2)
	_ = pwm.Ch0[afio.Timer1NoRemap](a.PA1.IntoAlternatePushPull(a.CTL0))
}
