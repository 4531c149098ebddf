// A general purpose output cannot be driven by a timer.
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
	_ = pwm.Ch0[afio.Timer1NoRemap](a.PA0.IntoPushPullOutput(a.CTL0))
}
