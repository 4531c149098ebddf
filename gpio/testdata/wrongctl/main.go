// A pin of the low group cannot be reconfigured with the CTL1 token.
package main

import (
	"gdhal/gpio"
	"gdhal/pac"
	"gdhal/rcu"
)

func main() {
	p := pac.Simulate()
	r := rcu.New(p.RCU)
	a := gpio.SplitA(p.GPIOA, r.APB2)
	_ = a.PA0.IntoPushPullOutput(a.CTL1)
}
