// An analog input has no digital read view.
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
	_ = gpio.AsInput(a.PA0.IntoAnalog(a.CTL0))
}
