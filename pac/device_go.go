//go:build !tinygo

package pac

import "sync"

// model is the host register model: one instance of every register block,
// initialised to the documented reset values.
type model struct {
	rcu   RCU_Type
	afio  AFIO_Type
	gpio  [5]GPIO_Type
	timer [7]TIMER_Type
	usart [3]USART_Type
}

var models sync.Map // *RCU_Type -> *model

func devicePeripherals() *Peripherals {
	return Simulate()
}

// Simulate returns a fresh set of peripheral handles backed by an
// independent register model. It is only available off-target and is what
// tests use instead of Take.
func Simulate() *Peripherals {
	m := &model{}
	resetRCU(&m.rcu)
	for i := range m.gpio {
		resetGPIO(&m.gpio[i])
	}
	for i := range m.usart {
		resetUSART(&m.usart[i])
	}
	models.Store(&m.rcu, m)

	return &Peripherals{
		RCU:    &RCU{regs: &m.rcu},
		AFIO:   &AFIO{regs: &m.afio},
		GPIOA:  &GPIOA{gpioPort{regs: &m.gpio[0]}},
		GPIOB:  &GPIOB{gpioPort{regs: &m.gpio[1]}},
		GPIOC:  &GPIOC{gpioPort{regs: &m.gpio[2]}},
		GPIOD:  &GPIOD{gpioPort{regs: &m.gpio[3]}},
		GPIOE:  &GPIOE{gpioPort{regs: &m.gpio[4]}},
		TIMER0: &TIMER0{timerBlock{regs: &m.timer[0]}},
		TIMER1: &TIMER1{timerBlock{regs: &m.timer[1]}},
		TIMER2: &TIMER2{timerBlock{regs: &m.timer[2]}},
		TIMER3: &TIMER3{timerBlock{regs: &m.timer[3]}},
		TIMER4: &TIMER4{timerBlock{regs: &m.timer[4]}},
		TIMER5: &TIMER5{timerBlock{regs: &m.timer[5]}},
		TIMER6: &TIMER6{timerBlock{regs: &m.timer[6]}},
		USART0: &USART0{usartBlock{regs: &m.usart[0]}},
		USART1: &USART1{usartBlock{regs: &m.usart[1]}},
		USART2: &USART2{usartBlock{regs: &m.usart[2]}},
	}
}

// AfterReset is called by the clock unit after it releases the reset line of
// the peripherals in mask. The register model restores their reset values;
// on hardware the silicon does this itself.
func AfterReset(rcu *RCU_Type, apb2 bool, mask uint32) {
	v, ok := models.Load(rcu)
	if !ok {
		return
	}
	m := v.(*model)
	if apb2 {
		if mask&RCU_APB2EN_AFEN != 0 {
			m.afio = AFIO_Type{}
		}
		ports := [...]uint32{RCU_APB2EN_PAEN, RCU_APB2EN_PBEN, RCU_APB2EN_PCEN, RCU_APB2EN_PDEN, RCU_APB2EN_PEEN}
		for i, bit := range ports {
			if mask&bit != 0 {
				resetGPIO(&m.gpio[i])
			}
		}
		if mask&RCU_APB2EN_TIMER0EN != 0 {
			m.timer[0] = TIMER_Type{}
		}
		if mask&RCU_APB2EN_USART0EN != 0 {
			resetUSART(&m.usart[0])
		}
		return
	}
	timers := [...]uint32{0, RCU_APB1EN_TIMER1EN, RCU_APB1EN_TIMER2EN, RCU_APB1EN_TIMER3EN,
		RCU_APB1EN_TIMER4EN, RCU_APB1EN_TIMER5EN, RCU_APB1EN_TIMER6EN}
	for i, bit := range timers {
		if bit != 0 && mask&bit != 0 {
			m.timer[i] = TIMER_Type{}
		}
	}
	if mask&RCU_APB1EN_USART1EN != 0 {
		resetUSART(&m.usart[1])
	}
	if mask&RCU_APB1EN_USART2EN != 0 {
		resetUSART(&m.usart[2])
	}
}

func resetRCU(r *RCU_Type) {
	*r = RCU_Type{}
	r.CTL.Reg = RCU_RESET_CTL
	r.AHBEN.Reg = RCU_RESET_AHBEN
	r.RSTSCK.Reg = RCU_RESET_RSTSCK
}

func resetGPIO(g *GPIO_Type) {
	*g = GPIO_Type{}
	g.CTL0.Reg = GPIO_RESET_CTL
	g.CTL1.Reg = GPIO_RESET_CTL
}

func resetUSART(u *USART_Type) {
	*u = USART_Type{}
	u.STAT.Reg = USART_RESET_STAT
}
