//go:build tinygo

package pac

import "unsafe"

// Base addresses from the GD32VF103 memory map.
const (
	timer1Base = 0x40000000
	timer2Base = 0x40000400
	timer3Base = 0x40000800
	timer4Base = 0x40000C00
	timer5Base = 0x40001000
	timer6Base = 0x40001400
	usart1Base = 0x40004400
	usart2Base = 0x40004800
	afioBase   = 0x40010000
	gpioaBase  = 0x40010800
	gpiobBase  = 0x40010C00
	gpiocBase  = 0x40011000
	gpiodBase  = 0x40011400
	gpioeBase  = 0x40011800
	timer0Base = 0x40012C00
	usart0Base = 0x40013800
	rcuBase    = 0x40021000
)

func gpioAt(addr uintptr) *GPIO_Type   { return (*GPIO_Type)(unsafe.Pointer(addr)) }
func timerAt(addr uintptr) *TIMER_Type { return (*TIMER_Type)(unsafe.Pointer(addr)) }
func usartAt(addr uintptr) *USART_Type { return (*USART_Type)(unsafe.Pointer(addr)) }

func devicePeripherals() *Peripherals {
	return &Peripherals{
		RCU:    &RCU{regs: (*RCU_Type)(unsafe.Pointer(uintptr(rcuBase)))},
		AFIO:   &AFIO{regs: (*AFIO_Type)(unsafe.Pointer(uintptr(afioBase)))},
		GPIOA:  &GPIOA{gpioPort{regs: gpioAt(gpioaBase)}},
		GPIOB:  &GPIOB{gpioPort{regs: gpioAt(gpiobBase)}},
		GPIOC:  &GPIOC{gpioPort{regs: gpioAt(gpiocBase)}},
		GPIOD:  &GPIOD{gpioPort{regs: gpioAt(gpiodBase)}},
		GPIOE:  &GPIOE{gpioPort{regs: gpioAt(gpioeBase)}},
		TIMER0: &TIMER0{timerBlock{regs: timerAt(timer0Base)}},
		TIMER1: &TIMER1{timerBlock{regs: timerAt(timer1Base)}},
		TIMER2: &TIMER2{timerBlock{regs: timerAt(timer2Base)}},
		TIMER3: &TIMER3{timerBlock{regs: timerAt(timer3Base)}},
		TIMER4: &TIMER4{timerBlock{regs: timerAt(timer4Base)}},
		TIMER5: &TIMER5{timerBlock{regs: timerAt(timer5Base)}},
		TIMER6: &TIMER6{timerBlock{regs: timerAt(timer6Base)}},
		USART0: &USART0{usartBlock{regs: usartAt(usart0Base)}},
		USART1: &USART1{usartBlock{regs: usartAt(usart1Base)}},
		USART2: &USART2{usartBlock{regs: usartAt(usart2Base)}},
	}
}

// AfterReset is a no-op on hardware: releasing the reset line restores the
// register values in silicon.
func AfterReset(rcu *RCU_Type, apb2 bool, mask uint32) {}
