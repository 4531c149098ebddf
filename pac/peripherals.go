package pac

// APB1 and APB2 identify the peripheral bus that clocks an instance.
type (
	APB1 struct{}
	APB2 struct{}
)

// Bus is satisfied by the two APB bus markers.
type Bus interface {
	APB1 | APB2
}

// noCopy flags accidental copies of a hardware handle under go vet.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Port is a GPIO port instance. All ports hang off APB2.
type Port interface {
	Regs() *GPIO_Type
	EnableMask() uint32
	Index() uint8
	OnBus(APB2)
}

// TimerPeriph is implemented by every timer instance.
type TimerPeriph interface {
	Regs() *TIMER_Type
	EnableMask() uint32
	Index() uint8
	// Advanced reports whether the timer has the break/dead-time block and
	// needs CCHP.POEN set before channel outputs reach the pins.
	Advanced() bool
}

// Timer is a timer instance clocked by bus B.
type Timer[B Bus] interface {
	TimerPeriph
	OnBus(B)
}

// USARTPeriph is implemented by every USART instance.
type USARTPeriph interface {
	Regs() *USART_Type
	EnableMask() uint32
	Index() uint8
}

// USART is a USART instance clocked by bus B.
type USART[B Bus] interface {
	USARTPeriph
	OnBus(B)
}

// RCU is the reset and clock unit handle.
type RCU struct {
	regs *RCU_Type
	nc   noCopy
}

func (p *RCU) Regs() *RCU_Type { return p.regs }

// AFIO is the alternate function I/O handle.
type AFIO struct {
	regs *AFIO_Type
	nc   noCopy
}

func (p *AFIO) Regs() *AFIO_Type { return p.regs }
func (*AFIO) EnableMask() uint32 { return RCU_APB2EN_AFEN }
func (*AFIO) OnBus(APB2)         {}

type gpioPort struct {
	regs *GPIO_Type
	nc   noCopy
}

func (p *gpioPort) Regs() *GPIO_Type { return p.regs }
func (*gpioPort) OnBus(APB2)         {}

type (
	GPIOA struct{ gpioPort }
	GPIOB struct{ gpioPort }
	GPIOC struct{ gpioPort }
	GPIOD struct{ gpioPort }
	GPIOE struct{ gpioPort }
)

func (*GPIOA) EnableMask() uint32 { return RCU_APB2EN_PAEN }
func (*GPIOB) EnableMask() uint32 { return RCU_APB2EN_PBEN }
func (*GPIOC) EnableMask() uint32 { return RCU_APB2EN_PCEN }
func (*GPIOD) EnableMask() uint32 { return RCU_APB2EN_PDEN }
func (*GPIOE) EnableMask() uint32 { return RCU_APB2EN_PEEN }

func (*GPIOA) Index() uint8 { return 0 }
func (*GPIOB) Index() uint8 { return 1 }
func (*GPIOC) Index() uint8 { return 2 }
func (*GPIOD) Index() uint8 { return 3 }
func (*GPIOE) Index() uint8 { return 4 }

type timerBlock struct {
	regs *TIMER_Type
	nc   noCopy
}

func (t *timerBlock) Regs() *TIMER_Type { return t.regs }
func (*timerBlock) Advanced() bool      { return false }

type (
	TIMER0 struct{ timerBlock }
	TIMER1 struct{ timerBlock }
	TIMER2 struct{ timerBlock }
	TIMER3 struct{ timerBlock }
	TIMER4 struct{ timerBlock }
	TIMER5 struct{ timerBlock }
	TIMER6 struct{ timerBlock }
)

func (*TIMER0) Advanced() bool { return true }

func (*TIMER0) OnBus(APB2) {}
func (*TIMER1) OnBus(APB1) {}
func (*TIMER2) OnBus(APB1) {}
func (*TIMER3) OnBus(APB1) {}
func (*TIMER4) OnBus(APB1) {}
func (*TIMER5) OnBus(APB1) {}
func (*TIMER6) OnBus(APB1) {}

func (*TIMER0) EnableMask() uint32 { return RCU_APB2EN_TIMER0EN }
func (*TIMER1) EnableMask() uint32 { return RCU_APB1EN_TIMER1EN }
func (*TIMER2) EnableMask() uint32 { return RCU_APB1EN_TIMER2EN }
func (*TIMER3) EnableMask() uint32 { return RCU_APB1EN_TIMER3EN }
func (*TIMER4) EnableMask() uint32 { return RCU_APB1EN_TIMER4EN }
func (*TIMER5) EnableMask() uint32 { return RCU_APB1EN_TIMER5EN }
func (*TIMER6) EnableMask() uint32 { return RCU_APB1EN_TIMER6EN }

func (*TIMER0) Index() uint8 { return 0 }
func (*TIMER1) Index() uint8 { return 1 }
func (*TIMER2) Index() uint8 { return 2 }
func (*TIMER3) Index() uint8 { return 3 }
func (*TIMER4) Index() uint8 { return 4 }
func (*TIMER5) Index() uint8 { return 5 }
func (*TIMER6) Index() uint8 { return 6 }

type usartBlock struct {
	regs *USART_Type
	nc   noCopy
}

func (u *usartBlock) Regs() *USART_Type { return u.regs }

type (
	USART0 struct{ usartBlock }
	USART1 struct{ usartBlock }
	USART2 struct{ usartBlock }
)

func (*USART0) OnBus(APB2) {}
func (*USART1) OnBus(APB1) {}
func (*USART2) OnBus(APB1) {}

func (*USART0) EnableMask() uint32 { return RCU_APB2EN_USART0EN }
func (*USART1) EnableMask() uint32 { return RCU_APB1EN_USART1EN }
func (*USART2) EnableMask() uint32 { return RCU_APB1EN_USART2EN }

func (*USART0) Index() uint8 { return 0 }
func (*USART1) Index() uint8 { return 1 }
func (*USART2) Index() uint8 { return 2 }

// Peripherals is the full set of peripheral handles.
type Peripherals struct {
	RCU  *RCU
	AFIO *AFIO

	GPIOA *GPIOA
	GPIOB *GPIOB
	GPIOC *GPIOC
	GPIOD *GPIOD
	GPIOE *GPIOE

	TIMER0 *TIMER0
	TIMER1 *TIMER1
	TIMER2 *TIMER2
	TIMER3 *TIMER3
	TIMER4 *TIMER4
	TIMER5 *TIMER5
	TIMER6 *TIMER6

	USART0 *USART0
	USART1 *USART1
	USART2 *USART2
}

var taken bool

// Take returns the peripheral handles the first time it is called and
// (nil, false) afterwards.
func Take() (*Peripherals, bool) {
	if taken {
		return nil, false
	}
	taken = true
	return devicePeripherals(), true
}
