package afio

import (
	"gdhal/gpio"
	"gdhal/pac"
)

// TIMER0 remap options.
type (
	Timer0NoRemap      struct{} // PA8, PA9, PA10, PA11
	Timer0PartialRemap struct{} // PA8, PA9, PA10, PA11
	Timer0FullRemap    struct{} // PE9, PE11, PE13, PE14
)

func (Timer0NoRemap) field() (uint32, uint8, uint32) { return pac.AFIO_PCF0_TIMER0_REMAP_Msk, pac.AFIO_PCF0_TIMER0_REMAP_Pos, 0 }
func (Timer0NoRemap) Periph(*pac.TIMER0)             {}
func (Timer0NoRemap) Ch0(gpio.PA8)                   {}
func (Timer0NoRemap) Ch1(gpio.PA9)                   {}
func (Timer0NoRemap) Ch2(gpio.PA10)                  {}
func (Timer0NoRemap) Ch3(gpio.PA11)                  {}

func (Timer0PartialRemap) field() (uint32, uint8, uint32) { return pac.AFIO_PCF0_TIMER0_REMAP_Msk, pac.AFIO_PCF0_TIMER0_REMAP_Pos, 1 }
func (Timer0PartialRemap) Periph(*pac.TIMER0)             {}
func (Timer0PartialRemap) Ch0(gpio.PA8)                   {}
func (Timer0PartialRemap) Ch1(gpio.PA9)                   {}
func (Timer0PartialRemap) Ch2(gpio.PA10)                  {}
func (Timer0PartialRemap) Ch3(gpio.PA11)                  {}

func (Timer0FullRemap) field() (uint32, uint8, uint32) { return pac.AFIO_PCF0_TIMER0_REMAP_Msk, pac.AFIO_PCF0_TIMER0_REMAP_Pos, 3 }
func (Timer0FullRemap) Periph(*pac.TIMER0)             {}
func (Timer0FullRemap) Ch0(gpio.PE9)                   {}
func (Timer0FullRemap) Ch1(gpio.PE11)                  {}
func (Timer0FullRemap) Ch2(gpio.PE13)                  {}
func (Timer0FullRemap) Ch3(gpio.PE14)                  {}

// TIMER1 remap options.
type (
	Timer1NoRemap       struct{} // PA0, PA1, PA2, PA3
	Timer1PartialRemap1 struct{} // PA15, PB3, PA2, PA3
	Timer1PartialRemap2 struct{} // PA0, PA1, PB10, PB11
	Timer1FullRemap     struct{} // PA15, PB3, PB10, PB11
)

func (Timer1NoRemap) field() (uint32, uint8, uint32) { return pac.AFIO_PCF0_TIMER1_REMAP_Msk, pac.AFIO_PCF0_TIMER1_REMAP_Pos, 0 }
func (Timer1NoRemap) Periph(*pac.TIMER1)             {}
func (Timer1NoRemap) Ch0(gpio.PA0)                   {}
func (Timer1NoRemap) Ch1(gpio.PA1)                   {}
func (Timer1NoRemap) Ch2(gpio.PA2)                   {}
func (Timer1NoRemap) Ch3(gpio.PA3)                   {}

func (Timer1PartialRemap1) field() (uint32, uint8, uint32) { return pac.AFIO_PCF0_TIMER1_REMAP_Msk, pac.AFIO_PCF0_TIMER1_REMAP_Pos, 1 }
func (Timer1PartialRemap1) Periph(*pac.TIMER1)             {}
func (Timer1PartialRemap1) Ch0(gpio.PA15)                  {}
func (Timer1PartialRemap1) Ch1(gpio.PB3)                   {}
func (Timer1PartialRemap1) Ch2(gpio.PA2)                   {}
func (Timer1PartialRemap1) Ch3(gpio.PA3)                   {}

func (Timer1PartialRemap2) field() (uint32, uint8, uint32) { return pac.AFIO_PCF0_TIMER1_REMAP_Msk, pac.AFIO_PCF0_TIMER1_REMAP_Pos, 2 }
func (Timer1PartialRemap2) Periph(*pac.TIMER1)             {}
func (Timer1PartialRemap2) Ch0(gpio.PA0)                   {}
func (Timer1PartialRemap2) Ch1(gpio.PA1)                   {}
func (Timer1PartialRemap2) Ch2(gpio.PB10)                  {}
func (Timer1PartialRemap2) Ch3(gpio.PB11)                  {}

func (Timer1FullRemap) field() (uint32, uint8, uint32) { return pac.AFIO_PCF0_TIMER1_REMAP_Msk, pac.AFIO_PCF0_TIMER1_REMAP_Pos, 3 }
func (Timer1FullRemap) Periph(*pac.TIMER1)             {}
func (Timer1FullRemap) Ch0(gpio.PA15)                  {}
func (Timer1FullRemap) Ch1(gpio.PB3)                   {}
func (Timer1FullRemap) Ch2(gpio.PB10)                  {}
func (Timer1FullRemap) Ch3(gpio.PB11)                  {}

// TIMER2 remap options.
type (
	Timer2NoRemap      struct{} // PA6, PA7, PB0, PB1
	Timer2PartialRemap struct{} // PB4, PB5, PB0, PB1
	Timer2FullRemap    struct{} // PC6, PC7, PC8, PC9
)

func (Timer2NoRemap) field() (uint32, uint8, uint32) { return pac.AFIO_PCF0_TIMER2_REMAP_Msk, pac.AFIO_PCF0_TIMER2_REMAP_Pos, 0 }
func (Timer2NoRemap) Periph(*pac.TIMER2)             {}
func (Timer2NoRemap) Ch0(gpio.PA6)                   {}
func (Timer2NoRemap) Ch1(gpio.PA7)                   {}
func (Timer2NoRemap) Ch2(gpio.PB0)                   {}
func (Timer2NoRemap) Ch3(gpio.PB1)                   {}

func (Timer2PartialRemap) field() (uint32, uint8, uint32) { return pac.AFIO_PCF0_TIMER2_REMAP_Msk, pac.AFIO_PCF0_TIMER2_REMAP_Pos, 2 }
func (Timer2PartialRemap) Periph(*pac.TIMER2)             {}
func (Timer2PartialRemap) Ch0(gpio.PB4)                   {}
func (Timer2PartialRemap) Ch1(gpio.PB5)                   {}
func (Timer2PartialRemap) Ch2(gpio.PB0)                   {}
func (Timer2PartialRemap) Ch3(gpio.PB1)                   {}

func (Timer2FullRemap) field() (uint32, uint8, uint32) { return pac.AFIO_PCF0_TIMER2_REMAP_Msk, pac.AFIO_PCF0_TIMER2_REMAP_Pos, 3 }
func (Timer2FullRemap) Periph(*pac.TIMER2)             {}
func (Timer2FullRemap) Ch0(gpio.PC6)                   {}
func (Timer2FullRemap) Ch1(gpio.PC7)                   {}
func (Timer2FullRemap) Ch2(gpio.PC8)                   {}
func (Timer2FullRemap) Ch3(gpio.PC9)                   {}

// TIMER3 remap options.
type (
	Timer3NoRemap struct{} // PB6, PB7, PB8, PB9
	Timer3Remap   struct{} // PD12, PD13, PD14, PD15
)

func (Timer3NoRemap) field() (uint32, uint8, uint32) { return pac.AFIO_PCF0_TIMER3_REMAP_Msk, pac.AFIO_PCF0_TIMER3_REMAP_Pos, 0 }
func (Timer3NoRemap) Periph(*pac.TIMER3)             {}
func (Timer3NoRemap) Ch0(gpio.PB6)                   {}
func (Timer3NoRemap) Ch1(gpio.PB7)                   {}
func (Timer3NoRemap) Ch2(gpio.PB8)                   {}
func (Timer3NoRemap) Ch3(gpio.PB9)                   {}

func (Timer3Remap) field() (uint32, uint8, uint32) { return pac.AFIO_PCF0_TIMER3_REMAP_Msk, pac.AFIO_PCF0_TIMER3_REMAP_Pos, 1 }
func (Timer3Remap) Periph(*pac.TIMER3)             {}
func (Timer3Remap) Ch0(gpio.PD12)                  {}
func (Timer3Remap) Ch1(gpio.PD13)                  {}
func (Timer3Remap) Ch2(gpio.PD14)                  {}
func (Timer3Remap) Ch3(gpio.PD15)                  {}

// TIMER4 remap options.
type (
	Timer4NoRemap struct{} // PA0, PA1, PA2, PA3
)

func (Timer4NoRemap) field() (uint32, uint8, uint32) { return 0, 0, 0 }
func (Timer4NoRemap) Periph(*pac.TIMER4)             {}
func (Timer4NoRemap) Ch0(gpio.PA0)                   {}
func (Timer4NoRemap) Ch1(gpio.PA1)                   {}
func (Timer4NoRemap) Ch2(gpio.PA2)                   {}
func (Timer4NoRemap) Ch3(gpio.PA3)                   {}

// USART0 remap options.
type (
	USART0NoRemap struct{} // PA9, PA10
	USART0Remap   struct{} // PB6, PB7
)

func (USART0NoRemap) field() (uint32, uint8, uint32) { return pac.AFIO_PCF0_USART0_REMAP_Msk, pac.AFIO_PCF0_USART0_REMAP_Pos, 0 }
func (USART0NoRemap) Periph(*pac.USART0)             {}
func (USART0NoRemap) Tx(gpio.PA9)                    {}
func (USART0NoRemap) Rx(gpio.PA10)                   {}

func (USART0Remap) field() (uint32, uint8, uint32) { return pac.AFIO_PCF0_USART0_REMAP_Msk, pac.AFIO_PCF0_USART0_REMAP_Pos, 1 }
func (USART0Remap) Periph(*pac.USART0)             {}
func (USART0Remap) Tx(gpio.PB6)                    {}
func (USART0Remap) Rx(gpio.PB7)                    {}

// USART1 remap options.
type (
	USART1NoRemap struct{} // PA2, PA3
	USART1Remap   struct{} // PD5, PD6
)

func (USART1NoRemap) field() (uint32, uint8, uint32) { return pac.AFIO_PCF0_USART1_REMAP_Msk, pac.AFIO_PCF0_USART1_REMAP_Pos, 0 }
func (USART1NoRemap) Periph(*pac.USART1)             {}
func (USART1NoRemap) Tx(gpio.PA2)                    {}
func (USART1NoRemap) Rx(gpio.PA3)                    {}

func (USART1Remap) field() (uint32, uint8, uint32) { return pac.AFIO_PCF0_USART1_REMAP_Msk, pac.AFIO_PCF0_USART1_REMAP_Pos, 1 }
func (USART1Remap) Periph(*pac.USART1)             {}
func (USART1Remap) Tx(gpio.PD5)                    {}
func (USART1Remap) Rx(gpio.PD6)                    {}

// USART2 remap options.
type (
	USART2NoRemap      struct{} // PB10, PB11
	USART2PartialRemap struct{} // PC10, PC11
	USART2FullRemap    struct{} // PD8, PD9
)

func (USART2NoRemap) field() (uint32, uint8, uint32) { return pac.AFIO_PCF0_USART2_REMAP_Msk, pac.AFIO_PCF0_USART2_REMAP_Pos, 0 }
func (USART2NoRemap) Periph(*pac.USART2)             {}
func (USART2NoRemap) Tx(gpio.PB10)                   {}
func (USART2NoRemap) Rx(gpio.PB11)                   {}

func (USART2PartialRemap) field() (uint32, uint8, uint32) { return pac.AFIO_PCF0_USART2_REMAP_Msk, pac.AFIO_PCF0_USART2_REMAP_Pos, 1 }
func (USART2PartialRemap) Periph(*pac.USART2)             {}
func (USART2PartialRemap) Tx(gpio.PC10)                   {}
func (USART2PartialRemap) Rx(gpio.PC11)                   {}

func (USART2FullRemap) field() (uint32, uint8, uint32) { return pac.AFIO_PCF0_USART2_REMAP_Msk, pac.AFIO_PCF0_USART2_REMAP_Pos, 3 }
func (USART2FullRemap) Periph(*pac.USART2)             {}
func (USART2FullRemap) Tx(gpio.PD8)                    {}
func (USART2FullRemap) Rx(gpio.PD9)                    {}
