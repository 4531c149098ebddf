// Package pac is the peripheral access layer for the GD32VF103: register
// block layouts, bit definitions and one owned handle per peripheral
// instance.
//
// Field names and offsets follow the GD32VF103 user manual. Each handle is
// handed out once by Take; code that holds a handle owns the hardware behind
// it.
package pac

import "gdhal/reg"

// GPIO_Type is the register block of one GPIO port.
type GPIO_Type struct {
	CTL0  reg.Register32 // 0x00 port control, pins 0-7
	CTL1  reg.Register32 // 0x04 port control, pins 8-15
	ISTAT reg.Register32 // 0x08 input status
	OCTL  reg.Register32 // 0x0C output control
	BOP   reg.Register32 // 0x10 bit operate
	BC    reg.Register32 // 0x14 bit clear
	LOCK  reg.Register32 // 0x18 configuration lock
}

// AFIO_Type is the alternate function I/O register block.
type AFIO_Type struct {
	EC      reg.Register32 // 0x00 event control
	PCF0    reg.Register32 // 0x04 port configuration 0 (remaps)
	EXTISS0 reg.Register32 // 0x08
	EXTISS1 reg.Register32 // 0x0C
	EXTISS2 reg.Register32 // 0x10
	EXTISS3 reg.Register32 // 0x14
	_       reg.Register32 // 0x18 reserved
	PCF1    reg.Register32 // 0x1C port configuration 1
}

// RCU_Type is the reset and clock unit register block.
type RCU_Type struct {
	CTL     reg.Register32 // 0x00 control
	CFG0    reg.Register32 // 0x04 clock configuration 0
	INT     reg.Register32 // 0x08 clock interrupt
	APB2RST reg.Register32 // 0x0C APB2 reset
	APB1RST reg.Register32 // 0x10 APB1 reset
	AHBEN   reg.Register32 // 0x14 AHB enable
	APB2EN  reg.Register32 // 0x18 APB2 enable
	APB1EN  reg.Register32 // 0x1C APB1 enable
	BDCTL   reg.Register32 // 0x20 backup domain control
	RSTSCK  reg.Register32 // 0x24 reset source / clock
	AHBRST  reg.Register32 // 0x28 AHB reset
	CFG1    reg.Register32 // 0x2C clock configuration 1
	_       reg.Register32 // 0x30 reserved
	DSV     reg.Register32 // 0x34 deep-sleep voltage
}

// TIMER_Type is the register block shared by the advanced (TIMER0), general
// (TIMER1-4) and basic (TIMER5-6) timers. Basic timers leave the channel
// registers unimplemented.
type TIMER_Type struct {
	CTL0     reg.Register32 // 0x00 control 0
	CTL1     reg.Register32 // 0x04 control 1
	SMCFG    reg.Register32 // 0x08 slave mode configuration
	DMAINTEN reg.Register32 // 0x0C DMA and interrupt enable
	INTF     reg.Register32 // 0x10 interrupt flag
	SWEVG    reg.Register32 // 0x14 software event generation
	CHCTL0   reg.Register32 // 0x18 channel control 0 (CH0, CH1)
	CHCTL1   reg.Register32 // 0x1C channel control 1 (CH2, CH3)
	CHCTL2   reg.Register32 // 0x20 channel control 2 (enable, polarity)
	CNT      reg.Register32 // 0x24 counter
	PSC      reg.Register32 // 0x28 prescaler
	CAR      reg.Register32 // 0x2C counter auto reload
	CREP     reg.Register32 // 0x30 counter repetition
	CH0CV    reg.Register32 // 0x34 channel 0 capture/compare value
	CH1CV    reg.Register32 // 0x38
	CH2CV    reg.Register32 // 0x3C
	CH3CV    reg.Register32 // 0x40
	CCHP     reg.Register32 // 0x44 complementary channel protection
	DMACFG   reg.Register32 // 0x48
	DMATB    reg.Register32 // 0x4C
}

// USART_Type is the USART register block.
type USART_Type struct {
	STAT reg.Register32 // 0x00 status
	DATA reg.Register32 // 0x04 data
	BAUD reg.Register32 // 0x08 baud rate
	CTL0 reg.Register32 // 0x0C control 0
	CTL1 reg.Register32 // 0x10 control 1
	CTL2 reg.Register32 // 0x14 control 2
	GP   reg.Register32 // 0x18 guard time and prescaler
}

// GPIO bit fields.
const (
	GPIO_CTL_MODE_Msk  = 0xF // 4-bit CTL:MD field per pin
	GPIO_LOCK_LKK_Pos  = 16
	GPIO_LOCK_LKK      = 1 << GPIO_LOCK_LKK_Pos
	GPIO_LOCK_LK_Msk   = 0xFFFF
	GPIO_RESET_CTL     = 0x44444444 // all pins floating input
	GPIO_PINS_PER_CTL  = 8
	GPIO_PINS_PER_PORT = 16
)

// AFIO PCF0 remap fields.
const (
	AFIO_PCF0_USART0_REMAP_Pos     = 2
	AFIO_PCF0_USART0_REMAP_Msk     = 0x1
	AFIO_PCF0_USART1_REMAP_Pos     = 3
	AFIO_PCF0_USART1_REMAP_Msk     = 0x1
	AFIO_PCF0_USART2_REMAP_Pos     = 4
	AFIO_PCF0_USART2_REMAP_Msk     = 0x3
	AFIO_PCF0_TIMER0_REMAP_Pos     = 6
	AFIO_PCF0_TIMER0_REMAP_Msk     = 0x3
	AFIO_PCF0_TIMER1_REMAP_Pos     = 8
	AFIO_PCF0_TIMER1_REMAP_Msk     = 0x3
	AFIO_PCF0_TIMER2_REMAP_Pos     = 10
	AFIO_PCF0_TIMER2_REMAP_Msk     = 0x3
	AFIO_PCF0_TIMER3_REMAP_Pos     = 12
	AFIO_PCF0_TIMER3_REMAP_Msk     = 0x1
	AFIO_PCF0_TIMER4CH3_IREMAP_Pos = 16
	AFIO_PCF0_TIMER4CH3_IREMAP_Msk = 0x1
)

// RCU bit fields.
const (
	RCU_CTL_IRC8MEN      = 1 << 0
	RCU_CTL_IRC8MSTB     = 1 << 1
	RCU_RESET_CTL        = 0x00000083
	RCU_RESET_AHBEN      = 0x00000014
	RCU_RESET_RSTSCK     = 0x0C000000
	RCU_CFG0_SCS_Pos     = 0
	RCU_CFG0_SCS_Msk     = 0x3
	RCU_CFG0_AHBPSC_Pos  = 4
	RCU_CFG0_AHBPSC_Msk  = 0xF
	RCU_CFG0_APB1PSC_Pos = 8
	RCU_CFG0_APB1PSC_Msk = 0x7
	RCU_CFG0_APB2PSC_Pos = 11
	RCU_CFG0_APB2PSC_Msk = 0x7

	RCU_APB2EN_AFEN     = 1 << 0
	RCU_APB2EN_PAEN     = 1 << 2
	RCU_APB2EN_PBEN     = 1 << 3
	RCU_APB2EN_PCEN     = 1 << 4
	RCU_APB2EN_PDEN     = 1 << 5
	RCU_APB2EN_PEEN     = 1 << 6
	RCU_APB2EN_TIMER0EN = 1 << 11
	RCU_APB2EN_USART0EN = 1 << 14

	RCU_APB1EN_TIMER1EN = 1 << 0
	RCU_APB1EN_TIMER2EN = 1 << 1
	RCU_APB1EN_TIMER3EN = 1 << 2
	RCU_APB1EN_TIMER4EN = 1 << 3
	RCU_APB1EN_TIMER5EN = 1 << 4
	RCU_APB1EN_TIMER6EN = 1 << 5
	RCU_APB1EN_USART1EN = 1 << 17
	RCU_APB1EN_USART2EN = 1 << 18
)

// TIMER bit fields.
const (
	TIMER_CTL0_CEN     = 1 << 0
	TIMER_CTL0_UPDIS   = 1 << 1
	TIMER_CTL0_UPS     = 1 << 2
	TIMER_CTL0_SPM     = 1 << 3
	TIMER_CTL0_DIR     = 1 << 4
	TIMER_CTL0_CAM_Pos = 5
	TIMER_CTL0_CAM_Msk = 0x3
	TIMER_CTL0_ARSE    = 1 << 7
	TIMER_INTF_UPIF    = 1 << 0
	TIMER_SWEVG_UPG    = 1 << 0
	TIMER_CCHP_POEN    = 1 << 15
	TIMER_PSC_Msk      = 0xFFFF
	TIMER_CAR_Msk      = 0xFFFF
	TIMER_CV_Msk       = 0xFFFF

	// Per-channel fields inside CHCTL0/CHCTL1, relative to the channel's
	// byte (CH0/CH2 at bit 0, CH1/CH3 at bit 8).
	TIMER_CHCTL_CHMS_Pos     = 0
	TIMER_CHCTL_CHMS_Msk     = 0x3
	TIMER_CHCTL_CHCOMFEN     = 1 << 2
	TIMER_CHCTL_CHCOMSEN     = 1 << 3
	TIMER_CHCTL_CHCOMCTL_Pos = 4
	TIMER_CHCTL_CHCOMCTL_Msk = 0x7
	TIMER_CHCTL_CHCOMCEN     = 1 << 7

	// Per-channel fields inside CHCTL2, relative to bit 4*channel.
	TIMER_CHCTL2_CHEN  = 1 << 0
	TIMER_CHCTL2_CHP   = 1 << 1
	TIMER_CHCTL2_CHNEN = 1 << 2
	TIMER_CHCTL2_CHNP  = 1 << 3
)

// USART bit fields.
const (
	USART_STAT_PERR  = 1 << 0
	USART_STAT_FERR  = 1 << 1
	USART_STAT_NERR  = 1 << 2
	USART_STAT_ORERR = 1 << 3
	USART_STAT_IDLEF = 1 << 4
	USART_STAT_RBNE  = 1 << 5
	USART_STAT_TC    = 1 << 6
	USART_STAT_TBE   = 1 << 7
	USART_RESET_STAT = USART_STAT_TC | USART_STAT_TBE

	USART_DATA_Msk = 0x1FF

	USART_BAUD_FRADIV_Pos = 0
	USART_BAUD_FRADIV_Msk = 0xF
	USART_BAUD_INTDIV_Pos = 4
	USART_BAUD_INTDIV_Msk = 0xFFF

	USART_CTL0_REN  = 1 << 2
	USART_CTL0_TEN  = 1 << 3
	USART_CTL0_PM   = 1 << 9
	USART_CTL0_PCEN = 1 << 10
	USART_CTL0_WL   = 1 << 12
	USART_CTL0_UEN  = 1 << 13

	USART_CTL1_CKEN    = 1 << 11
	USART_CTL1_STB_Pos = 12
	USART_CTL1_STB_Msk = 0x3

	USART_CTL2_RTSEN = 1 << 8
	USART_CTL2_CTSEN = 1 << 9
)
