package rcu

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/physic"

	"gdhal/internal/critical"
	"gdhal/pac"
)

// IRC8M is the frequency of the internal RC oscillator the system runs from
// out of reset.
const IRC8M = 8 * physic.MegaHertz

var ErrInvalidDivider = errors.New("rcu: invalid prescaler divider")

// Config selects the bus prescalers. Zero dividers mean 1.
type Config struct {
	AHBDiv  uint32
	APB1Div uint32
	APB2Div uint32
}

// Clocks holds the resolved bus frequencies after Freeze.
type Clocks struct {
	SysClk physic.Frequency
	AHB    physic.Frequency
	APB1   physic.Frequency
	APB2   physic.Frequency

	APB1Div uint32
	APB2Div uint32
}

// ResetClocks returns the clock tree as it is out of reset: everything at
// IRC8M with all dividers at 1.
func ResetClocks() Clocks {
	return Clocks{
		SysClk:  IRC8M,
		AHB:     IRC8M,
		APB1:    IRC8M,
		APB2:    IRC8M,
		APB1Div: 1,
		APB2Div: 1,
	}
}

// Timer1 is the kernel clock of the timers on APB1.
func (c Clocks) Timer1() physic.Frequency {
	return timerClock(c.APB1, c.APB1Div)
}

// Timer2 is the kernel clock of the timers on APB2.
func (c Clocks) Timer2() physic.Frequency {
	return timerClock(c.APB2, c.APB2Div)
}

// Timers run at twice the bus clock whenever the bus is divided.
func timerClock(bus physic.Frequency, div uint32) physic.Frequency {
	if div <= 1 {
		return bus
	}
	return 2 * bus
}

// Frequency returns the clock of bus B.
func (a *APB[B]) Frequency(c Clocks) physic.Frequency {
	if a.apb2() {
		return c.APB2
	}
	return c.APB1
}

// TimerClock returns the kernel clock of the timers on bus B.
func (a *APB[B]) TimerClock(c Clocks) physic.Frequency {
	if a.apb2() {
		return c.Timer2()
	}
	return c.Timer1()
}

func (c *Config) applyDefaults() {
	if c.AHBDiv == 0 {
		c.AHBDiv = 1
	}
	if c.APB1Div == 0 {
		c.APB1Div = 1
	}
	if c.APB2Div == 0 {
		c.APB2Div = 1
	}
}

func ahbBits(div uint32) (uint32, bool) {
	switch div {
	case 1:
		return 0, true
	case 2:
		return 0b1000, true
	case 4:
		return 0b1001, true
	case 8:
		return 0b1010, true
	case 16:
		return 0b1011, true
	case 64:
		return 0b1100, true
	case 128:
		return 0b1101, true
	case 256:
		return 0b1110, true
	case 512:
		return 0b1111, true
	}
	return 0, false
}

func apbBits(div uint32) (uint32, bool) {
	switch div {
	case 1:
		return 0, true
	case 2:
		return 0b100, true
	case 4:
		return 0b101, true
	case 8:
		return 0b110, true
	case 16:
		return 0b111, true
	}
	return 0, false
}

func (c Config) encode() (ahb, apb1, apb2 uint32, err error) {
	c.applyDefaults()

	ahb, ok := ahbBits(c.AHBDiv)
	if !ok {
		return 0, 0, 0, fmt.Errorf("AHB divider %d: %w", c.AHBDiv, ErrInvalidDivider)
	}
	apb1, ok = apbBits(c.APB1Div)
	if !ok {
		return 0, 0, 0, fmt.Errorf("APB1 divider %d: %w", c.APB1Div, ErrInvalidDivider)
	}
	apb2, ok = apbBits(c.APB2Div)
	if !ok {
		return 0, 0, 0, fmt.Errorf("APB2 divider %d: %w", c.APB2Div, ErrInvalidDivider)
	}
	return ahb, apb1, apb2, nil
}

// Validate reports whether every divider is one the prescalers support.
func (c Config) Validate() error {
	_, _, _, err := c.encode()
	return err
}

// Clocks returns the frequencies Freeze would produce for c without
// touching the hardware.
func (c Config) Clocks() (Clocks, error) {
	if err := c.Validate(); err != nil {
		return Clocks{}, err
	}
	c.applyDefaults()

	hclk := IRC8M / physic.Frequency(c.AHBDiv)
	return Clocks{
		SysClk:  IRC8M,
		AHB:     hclk,
		APB1:    hclk / physic.Frequency(c.APB1Div),
		APB2:    hclk / physic.Frequency(c.APB2Div),
		APB1Div: c.APB1Div,
		APB2Div: c.APB2Div,
	}, nil
}

// Freeze selects IRC8M as the system clock, programs the bus prescalers and
// returns the resulting frequencies.
func (r *RCU) Freeze(cfg Config) (Clocks, error) {
	ahb, apb1, apb2, err := cfg.encode()
	if err != nil {
		return Clocks{}, err
	}

	regs := r.raw.Regs()
	critical.Do(func() {
		regs.CTL.SetBits(pac.RCU_CTL_IRC8MEN)
		cfg0 := regs.CFG0.Get()
		cfg0 &^= pac.RCU_CFG0_SCS_Msk << pac.RCU_CFG0_SCS_Pos
		cfg0 &^= pac.RCU_CFG0_AHBPSC_Msk << pac.RCU_CFG0_AHBPSC_Pos
		cfg0 &^= pac.RCU_CFG0_APB1PSC_Msk << pac.RCU_CFG0_APB1PSC_Pos
		cfg0 &^= pac.RCU_CFG0_APB2PSC_Msk << pac.RCU_CFG0_APB2PSC_Pos
		cfg0 |= ahb << pac.RCU_CFG0_AHBPSC_Pos
		cfg0 |= apb1 << pac.RCU_CFG0_APB1PSC_Pos
		cfg0 |= apb2 << pac.RCU_CFG0_APB2PSC_Pos
		regs.CFG0.Set(cfg0)
	})

	return cfg.Clocks()
}

// Hz converts f to whole hertz for register arithmetic.
func Hz(f physic.Frequency) uint32 {
	return uint32(f / physic.Hertz)
}
