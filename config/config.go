// Package config describes a board bring-up in JSON: the clock dividers, a
// PWM timer with its channel duties and a serial console.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"periph.io/x/conn/v3/physic"

	"gdhal/rcu"
	"gdhal/serial"
	"gdhal/timer"
)

var ErrInvalid = errors.New("config: invalid board configuration")

// Board is a complete bring-up description.
type Board struct {
	Name   string        `json:"name"`
	Clocks ClockConfig   `json:"clocks"`
	PWM    *PWMConfig    `json:"pwm,omitempty"`
	Serial *SerialConfig `json:"serial,omitempty"`
}

// ClockConfig holds the bus prescalers applied to the 8 MHz internal
// oscillator. Zero means undivided.
type ClockConfig struct {
	AHBDiv  uint32 `json:"ahb_div"`
	APB1Div uint32 `json:"apb1_div"`
	APB2Div uint32 `json:"apb2_div"`
}

// PWMConfig selects a timer, its remap option and the channels to drive.
type PWMConfig struct {
	Timer     uint8           `json:"timer"`
	Remap     string          `json:"remap"`
	Frequency uint32          `json:"frequency_hz"`
	Channels  []ChannelConfig `json:"channels"`
}

// ChannelConfig is one PWM channel. Duty is in percent.
type ChannelConfig struct {
	Channel  uint8   `json:"channel"`
	Duty     float64 `json:"duty_percent"`
	Polarity string  `json:"polarity"`
}

// SerialConfig selects a USART, its remap option and the line settings.
// Device is the host serial port the board's console is wired to.
type SerialConfig struct {
	USART    uint8  `json:"usart"`
	Remap    string `json:"remap"`
	Baud     uint32 `json:"baud"`
	Parity   string `json:"parity"`
	StopBits string `json:"stop_bits"`
	Device   string `json:"device"`
}

// Load parses a JSON board configuration, fills in defaults and validates it.
func Load(data []byte) (*Board, error) {
	var b Board
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parse board configuration: %w", err)
	}

	applyDefaults(&b)

	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

// LoadFile reads and parses the board configuration at path.
func LoadFile(path string) (*Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	b, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// applyDefaults fills in missing configuration values with sensible defaults
func applyDefaults(b *Board) {
	if b.Name == "" {
		b.Name = "gd32vf103"
	}

	if p := b.PWM; p != nil {
		if p.Remap == "" {
			p.Remap = RemapNone
		}
		if p.Frequency == 0 {
			p.Frequency = 1000
		}
		for i := range p.Channels {
			if p.Channels[i].Polarity == "" {
				p.Channels[i].Polarity = "high"
			}
		}
	}

	if s := b.Serial; s != nil {
		if s.Remap == "" {
			s.Remap = RemapNone
		}
		if s.Baud == 0 {
			s.Baud = serial.DefaultConfig().Baud
		}
		if s.Parity == "" {
			s.Parity = "none"
		}
		if s.StopBits == "" {
			s.StopBits = "1"
		}
	}
}

// Default returns a board with TIMER1 driving PA0 at 1 kHz, 50 %, and the
// USART0 console on PA9/PA10.
func Default() *Board {
	b := &Board{
		PWM: &PWMConfig{
			Timer:    1,
			Channels: []ChannelConfig{{Channel: 0, Duty: 50}},
		},
		Serial: &SerialConfig{USART: 0},
	}
	applyDefaults(b)
	return b
}

// Validate checks b for values the hardware can not take and for pins
// claimed twice.
func (b *Board) Validate() error {
	clocks, err := b.Clocks.RCU().Clocks()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	claimed := map[string]string{}
	claim := func(pin, user string) error {
		if other, ok := claimed[pin]; ok {
			return fmt.Errorf("%w: %s used by %s and %s", ErrInvalid, pin, other, user)
		}
		claimed[pin] = user
		return nil
	}

	if p := b.PWM; p != nil {
		pins, err := TimerPins(p.Timer, p.Remap)
		if err != nil {
			return err
		}
		if !timer.InRange(p.TimerClock(clocks), p.PWMFrequency()) {
			return fmt.Errorf("%w: TIMER%d can not run at %d Hz", ErrInvalid, p.Timer, p.Frequency)
		}
		if len(p.Channels) == 0 {
			return fmt.Errorf("%w: no PWM channel configured", ErrInvalid)
		}
		for _, c := range p.Channels {
			if !timer.Channel(c.Channel).Valid() {
				return fmt.Errorf("%w: PWM channel %d", ErrInvalid, c.Channel)
			}
			if c.Duty < 0 || c.Duty > 100 {
				return fmt.Errorf("%w: channel %d duty %g%%", ErrInvalid, c.Channel, c.Duty)
			}
			if _, err := c.TimerPolarity(); err != nil {
				return err
			}
			user := fmt.Sprintf("TIMER%d_CH%d", p.Timer, c.Channel)
			if err := claim(pins[c.Channel], user); err != nil {
				return err
			}
		}
	}

	if s := b.Serial; s != nil {
		pins, err := USARTPins(s.USART, s.Remap)
		if err != nil {
			return err
		}
		if _, err := s.Line(); err != nil {
			return err
		}
		if !serial.BaudInRange(s.Clock(clocks), s.Baud) {
			return fmt.Errorf("%w: USART%d can not run at %d baud", ErrInvalid, s.USART, s.Baud)
		}
		user := fmt.Sprintf("USART%d", s.USART)
		for _, pin := range pins {
			if err := claim(pin, user); err != nil {
				return err
			}
		}
	}
	return nil
}

// RCU returns the clock prescaler configuration.
func (c ClockConfig) RCU() rcu.Config {
	return rcu.Config{AHBDiv: c.AHBDiv, APB1Div: c.APB1Div, APB2Div: c.APB2Div}
}

// PWMFrequency returns the configured frequency.
func (p *PWMConfig) PWMFrequency() physic.Frequency {
	return physic.Frequency(p.Frequency) * physic.Hertz
}

// TimerClock returns the kernel clock of the configured timer. TIMER0 sits
// on APB2, the others on APB1.
func (p *PWMConfig) TimerClock(c rcu.Clocks) physic.Frequency {
	if p.Timer == 0 {
		return c.Timer2()
	}
	return c.Timer1()
}

// TimerPolarity maps "high"/"low" onto the channel output polarity.
func (c ChannelConfig) TimerPolarity() (timer.Polarity, error) {
	switch c.Polarity {
	case "high":
		return timer.ActiveHigh, nil
	case "low":
		return timer.ActiveLow, nil
	}
	return 0, fmt.Errorf("%w: channel %d polarity %q", ErrInvalid, c.Channel, c.Polarity)
}

// DutyOf scales the duty percentage to a compare value for a timer whose
// full scale is max.
func (c ChannelConfig) DutyOf(max uint32) uint32 {
	return uint32(c.Duty/100*float64(max) + 0.5)
}

// Clock returns the bus clock of the configured USART. USART0 sits on APB2,
// the others on APB1.
func (s *SerialConfig) Clock(c rcu.Clocks) physic.Frequency {
	if s.USART == 0 {
		return c.APB2
	}
	return c.APB1
}

// Line returns the USART line settings.
func (s *SerialConfig) Line() (serial.Config, error) {
	cfg := serial.Config{Baud: s.Baud}

	switch s.Parity {
	case "none":
		cfg.Parity = serial.ParityNone
	case "even":
		cfg.Parity = serial.ParityEven
	case "odd":
		cfg.Parity = serial.ParityOdd
	default:
		return cfg, fmt.Errorf("%w: parity %q", ErrInvalid, s.Parity)
	}

	switch s.StopBits {
	case "1":
		cfg.StopBits = serial.StopBits1
	case "0.5":
		cfg.StopBits = serial.StopBits0_5
	case "2":
		cfg.StopBits = serial.StopBits2
	case "1.5":
		cfg.StopBits = serial.StopBits1_5
	default:
		return cfg, fmt.Errorf("%w: stop bits %q", ErrInvalid, s.StopBits)
	}
	return cfg, nil
}
