package console

import (
	"errors"
	"fmt"
	"time"

	tarm "github.com/tarm/serial"

	"gdhal/serial"
)

var ErrStopBits = errors.New("console: stop bits not supported by the host port")

// NativePort wraps the tarm/serial implementation
type NativePort struct {
	port *tarm.Port
	cfg  *Config
}

// tarmConfig translates cfg into the tarm/serial configuration.
func tarmConfig(cfg *Config) (*tarm.Config, error) {
	c := &tarm.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		Size:        8,
		ReadTimeout: time.Duration(cfg.ReadTimeout) * time.Millisecond,
	}

	switch cfg.Parity {
	case serial.ParityEven:
		c.Parity = tarm.ParityEven
	case serial.ParityOdd:
		c.Parity = tarm.ParityOdd
	default:
		c.Parity = tarm.ParityNone
	}

	switch cfg.StopBits {
	case serial.StopBits1:
		c.StopBits = tarm.Stop1
	case serial.StopBits1_5:
		c.StopBits = tarm.Stop1Half
	case serial.StopBits2:
		c.StopBits = tarm.Stop2
	default:
		return nil, ErrStopBits
	}
	return c, nil
}

// Open opens a native serial port
func Open(cfg *Config) (Port, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	c, err := tarmConfig(cfg)
	if err != nil {
		return nil, err
	}

	port, err := tarm.OpenPort(c)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", cfg.Device, err)
	}

	return &NativePort{
		port: port,
		cfg:  cfg,
	}, nil
}

func (p *NativePort) Read(b []byte) (int, error) {
	return p.port.Read(b)
}

func (p *NativePort) Write(b []byte) (int, error) {
	return p.port.Write(b)
}

// Close closes the serial port
func (p *NativePort) Close() error {
	if p.port != nil {
		return p.port.Close()
	}
	return nil
}

// Flush discards data received but not yet read.
func (p *NativePort) Flush() error {
	return p.port.Flush()
}
