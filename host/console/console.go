// Package console connects the host to a board's USART through a USB serial
// adapter.
package console

import (
	"io"

	"gdhal/serial"
)

// Port is an open host serial port. Tests substitute their own.
type Port interface {
	io.ReadWriteCloser

	// Flush flushes any buffered data
	Flush() error
}

// Config holds the host side of the serial link. Parity and StopBits use the
// board's encoding so one serial.Config describes both ends.
type Config struct {
	// Device path (e.g., "/dev/ttyUSB0", "COM3")
	Device string

	Baud     int
	Parity   serial.Parity
	StopBits serial.StopBits

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

// DefaultConfig returns the host settings matching serial.DefaultConfig.
func DefaultConfig(device string) *Config {
	return FromSerial(device, serial.DefaultConfig())
}

// FromSerial returns the host settings for a board configured with cfg.
func FromSerial(device string, cfg serial.Config) *Config {
	return &Config{
		Device:      device,
		Baud:        int(cfg.Baud),
		Parity:      cfg.Parity,
		StopBits:    cfg.StopBits,
		ReadTimeout: 100,
	}
}
