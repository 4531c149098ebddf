//go:build gd32vf103

package main

import (
	"gdhal/afio"
	"gdhal/debug"
	"gdhal/gpio"
	"gdhal/pac"
	"gdhal/rcu"
	"gdhal/serial"
)

// Console is the debug UART as the main loop uses it.
type Console interface {
	WriteString(s string) (int, error)
	TryReadByte() (byte, error)
}

// InitDebugUART initializes USART0 on PA9 (TX) and PA10 (RX) for debugging
// and routes debug output to it. Baud rate: 115200
func InitDebugUART(p *pac.Peripherals, r *rcu.RCU, af *afio.AFIO, a *gpio.PartsA, clocks rcu.Clocks) Console {
	con := serial.New[afio.USART0NoRemap](p.USART0,
		a.PA9.IntoAlternatePushPull(a.CTL1),
		a.PA10.IntoPullUpInput(a.CTL1),
		af.PCF0, serial.DefaultConfig(), clocks, r.APB2)

	debug.SetWriter(func(s string) {
		con.WriteString(s)
		con.WriteString("\r\n")
	})
	debug.SetEnabled(true)

	debug.Println("=== GD32VF103 Debug UART Initialized ===")
	debug.Println("Baud: 115200, TX=PA9, RX=PA10")
	debug.Println("")
	return con
}

// pollConsole handles single-key commands: 'd' dumps the event ring, 'q'
// silences debug lines and 'v' turns them back on.
func pollConsole(con Console) {
	b, err := con.TryReadByte()
	if err != nil {
		return
	}
	switch b {
	case 'd':
		debug.Dump()
	case 'q':
		debug.SetEnabled(false)
	case 'v':
		debug.SetEnabled(true)
	}
}
