// Package serial is a blocking UART driver for the GD32VF103 USARTs.
//
// There is no global console: the *Serial returned by New is the only handle
// to the port, and code that prints passes it (or an io.Writer) along.
package serial

import (
	"errors"

	"gdhal/afio"
	"gdhal/debug"
	"gdhal/gpio"
	"gdhal/internal/critical"
	"gdhal/pac"
	"gdhal/rcu"
)

var (
	ErrWouldBlock = errors.New("serial: would block")
	ErrParity     = errors.New("serial: parity error")
	ErrFraming    = errors.New("serial: framing error")
	ErrNoise      = errors.New("serial: noise error")
	ErrOverrun    = errors.New("serial: overrun error")
)

const errFlags = pac.USART_STAT_PERR | pac.USART_STAT_FERR | pac.USART_STAT_NERR | pac.USART_STAT_ORERR

// Route is satisfied by the remap options of USART U that route TX to pin
// TX and RX to pin RX.
type Route[U pac.USARTPeriph, TX, RX any] interface {
	afio.USARTRemap[U]
	Tx(TX)
	Rx(RX)
}

// Pins are the TX and RX pins held by a running USART.
type Pins[TG gpio.Group, TX gpio.ID[TG], RG gpio.Group, RX gpio.ID[RG], K gpio.Digital] struct {
	Tx gpio.Pin[TG, TX, gpio.Alternate[gpio.PushPull]]
	Rx gpio.Pin[RG, RX, gpio.Input[K]]
}

// Serial is a configured USART.
type Serial[U pac.USARTPeriph, P any] struct {
	raw     U
	regs    *pac.USART_Type
	pins    P
	disable func()
}

// New applies remap R, enables and resets the USART and configures it for
// cfg. tx must be in alternate push-pull mode and rx a digital input, and
// R must route the USART to both.
func New[R Route[U, TX, RX], U pac.USART[B], B pac.Bus, TG gpio.Group, TX gpio.ID[TG], RG gpio.Group, RX gpio.ID[RG], K gpio.Digital](
	raw U,
	tx gpio.Pin[TG, TX, gpio.Alternate[gpio.PushPull]],
	rx gpio.Pin[RG, RX, gpio.Input[K]],
	pcf0 *afio.PCF0,
	cfg Config,
	clocks rcu.Clocks,
	apb *rcu.APB[B],
) *Serial[U, Pins[TG, TX, RG, RX, K]] {
	intdiv, fradiv := BaudDivisor(apb.Frequency(clocks), cfg.Baud)
	mask := raw.EnableMask()
	regs := raw.Regs()

	var remap R
	critical.Do(func() {
		pcf0.Apply(remap)
		apb.Enable(mask)
		apb.Reset(mask)

		regs.BAUD.Set(intdiv<<pac.USART_BAUD_INTDIV_Pos | fradiv<<pac.USART_BAUD_FRADIV_Pos)
		debug.Record(debug.EvtBaud, raw.Index(), intdiv, fradiv)

		regs.CTL1.ReplaceBits(uint32(cfg.StopBits), pac.USART_CTL1_STB_Msk, pac.USART_CTL1_STB_Pos)

		ctl0 := uint32(pac.USART_CTL0_UEN | pac.USART_CTL0_TEN | pac.USART_CTL0_REN)
		switch cfg.Parity {
		case ParityEven:
			ctl0 |= pac.USART_CTL0_WL | pac.USART_CTL0_PCEN
		case ParityOdd:
			ctl0 |= pac.USART_CTL0_WL | pac.USART_CTL0_PCEN | pac.USART_CTL0_PM
		}
		regs.CTL0.Set(ctl0)
	})

	return &Serial[U, Pins[TG, TX, RG, RX, K]]{
		raw:     raw,
		regs:    regs,
		pins:    Pins[TG, TX, RG, RX, K]{Tx: tx, Rx: rx},
		disable: func() { apb.Disable(mask) },
	}
}

// Release waits for the last byte to leave, disables the USART clock and
// returns the peripheral and its pins.
func (s *Serial[U, P]) Release() (U, P) {
	s.Flush()
	s.regs.CTL0.ClearBits(pac.USART_CTL0_UEN)
	s.disable()
	return s.raw, s.pins
}

// WriteByte transmits one byte, waiting for the transmit buffer.
func (s *Serial[U, P]) WriteByte(b byte) error {
	for !s.regs.STAT.HasBits(pac.USART_STAT_TBE) {
	}
	s.regs.DATA.Set(uint32(b))
	return nil
}

// Write transmits p.
func (s *Serial[U, P]) Write(p []byte) (int, error) {
	for _, b := range p {
		s.WriteByte(b)
	}
	return len(p), nil
}

// WriteString transmits str.
func (s *Serial[U, P]) WriteString(str string) (int, error) {
	for i := 0; i < len(str); i++ {
		s.WriteByte(str[i])
	}
	return len(str), nil
}

// Flush waits until transmission is complete.
func (s *Serial[U, P]) Flush() error {
	for !s.regs.STAT.HasBits(pac.USART_STAT_TC) {
	}
	return nil
}

// TryReadByte returns the received byte, ErrWouldBlock if there is none, or
// the receive error flagged by the hardware. An error consumes the byte it
// was flagged on.
func (s *Serial[U, P]) TryReadByte() (byte, error) {
	stat := s.regs.STAT.Get()
	if stat&errFlags != 0 {
		s.regs.Receive()
		s.regs.STAT.ClearBits(errFlags)
		switch {
		case stat&pac.USART_STAT_PERR != 0:
			return 0, ErrParity
		case stat&pac.USART_STAT_FERR != 0:
			return 0, ErrFraming
		case stat&pac.USART_STAT_NERR != 0:
			return 0, ErrNoise
		default:
			return 0, ErrOverrun
		}
	}
	if stat&pac.USART_STAT_RBNE == 0 {
		return 0, ErrWouldBlock
	}
	return byte(s.regs.Receive()), nil
}

// ReadByte waits for a byte.
func (s *Serial[U, P]) ReadByte() (byte, error) {
	for {
		b, err := s.TryReadByte()
		if err != ErrWouldBlock {
			return b, err
		}
	}
}

// Read waits for one byte, then reads whatever else is already received, up
// to len(p).
func (s *Serial[U, P]) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	b, err := s.ReadByte()
	if err != nil {
		return 0, err
	}
	p[0] = b
	n := 1
	for n < len(p) {
		b, err := s.TryReadByte()
		if err == ErrWouldBlock {
			break
		}
		if err != nil {
			return n, err
		}
		p[n] = b
		n++
	}
	return n, nil
}
