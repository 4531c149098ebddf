package serial

import (
	"errors"
	"io"
	"testing"

	"periph.io/x/conn/v3/physic"

	"gdhal/afio"
	"gdhal/debug"
	"gdhal/gpio"
	"gdhal/pac"
	"gdhal/rcu"
	"gdhal/reg"
)

type usart0 = Serial[*pac.USART0, Pins[gpio.GroupAH, gpio.PA9, gpio.GroupAH, gpio.PA10, gpio.Floating]]

var (
	_ io.Writer       = (*usart0)(nil)
	_ io.Reader       = (*usart0)(nil)
	_ io.ByteWriter   = (*usart0)(nil)
	_ io.ByteReader   = (*usart0)(nil)
	_ io.StringWriter = (*usart0)(nil)
)

func open(cfg Config) (*pac.Peripherals, *rcu.RCU, gpio.PartsA, *usart0) {
	p := pac.Simulate()
	r := rcu.New(p.RCU)
	af := afio.New(p.AFIO, r.APB2)
	a := gpio.SplitA(p.GPIOA, r.APB2)
	s := New[afio.USART0NoRemap](p.USART0,
		a.PA9.IntoAlternatePushPull(a.CTL1),
		a.PA10,
		af.PCF0, cfg, rcu.ResetClocks(), r.APB2)
	return p, r, a, s
}

func mustPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r != want {
			t.Errorf("panic = %v, want %q", r, want)
		}
	}()
	fn()
}

func TestBaudDivisor(t *testing.T) {
	tests := []struct {
		clk            physic.Frequency
		baud           uint32
		intdiv, fradiv uint32
	}{
		{8 * physic.MegaHertz, 9600, 52, 1},
		{8 * physic.MegaHertz, 115200, 4, 5},
		{108 * physic.MegaHertz, 115200, 58, 10},
		{54 * physic.MegaHertz, 250000, 13, 8},
	}
	for _, tt := range tests {
		i, f := BaudDivisor(tt.clk, tt.baud)
		if i != tt.intdiv || f != tt.fradiv {
			t.Errorf("BaudDivisor(%s, %d) = %d, %d, want %d, %d", tt.clk, tt.baud, i, f, tt.intdiv, tt.fradiv)
		}
	}

	mustPanic(t, errBaud, func() { BaudDivisor(8*physic.MegaHertz, 0) })
	mustPanic(t, errImpossible, func() { BaudDivisor(8*physic.MegaHertz, 100) })
	mustPanic(t, errImpossible, func() { BaudDivisor(8*physic.MegaHertz, 1000000) })
}

func TestBaudInRange(t *testing.T) {
	clk := 8 * physic.MegaHertz
	if !BaudInRange(clk, 9600) || !BaudInRange(clk, 500000) {
		t.Error("common rates rejected")
	}
	if BaudInRange(clk, 0) || BaudInRange(clk, 100) || BaudInRange(clk, 1000000) {
		t.Error("impossible rates accepted")
	}
}

func TestLineStrings(t *testing.T) {
	if ParityOdd.String() != "odd" || ParityNone.String() != "none" {
		t.Errorf("parity strings %s %s", ParityOdd, ParityNone)
	}
	if StopBits1_5.String() != "1.5" || StopBits2.String() != "2" || StopBits1.String() != "1" {
		t.Errorf("stop bit strings %s %s %s", StopBits1_5, StopBits2, StopBits1)
	}
}

func TestNew(t *testing.T) {
	debug.Clear()
	p, r, _, _ := open(Config{Baud: 9600, Parity: ParityEven, StopBits: StopBits2})
	regs := p.USART0.Regs()

	if regs.BAUD.Get() != 52<<4|1 {
		t.Errorf("BAUD = %#x", regs.BAUD.Get())
	}
	want := uint32(pac.USART_CTL0_UEN | pac.USART_CTL0_TEN | pac.USART_CTL0_REN | pac.USART_CTL0_WL | pac.USART_CTL0_PCEN)
	if regs.CTL0.Get() != want {
		t.Errorf("CTL0 = %#x, want %#x", regs.CTL0.Get(), want)
	}
	if regs.CTL1.Get() != 0b10<<pac.USART_CTL1_STB_Pos {
		t.Errorf("CTL1 = %#x", regs.CTL1.Get())
	}
	if !r.APB2.IsEnabled(pac.RCU_APB2EN_USART0EN) {
		t.Error("USART0 clock not enabled")
	}

	var baud *debug.Event
	for _, e := range debug.Events() {
		if e.Kind == debug.EvtBaud {
			baud = &e
		}
	}
	if baud == nil || baud.Value1 != 52 || baud.Value2 != 1 || !baud.Critical {
		t.Errorf("baud event = %+v", baud)
	}
}

func TestParityOdd(t *testing.T) {
	p, _, _, _ := open(Config{Baud: 115200, Parity: ParityOdd})
	ctl0 := p.USART0.Regs().CTL0.Get()
	if ctl0&pac.USART_CTL0_PM == 0 || ctl0&pac.USART_CTL0_PCEN == 0 || ctl0&pac.USART_CTL0_WL == 0 {
		t.Errorf("CTL0 = %#x, want 9-bit odd parity", ctl0)
	}

	p, _, _, _ = open(DefaultConfig())
	ctl0 = p.USART0.Regs().CTL0.Get()
	if ctl0&(pac.USART_CTL0_PM|pac.USART_CTL0_PCEN|pac.USART_CTL0_WL) != 0 {
		t.Errorf("CTL0 = %#x, want 8N1", ctl0)
	}
}

func TestWrite(t *testing.T) {
	p, _, _, s := open(DefaultConfig())
	data := &p.USART0.Regs().DATA

	var sent []byte
	restore := reg.Observe(func(r *reg.Register32, v uint32) {
		if r == data {
			sent = append(sent, byte(v))
		}
	})
	s.WriteString("hi")
	s.Write([]byte{1, 2})
	s.WriteByte('!')
	s.Flush()
	restore()

	if string(sent) != "hi\x01\x02!" {
		t.Errorf("sent %q", sent)
	}
}

func TestRead(t *testing.T) {
	p, _, _, s := open(DefaultConfig())
	regs := p.USART0.Regs()

	if _, err := s.TryReadByte(); err != ErrWouldBlock {
		t.Errorf("TryReadByte() err = %v, want ErrWouldBlock", err)
	}

	regs.DATA.Set('a')
	regs.STAT.SetBits(pac.USART_STAT_RBNE)
	b, err := s.ReadByte()
	if err != nil || b != 'a' {
		t.Errorf("ReadByte() = %q, %v", b, err)
	}
	if regs.STAT.HasBits(pac.USART_STAT_RBNE) {
		t.Error("RBNE still set after read")
	}

	regs.DATA.Set('z')
	regs.STAT.SetBits(pac.USART_STAT_RBNE)
	buf := make([]byte, 8)
	n, err := s.Read(buf)
	if err != nil || n != 1 || buf[0] != 'z' {
		t.Errorf("Read() = %d, %v, %q", n, err, buf[:n])
	}
	if n, err := s.Read(nil); n != 0 || err != nil {
		t.Errorf("Read(nil) = %d, %v", n, err)
	}
}

func TestReceiveErrors(t *testing.T) {
	p, _, _, s := open(DefaultConfig())
	regs := p.USART0.Regs()

	tests := []struct {
		flag uint32
		want error
	}{
		{pac.USART_STAT_PERR, ErrParity},
		{pac.USART_STAT_FERR, ErrFraming},
		{pac.USART_STAT_NERR, ErrNoise},
		{pac.USART_STAT_ORERR | pac.USART_STAT_RBNE, ErrOverrun},
	}
	for _, tt := range tests {
		regs.STAT.SetBits(tt.flag)
		if _, err := s.TryReadByte(); !errors.Is(err, tt.want) {
			t.Errorf("flag %#x: err = %v, want %v", tt.flag, err, tt.want)
		}
		if regs.STAT.Get()&(errFlags|pac.USART_STAT_RBNE) != 0 {
			t.Errorf("flag %#x: STAT = %#x after error", tt.flag, regs.STAT.Get())
		}
	}
}

func TestRelease(t *testing.T) {
	p, r, a, s := open(DefaultConfig())
	raw, pins := s.Release()

	if raw != p.USART0 {
		t.Error("Release returned another peripheral")
	}
	if r.APB2.IsEnabled(pac.RCU_APB2EN_USART0EN) {
		t.Error("USART0 clock still enabled")
	}
	if p.USART0.Regs().CTL0.HasBits(pac.USART_CTL0_UEN) {
		t.Error("USART0 still enabled")
	}
	if pins.Tx.String() != "PA9" || pins.Rx.String() != "PA10" {
		t.Errorf("pins = %s/%s", pins.Tx, pins.Rx)
	}
	out := gpio.AsOutput(pins.Tx.IntoPushPullOutput(a.CTL1))
	out.SetHigh()
}

func TestRemap(t *testing.T) {
	p := pac.Simulate()
	r := rcu.New(p.RCU)
	af := afio.New(p.AFIO, r.APB2)
	d := gpio.SplitD(p.GPIOD, r.APB2)

	clocks, err := r.Freeze(rcu.Config{APB1Div: 2})
	if err != nil {
		t.Fatal(err)
	}
	New[afio.USART1Remap](p.USART1,
		d.PD5.IntoAlternatePushPull(d.CTL0),
		d.PD6.IntoPullUpInput(d.CTL0),
		af.PCF0, Config{Baud: 9600}, clocks, r.APB1)

	if af.PCF0.Get() != 1<<pac.AFIO_PCF0_USART1_REMAP_Pos {
		t.Errorf("PCF0 = %#x", af.PCF0.Get())
	}
	if !r.APB1.IsEnabled(pac.RCU_APB1EN_USART1EN) {
		t.Error("USART1 clock not enabled on APB1")
	}
	// APB1 at 4 MHz: 4000000/9600 = 416.7 -> 417
	if got := p.USART1.Regs().BAUD.Get(); got != 417 {
		t.Errorf("BAUD = %d, want 417", got)
	}
}
