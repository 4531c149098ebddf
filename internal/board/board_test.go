package board

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"periph.io/x/conn/v3/physic"

	"gdhal/config"
	"gdhal/pac"
	"gdhal/reg"
	"gdhal/timer"
)

func TestBringBoardFile(t *testing.T) {
	cfg, err := config.LoadFile("../../config/testdata/board.json")
	if err != nil {
		t.Fatal(err)
	}
	p := pac.Simulate()
	b, err := Bring(p, cfg)
	if err != nil {
		t.Fatalf("Bring: %v", err)
	}

	if b.Clocks.APB1 != 4*physic.MegaHertz {
		t.Errorf("APB1 = %s", b.Clocks.APB1)
	}
	pw := b.PWM
	if pw.Timer != 1 || pw.Clock != 8*physic.MegaHertz || pw.Prescaler != 0 || pw.AutoReload != 7999 || pw.Achieved != physic.KiloHertz {
		t.Errorf("PWM = %+v", pw)
	}
	want := []ChannelReport{
		{timer.Ch0, "PA0", 2000, 7999, timer.ActiveHigh},
		{timer.Ch1, "PA1", 4000, 7999, timer.ActiveLow},
		{timer.Ch3, "PA3", 7999, 7999, timer.ActiveHigh},
	}
	if len(pw.Channels) != len(want) {
		t.Fatalf("channels = %+v", pw.Channels)
	}
	for i, c := range pw.Channels {
		if c != want[i] {
			t.Errorf("channel %d = %+v, want %+v", i, c, want[i])
		}
	}

	tr := p.TIMER1.Regs()
	if tr.CH0CV.Get() != 2000 || tr.CH1CV.Get() != 4000 || tr.CH3CV.Get() != 7999 || tr.CH2CV.Get() != 0 {
		t.Errorf("compare = %d %d %d %d", tr.CH0CV.Get(), tr.CH1CV.Get(), tr.CH2CV.Get(), tr.CH3CV.Get())
	}
	if !tr.CTL0.HasBits(pac.TIMER_CTL0_CEN) {
		t.Error("TIMER1 not running")
	}

	s := b.Serial
	if s.USART != 0 || s.Tx != "PA9" || s.Rx != "PA10" || s.IntDiv != 4 || s.FraDiv != 5 {
		t.Errorf("serial = %+v", s)
	}
	if got := p.USART0.Regs().BAUD.Get(); got != 0x45 {
		t.Errorf("USART0 BAUD = %#x", got)
	}

	var sent []byte
	data := &p.USART0.Regs().DATA
	restore := reg.Observe(func(r *reg.Register32, v uint32) {
		if r == data {
			sent = append(sent, byte(v))
		}
	})
	b.Console.Write([]byte("up\r\n"))
	restore()
	if string(sent) != "up\r\n" {
		t.Errorf("console sent %q", sent)
	}
}

func TestTimerRoutes(t *testing.T) {
	routes := []struct {
		timer uint8
		remap string
	}{
		{0, config.RemapNone},
		{0, config.RemapPartial},
		{0, config.RemapFull},
		{1, config.RemapNone},
		{1, config.RemapPartial1},
		{1, config.RemapPartial2},
		{1, config.RemapFull},
		{2, config.RemapNone},
		{2, config.RemapPartial},
		{2, config.RemapFull},
		{3, config.RemapNone},
		{3, config.RemapOn},
		{4, config.RemapNone},
	}
	for _, rt := range routes {
		cfg := &config.Board{
			Name: "routes",
			PWM: &config.PWMConfig{
				Timer:     rt.timer,
				Remap:     rt.remap,
				Frequency: 20000,
				Channels: []config.ChannelConfig{
					{Channel: 0, Duty: 10, Polarity: "high"},
					{Channel: 1, Duty: 20, Polarity: "high"},
					{Channel: 2, Duty: 30, Polarity: "high"},
					{Channel: 3, Duty: 40, Polarity: "low"},
				},
			},
		}
		p := pac.Simulate()
		b, err := Bring(p, cfg)
		if err != nil {
			t.Errorf("TIMER%d %s: %v", rt.timer, rt.remap, err)
			continue
		}
		pins, _ := config.TimerPins(rt.timer, rt.remap)
		for i, c := range b.PWM.Channels {
			if c.Pin != pins[i] {
				t.Errorf("TIMER%d %s CH%d pin = %s, want %s", rt.timer, rt.remap, i, c.Pin, pins[i])
			}
			if mode := pinMode(p, c.Pin); mode != 0b1011 {
				t.Errorf("TIMER%d %s %s mode = %04b", rt.timer, rt.remap, c.Pin, mode)
			}
		}
		if b.PWM.Timer != rt.timer {
			t.Errorf("TIMER%d %s: report for TIMER%d", rt.timer, rt.remap, b.PWM.Timer)
		}
	}
}

func TestUSARTRoutes(t *testing.T) {
	routes := []struct {
		usart uint8
		remap string
	}{
		{0, config.RemapNone},
		{0, config.RemapOn},
		{1, config.RemapNone},
		{1, config.RemapOn},
		{2, config.RemapNone},
		{2, config.RemapPartial},
		{2, config.RemapFull},
	}
	for _, rt := range routes {
		cfg := &config.Board{
			Name:   "routes",
			Serial: &config.SerialConfig{USART: rt.usart, Remap: rt.remap, Baud: 9600, Parity: "even", StopBits: "2"},
		}
		p := pac.Simulate()
		b, err := Bring(p, cfg)
		if err != nil {
			t.Errorf("USART%d %s: %v", rt.usart, rt.remap, err)
			continue
		}
		pins, _ := config.USARTPins(rt.usart, rt.remap)
		if b.Serial.Tx != pins[0] || b.Serial.Rx != pins[1] {
			t.Errorf("USART%d %s pins = %s/%s", rt.usart, rt.remap, b.Serial.Tx, b.Serial.Rx)
		}
		if mode := pinMode(p, pins[0]); mode != 0b1011 {
			t.Errorf("USART%d %s TX mode = %04b", rt.usart, rt.remap, mode)
		}
		if mode := pinMode(p, pins[1]); mode != 0b0100 {
			t.Errorf("USART%d %s RX mode = %04b", rt.usart, rt.remap, mode)
		}
		usarts := []pac.USARTPeriph{p.USART0, p.USART1, p.USART2}
		if !usarts[rt.usart].Regs().CTL0.HasBits(pac.USART_CTL0_UEN | pac.USART_CTL0_PCEN) {
			t.Errorf("USART%d %s not enabled with parity", rt.usart, rt.remap)
		}
	}
}

func TestBringInvalid(t *testing.T) {
	cfg := config.Default()
	cfg.PWM.Timer = 0
	cfg.PWM.Channels[0].Channel = 2

	_, err := Bring(pac.Simulate(), cfg)
	if !errors.Is(err, config.ErrInvalid) || !strings.Contains(err.Error(), "PA10") {
		t.Errorf("Bring(conflict) err = %v", err)
	}
}

func TestReports(t *testing.T) {
	p := pac.Simulate()
	b, err := Bring(p, config.Default())
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	b.WriteSummary(&buf)
	for _, want := range []string{"board gd32vf103", "TIMER1", "psc 0 car 7999", "CH0 PA0", "duty 4000/7999", "USART0 tx PA9 rx PA10 115200 baud parity none stop 1"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("summary missing %q:\n%s", want, buf.String())
		}
	}

	buf.Reset()
	DumpRegisters(&buf, p)
	for _, want := range []string{"AFIO   PCF0", "GPIOA  CTL0 4444444b", "TIMER1 CTL0", "USART0 BAUD 00000045"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("dump missing %q:\n%s", want, buf.String())
		}
	}
	if strings.Contains(buf.String(), "TIMER2") {
		t.Errorf("dump lists an unused timer:\n%s", buf.String())
	}
}

// pinMode returns the CTL:MD bits of the pin named like "PB10".
func pinMode(p *pac.Peripherals, name string) uint32 {
	ports := []pac.Port{p.GPIOA, p.GPIOB, p.GPIOC, p.GPIOD, p.GPIOE}
	g := ports[name[1]-'A'].Regs()
	idx := 0
	for _, c := range name[2:] {
		idx = idx*10 + int(c-'0')
	}
	ctl := &g.CTL0
	if idx >= 8 {
		ctl = &g.CTL1
	}
	return ctl.Get() >> (4 * (idx % 8)) & 0xF
}
