package pac

import (
	"testing"
	"unsafe"
)

func TestRegisterOffsets(t *testing.T) {
	var g GPIO_Type
	var tm TIMER_Type
	var r RCU_Type
	var a AFIO_Type
	var u USART_Type

	tests := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"GPIO.LOCK", unsafe.Offsetof(g.LOCK), 0x18},
		{"AFIO.PCF0", unsafe.Offsetof(a.PCF0), 0x04},
		{"AFIO.PCF1", unsafe.Offsetof(a.PCF1), 0x1C},
		{"RCU.APB2EN", unsafe.Offsetof(r.APB2EN), 0x18},
		{"RCU.APB1EN", unsafe.Offsetof(r.APB1EN), 0x1C},
		{"RCU.DSV", unsafe.Offsetof(r.DSV), 0x34},
		{"TIMER.SWEVG", unsafe.Offsetof(tm.SWEVG), 0x14},
		{"TIMER.CHCTL2", unsafe.Offsetof(tm.CHCTL2), 0x20},
		{"TIMER.PSC", unsafe.Offsetof(tm.PSC), 0x28},
		{"TIMER.CAR", unsafe.Offsetof(tm.CAR), 0x2C},
		{"TIMER.CH3CV", unsafe.Offsetof(tm.CH3CV), 0x40},
		{"TIMER.DMATB", unsafe.Offsetof(tm.DMATB), 0x4C},
		{"USART.BAUD", unsafe.Offsetof(u.BAUD), 0x08},
		{"USART.GP", unsafe.Offsetof(u.GP), 0x18},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s offset = %#x, want %#x", tt.name, tt.got, tt.want)
		}
	}
}

func TestSimulateResetValues(t *testing.T) {
	p := Simulate()
	if got := p.GPIOC.Regs().CTL1.Get(); got != GPIO_RESET_CTL {
		t.Errorf("GPIOC.CTL1 = %#x, want %#x", got, GPIO_RESET_CTL)
	}
	if got := p.USART0.Regs().STAT.Get(); got != USART_RESET_STAT {
		t.Errorf("USART0.STAT = %#x, want %#x", got, USART_RESET_STAT)
	}
	if got := p.RCU.Regs().CTL.Get(); got != RCU_RESET_CTL {
		t.Errorf("RCU.CTL = %#x", got)
	}

	q := Simulate()
	p.TIMER1.Regs().CAR.Set(100)
	if q.TIMER1.Regs().CAR.Get() != 0 {
		t.Error("simulated peripheral sets must not share registers")
	}
}

func TestAfterReset(t *testing.T) {
	p := Simulate()
	tim := p.TIMER2.Regs()
	tim.PSC.Set(7)
	tim.CAR.Set(999)
	other := p.TIMER3.Regs()
	other.PSC.Set(3)

	AfterReset(p.RCU.Regs(), false, p.TIMER2.EnableMask())
	if tim.PSC.Get() != 0 || tim.CAR.Get() != 0 {
		t.Errorf("TIMER2 not reset: psc=%d car=%d", tim.PSC.Get(), tim.CAR.Get())
	}
	if other.PSC.Get() != 3 {
		t.Error("TIMER3 must not be affected by TIMER2 reset")
	}

	gp := p.GPIOB.Regs()
	gp.CTL0.Set(0x33333333)
	AfterReset(p.RCU.Regs(), true, p.GPIOB.EnableMask())
	if gp.CTL0.Get() != GPIO_RESET_CTL {
		t.Errorf("GPIOB.CTL0 = %#x after reset", gp.CTL0.Get())
	}
}

func TestTakeOnce(t *testing.T) {
	if _, ok := Take(); !ok {
		t.Fatal("first Take should succeed")
	}
	if p, ok := Take(); ok || p != nil {
		t.Fatal("second Take must fail")
	}
}

func TestInstanceIdentity(t *testing.T) {
	p := Simulate()
	if !p.TIMER0.Advanced() || p.TIMER1.Advanced() {
		t.Error("only TIMER0 is an advanced timer")
	}
	if p.TIMER4.Index() != 4 || p.USART2.Index() != 2 || p.GPIOE.Index() != 4 {
		t.Error("unexpected instance index")
	}
}

func TestSetReset(t *testing.T) {
	g := Simulate().GPIOA.Regs()
	g.SetReset(1<<3|1<<5, 0)
	g.SetReset(0, 1<<5)
	if got := g.OCTL.Get(); got != 1<<3 {
		t.Errorf("OCTL = %#x, want %#x", got, 1<<3)
	}
	if got := g.BOP.Get(); got != 1<<(16+5) {
		t.Errorf("BOP = %#x", got)
	}
	if got := g.ISTAT.Get(); got != 1<<3 {
		t.Errorf("ISTAT = %#x", got)
	}
}

func TestReceiveClearsRBNE(t *testing.T) {
	u := Simulate().USART1.Regs()
	u.DATA.Set('x')
	u.STAT.SetBits(USART_STAT_RBNE)
	if got := u.Receive(); got != 'x' {
		t.Errorf("Receive() = %q", got)
	}
	if u.STAT.HasBits(USART_STAT_RBNE) {
		t.Error("RBNE still set")
	}
}

func TestWriteLock(t *testing.T) {
	g := Simulate().GPIOB.Regs()

	g.WriteLock(GPIO_LOCK_LKK | 1<<2)
	g.WriteLock(1 << 3)
	g.WriteLock(GPIO_LOCK_LKK | 1<<3)
	if g.LOCK.HasBits(GPIO_LOCK_LKK) {
		t.Fatalf("broken sequence latched LKK: %#x", g.LOCK.Get())
	}

	g.WriteLock(GPIO_LOCK_LKK | 1<<2)
	g.WriteLock(1 << 2)
	if g.LOCK.HasBits(GPIO_LOCK_LKK) {
		t.Fatal("LKK set before the sequence finished")
	}
	g.WriteLock(GPIO_LOCK_LKK | 1<<2)
	if got := g.LOCK.Get(); got != GPIO_LOCK_LKK|1<<2 {
		t.Fatalf("LOCK = %#x, want %#x", got, GPIO_LOCK_LKK|1<<2)
	}

	g.WriteLock(GPIO_LOCK_LKK | 1<<7)
	g.WriteLock(1 << 7)
	g.WriteLock(GPIO_LOCK_LKK | 1<<7)
	if got := g.LOCK.Get(); got != GPIO_LOCK_LKK|1<<2 {
		t.Errorf("LOCK = %#x after writes to a locked port", got)
	}
}
