package gpio

import (
	"os"
	"os/exec"
	"strings"
	"testing"

	"gdhal/debug"
	"gdhal/pac"
	"gdhal/rcu"
	"gdhal/reg"
)

func setup() (*pac.Peripherals, *rcu.RCU) {
	p := pac.Simulate()
	return p, rcu.New(p.RCU)
}

// field returns the CTL:MD bits of pin idx.
func field(g *pac.GPIO_Type, idx uint8) uint32 {
	r := g.CTL0.Get()
	if idx >= 8 {
		r = g.CTL1.Get()
	}
	return r >> (4 * (idx % 8)) & 0xF
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

func TestSplitResetsPort(t *testing.T) {
	p, r := setup()
	regs := p.GPIOA.Regs()
	regs.CTL0.Set(0x12345678)
	regs.OCTL.Set(0xFFFF)

	parts := SplitA(p.GPIOA, r.APB2)

	if !r.APB2.IsEnabled(pac.RCU_APB2EN_PAEN) {
		t.Error("port clock not enabled")
	}
	if regs.CTL0.Get() != pac.GPIO_RESET_CTL || regs.CTL1.Get() != pac.GPIO_RESET_CTL {
		t.Errorf("CTL0/CTL1 = %#x/%#x after split", regs.CTL0.Get(), regs.CTL1.Get())
	}
	if regs.OCTL.Get() != 0 {
		t.Errorf("OCTL = %#x after split", regs.OCTL.Get())
	}
	if parts.PA15.String() != "PA15" || parts.PA15.Port() != 0 || parts.PA15.Index() != 15 {
		t.Errorf("PA15 identity = %s/%d/%d", parts.PA15, parts.PA15.Port(), parts.PA15.Index())
	}
}

func TestModeEncoding(t *testing.T) {
	p, r := setup()
	parts := SplitA(p.GPIOA, r.APB2)
	regs := p.GPIOA.Regs()
	ctl := parts.CTL1

	check := func(mode string, want uint32) {
		t.Helper()
		if got := field(regs, 9); got != want {
			t.Errorf("%s: mode bits = %04b, want %04b", mode, got, want)
		}
		if rest := regs.CTL1.Get() &^ (0xF << 4); rest != pac.GPIO_RESET_CTL&^(0xF<<4) {
			t.Errorf("%s: neighbouring pins changed: CTL1 = %#x", mode, regs.CTL1.Get())
		}
		if regs.CTL0.Get() != pac.GPIO_RESET_CTL {
			t.Errorf("%s: CTL0 changed: %#x", mode, regs.CTL0.Get())
		}
	}

	analog := parts.PA9.IntoAnalog(ctl)
	check("analog", 0b0000)
	up := analog.IntoPullUpInput(ctl)
	check("pull-up", 0b1000)
	if !regs.OCTL.HasBits(1 << 9) {
		t.Error("pull-up did not set the output latch")
	}
	down := up.IntoPullDownInput(ctl)
	check("pull-down", 0b1000)
	if regs.OCTL.HasBits(1 << 9) {
		t.Error("pull-down did not clear the output latch")
	}
	pp := down.IntoPushPullOutput(ctl)
	check("push-pull output", 0b0011)
	od := pp.IntoOpenDrainOutput(ctl)
	check("open-drain output", 0b0111)
	afpp := od.IntoAlternatePushPull(ctl)
	check("alternate push-pull", 0b1011)
	afod := afpp.IntoAlternateOpenDrain(ctl)
	check("alternate open-drain", 0b1111)
	afod.IntoFloatingInput(ctl)
	check("floating", 0b0100)
}

func TestLowGroupUsesCTL0(t *testing.T) {
	p, r := setup()
	parts := SplitA(p.GPIOA, r.APB2)
	parts.PA3.IntoPushPullOutput(parts.CTL0)
	if got := p.GPIOA.Regs().CTL0.Get(); got != 0x44443444 {
		t.Errorf("CTL0 = %#x, want 0x44443444", got)
	}
	if got := p.GPIOA.Regs().CTL1.Get(); got != pac.GPIO_RESET_CTL {
		t.Errorf("CTL1 = %#x", got)
	}
}

func TestTransitionRecorded(t *testing.T) {
	p, r := setup()
	parts := SplitB(p.GPIOB, r.APB2)
	debug.Clear()
	parts.PB10.IntoAlternatePushPull(parts.CTL1)

	evts := debug.Events()
	if len(evts) != 1 {
		t.Fatalf("events = %v", evts)
	}
	e := evts[0]
	if e.Kind != debug.EvtPinMode || e.Unit != 1<<4|10 || e.Value1 != 0b1011 || !e.Critical {
		t.Errorf("event = %+v", e)
	}
}

func TestStaleHandle(t *testing.T) {
	p, r := setup()
	parts := SplitA(p.GPIOA, r.APB2)

	pa0 := parts.PA0
	out := pa0.IntoPushPullOutput(parts.CTL0)
	mustPanic(t, errStale, func() { pa0.IntoAnalog(parts.CTL0) })

	view := AsOutput(out)
	view.SetHigh()
	out.IntoFloatingInput(parts.CTL0)
	mustPanic(t, errStale, func() { view.SetLow() })
	mustPanic(t, errStale, func() { AsOutput(out) })

	var zero Pin[GroupAL, PA1, Input[Floating]]
	mustPanic(t, errStale, func() { zero.IntoAnalog(parts.CTL0) })
}

func TestOutputPin(t *testing.T) {
	p, r := setup()
	parts := SplitC(p.GPIOC, r.APB2)
	regs := p.GPIOC.Regs()
	led := AsOutput(parts.PC13.IntoPushPullOutput(parts.CTL1))

	led.SetHigh()
	if !led.IsSetHigh() || !led.IsHigh() || regs.OCTL.Get() != 1<<13 {
		t.Errorf("after SetHigh: OCTL = %#x", regs.OCTL.Get())
	}
	led.Toggle()
	if led.IsSetHigh() || regs.OCTL.Get() != 0 {
		t.Errorf("after Toggle: OCTL = %#x", regs.OCTL.Get())
	}
	led.Set(true)
	if !led.IsSetHigh() {
		t.Error("Set(true) left the latch low")
	}
	led.SetLow()
	if led.IsSetHigh() {
		t.Error("SetLow left the latch high")
	}
}

func TestOpenDrainReadback(t *testing.T) {
	p, r := setup()
	parts := SplitB(p.GPIOB, r.APB2)
	regs := p.GPIOB.Regs()
	sda := AsOutput(parts.PB7.IntoOpenDrainOutput(parts.CTL0))

	sda.SetHigh()
	regs.ISTAT.ClearBits(1 << 7) // held low by another device
	if !sda.IsSetHigh() || sda.IsHigh() {
		t.Errorf("latch/pin = %v/%v, want true/false", sda.IsSetHigh(), sda.IsHigh())
	}
}

func TestInputPin(t *testing.T) {
	p, r := setup()
	parts := SplitA(p.GPIOA, r.APB2)
	regs := p.GPIOA.Regs()

	btn := AsInput(parts.PA0.IntoPullDownInput(parts.CTL0))
	if !btn.IsLow() {
		t.Error("pulled-down input reads high")
	}
	regs.ISTAT.SetBits(1)
	if !btn.IsHigh() {
		t.Error("driven input reads low")
	}

	up := AsInput(parts.PA1.IntoPullUpInput(parts.CTL0))
	if !up.IsHigh() {
		t.Error("pulled-up input reads low")
	}

	fl := AsInput(parts.PA2)
	if fl.IsHigh() {
		t.Error("floating input reads high with ISTAT clear")
	}
}

func TestLock(t *testing.T) {
	p, r := setup()
	partsA := SplitA(p.GPIOA, r.APB2)
	partsB := SplitB(p.GPIOB, r.APB2)
	regs := p.GPIOB.Regs()

	var writes []uint32
	restore := reg.Observe(func(r *reg.Register32, v uint32) {
		if r == &regs.LOCK {
			writes = append(writes, v)
		}
	})
	out := partsB.PB5.IntoPushPullOutput(partsB.CTL0)
	locked := Lock(out, partsB.LOCK)
	restore()

	want := []uint32{pac.GPIO_LOCK_LKK | 1<<5, 1 << 5, pac.GPIO_LOCK_LKK | 1<<5}
	if len(writes) != len(want) {
		t.Fatalf("LOCK writes = %#x, want %#x", writes, want)
	}
	for i := range want {
		if writes[i] != want[i] {
			t.Errorf("LOCK write %d = %#x, want %#x", i, writes[i], want[i])
		}
	}
	if partsB.LOCK.Locked() != 1<<5 {
		t.Errorf("Locked() = %#x", partsB.LOCK.Locked())
	}
	if locked.String() != "PB5" {
		t.Errorf("String() = %s", locked)
	}

	AsLockedOutput(locked).SetHigh()
	if !regs.OCTL.HasBits(1 << 5) {
		t.Error("locked output not driven")
	}
	mustPanic(t, errStale, func() { out.IntoFloatingInput(partsB.CTL0) })

	writes = nil
	restore = reg.Observe(func(r *reg.Register32, v uint32) {
		if r == &regs.LOCK {
			writes = append(writes, v)
		}
	})
	pb6 := partsB.PB6.IntoPullUpInput(partsB.CTL0)
	mustPanic(t, errLocked, func() { Lock(pb6, partsB.LOCK) })
	restore()
	if len(writes) != 0 {
		t.Errorf("LOCK written %d times on a locked port", len(writes))
	}
	if partsB.LOCK.Locked() != 1<<5 {
		t.Errorf("Locked() = %#x after second lock", partsB.LOCK.Locked())
	}
	AsInput(pb6)

	in := Lock(partsA.PA3, partsA.LOCK)
	p.GPIOA.Regs().ISTAT.SetBits(1 << 3)
	if !AsLockedInput(in).IsHigh() {
		t.Error("locked input reads low")
	}
	if partsA.LOCK.Locked() != 1<<3 {
		t.Errorf("port A Locked() = %#x", partsA.LOCK.Locked())
	}

	mustPanic(t, errLockPort, func() { Lock(partsA.PA0, partsB.LOCK) })
	partsA.PA0.IntoAnalog(partsA.CTL0)
}

func TestErase(t *testing.T) {
	p, r := setup()
	parts := SplitA(p.GPIOA, r.APB2)
	pin := parts.PA8.IntoAlternatePushPull(parts.CTL1)
	e := pin.Erase()

	if e.String() != "PA8" || e.Port() != 0 || e.Index() != 8 || e.Mode() != 0b1011 {
		t.Errorf("erased = %s port=%d index=%d mode=%04b", e, e.Port(), e.Index(), e.Mode())
	}
	mustPanic(t, errStale, func() { pin.IntoFloatingInput(parts.CTL1) })
	if field(p.GPIOA.Regs(), 8) != 0b1011 {
		t.Error("erase changed the hardware mode")
	}
}

func buildFails(t *testing.T, dir, want string) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping compile check in short mode")
	}
	gobin, err := exec.LookPath("go")
	if err != nil {
		t.Skip("go command not available")
	}
	out, err := exec.Command(gobin, "build", "-o", os.DevNull, "./testdata/"+dir).CombinedOutput()
	if err == nil {
		t.Fatalf("testdata/%s compiled, want error containing %q", dir, want)
	}
	if !strings.Contains(string(out), want) {
		t.Errorf("testdata/%s: error does not contain %q:\n%s", dir, want, out)
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		dir  string
		want string
	}{
		{"wrongctl", "cannot use"},
		{"analoginput", "does not satisfy"},
		{"outputread", "does not match"},
	}
	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			buildFails(t, tt.dir, tt.want)
		})
	}
}
