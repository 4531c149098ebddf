// Package gpio models GPIO pins as type states.
//
// A pin's type is Pin[G, I, M]: G names the control register group (the
// CTL0 or CTL1 half of a port) that holds the pin's mode bits, I names the
// pin itself and M is its electrical mode. Mode transitions are methods that
// take the group's *Ctl token and return the pin under its new type, so an
// operation that needs a particular mode only accepts pins in that mode, and
// a token for another group is a compile error.
//
// Go cannot consume the old value on a transition. Every pin instead shares a
// state cell with the handles derived from it, and using a superseded handle
// panics.
package gpio

//go:generate go run ./internal/gen -o ports_gen.go

import (
	"strconv"

	"gdhal/debug"
	"gdhal/internal/critical"
	"gdhal/pac"
	"gdhal/rcu"
	"gdhal/reg"
)

const (
	errStale      = "gpio: stale pin handle"
	errLockPort   = "gpio: lock token belongs to another port"
	errLocked     = "gpio: port configuration already locked"
	errLockFailed = "gpio: lock sequence failed"
)

// Group is a control register group: pins 0-7 of a port are configured
// through CTL0, pins 8-15 through CTL1.
type Group interface {
	ctl() uint8
}

// ID identifies one pin whose mode bits live in group G.
type ID[G Group] interface {
	group(G)
	Port() uint8
	Index() uint8
}

// Ctl is the token for the control register of group G. Holding it by
// pointer is what allows a pin in the group to change mode.
type Ctl[G Group] struct {
	regs *pac.GPIO_Type
}

// access returns the control register the token guards.
func (c *Ctl[G]) access() *reg.Register32 {
	var g G
	if g.ctl() == 0 {
		return &c.regs.CTL0
	}
	return &c.regs.CTL1
}

type state struct {
	gen uint32
}

// handle is the runtime part of a pin: its port registers and the state cell
// that tells current handles from stale ones.
type handle struct {
	regs *pac.GPIO_Type
	st   *state
	gen  uint32
}

func (h handle) check() {
	if h.st == nil || h.st.gen != h.gen {
		panic(errStale)
	}
}

// next retires h and returns its successor.
func (h handle) next() handle {
	h.st.gen++
	h.gen = h.st.gen
	return h
}

// Pin is a GPIO pin in mode M.
type Pin[G Group, I ID[G], M Mode] struct {
	h handle
}

func newPin[G Group, I ID[G]](regs *pac.GPIO_Type) Pin[G, I, Input[Floating]] {
	return Pin[G, I, Input[Floating]]{h: handle{regs: regs, st: &state{gen: 1}, gen: 1}}
}

// Port returns the port number, 0 for port A.
func (p Pin[G, I, M]) Port() uint8 {
	var id I
	return id.Port()
}

// Index returns the pin number within its port.
func (p Pin[G, I, M]) Index() uint8 {
	var id I
	return id.Index()
}

func (p Pin[G, I, M]) String() string {
	return pinName(p.Port(), p.Index())
}

func pinName(port, index uint8) string {
	return "P" + string(rune('A'+port)) + strconv.Itoa(int(index))
}

// into programs mode N for the pin and returns it under its new type.
func into[G Group, I ID[G], M, N Mode](p Pin[G, I, M], ctl *Ctl[G]) Pin[G, I, N] {
	p.h.check()
	var id I
	var n N
	cfg := n.config()
	idx := id.Index()

	critical.Do(func() {
		ctl.access().ReplaceBits(cfg.bits, pac.GPIO_CTL_MODE_Msk, 4*(idx%pac.GPIO_PINS_PER_CTL))
		switch cfg.pull {
		case pullUp:
			p.h.regs.SetReset(1<<idx, 0)
		case pullDown:
			p.h.regs.SetReset(0, 1<<idx)
		}
		debug.Record(debug.EvtPinMode, id.Port()<<4|idx, cfg.bits, 0)
	})
	return Pin[G, I, N]{h: p.h.next()}
}

// IntoFloatingInput configures the pin as a floating input.
func (p Pin[G, I, M]) IntoFloatingInput(ctl *Ctl[G]) Pin[G, I, Input[Floating]] {
	return into[G, I, M, Input[Floating]](p, ctl)
}

// IntoPullUpInput configures the pin as an input with the pull-up enabled.
func (p Pin[G, I, M]) IntoPullUpInput(ctl *Ctl[G]) Pin[G, I, Input[PullUp]] {
	return into[G, I, M, Input[PullUp]](p, ctl)
}

// IntoPullDownInput configures the pin as an input with the pull-down enabled.
func (p Pin[G, I, M]) IntoPullDownInput(ctl *Ctl[G]) Pin[G, I, Input[PullDown]] {
	return into[G, I, M, Input[PullDown]](p, ctl)
}

// IntoAnalog configures the pin as an analog input.
func (p Pin[G, I, M]) IntoAnalog(ctl *Ctl[G]) Pin[G, I, Input[Analog]] {
	return into[G, I, M, Input[Analog]](p, ctl)
}

// IntoPushPullOutput configures the pin as a push-pull output.
func (p Pin[G, I, M]) IntoPushPullOutput(ctl *Ctl[G]) Pin[G, I, Output[PushPull]] {
	return into[G, I, M, Output[PushPull]](p, ctl)
}

// IntoOpenDrainOutput configures the pin as an open-drain output.
func (p Pin[G, I, M]) IntoOpenDrainOutput(ctl *Ctl[G]) Pin[G, I, Output[OpenDrain]] {
	return into[G, I, M, Output[OpenDrain]](p, ctl)
}

// IntoAlternatePushPull hands the pin to a peripheral, driven push-pull.
func (p Pin[G, I, M]) IntoAlternatePushPull(ctl *Ctl[G]) Pin[G, I, Alternate[PushPull]] {
	return into[G, I, M, Alternate[PushPull]](p, ctl)
}

// IntoAlternateOpenDrain hands the pin to a peripheral, driven open-drain.
func (p Pin[G, I, M]) IntoAlternateOpenDrain(ctl *Ctl[G]) Pin[G, I, Alternate[OpenDrain]] {
	return into[G, I, M, Alternate[OpenDrain]](p, ctl)
}

// Erased is a pin that has been handed over to a peripheral. It keeps the
// pin's identity and mode for diagnostics but has no operations.
type Erased struct {
	port  uint8
	index uint8
	mode  uint32
}

// Erase retires the typed pin. The pin keeps its hardware mode.
func (p Pin[G, I, M]) Erase() Erased {
	p.h.check()
	p.h.next()
	var m M
	return Erased{port: p.Port(), index: p.Index(), mode: m.config().bits}
}

func (e Erased) Port() uint8  { return e.port }
func (e Erased) Index() uint8 { return e.index }

// Mode returns the CTL:MD bits the pin was left in.
func (e Erased) Mode() uint32 { return e.mode }

func (e Erased) String() string { return pinName(e.port, e.index) }

// split enables a port, pulses its reset and returns its registers.
func split(raw pac.Port, apb2 *rcu.APB[pac.APB2]) *pac.GPIO_Type {
	apb2.Enable(raw.EnableMask())
	apb2.Reset(raw.EnableMask())
	return raw.Regs()
}
