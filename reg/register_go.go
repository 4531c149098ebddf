//go:build !tinygo

package reg

import (
	"sync"
	"sync/atomic"
)

// Register32 models a 32-bit hardware register in host memory. It has the
// same layout and method set as TinyGo's volatile.Register32.
type Register32 struct {
	Reg uint32
}

// Observer is called after every write to any Register32.
type Observer func(r *Register32, value uint32)

var (
	observerMu sync.Mutex
	observer   Observer
)

// Observe installs fn as the write observer and returns a function restoring
// the previous one. Passing nil removes observation.
func Observe(fn Observer) (restore func()) {
	observerMu.Lock()
	prev := observer
	observer = fn
	observerMu.Unlock()
	return func() {
		observerMu.Lock()
		observer = prev
		observerMu.Unlock()
	}
}

func notify(r *Register32, value uint32) {
	observerMu.Lock()
	fn := observer
	observerMu.Unlock()
	if fn != nil {
		fn(r, value)
	}
}

// Get returns the value in the register.
func (r *Register32) Get() uint32 {
	return atomic.LoadUint32(&r.Reg)
}

// Set updates the register value.
func (r *Register32) Set(value uint32) {
	atomic.StoreUint32(&r.Reg, value)
	notify(r, value)
}

// SetBits reads the register, sets the given bits, and writes it back.
func (r *Register32) SetBits(value uint32) {
	r.Set(r.Get() | value)
}

// ClearBits reads the register, clears the given bits, and writes it back.
func (r *Register32) ClearBits(value uint32) {
	r.Set(r.Get() &^ value)
}

// HasBits reads the register and returns true if any of the given bits is set.
func (r *Register32) HasBits(value uint32) bool {
	return r.Get()&value > 0
}

// ReplaceBits replaces the field of width mask at pos with value.
func (r *Register32) ReplaceBits(value uint32, mask uint32, pos uint8) {
	r.Set(r.Get()&^(mask<<pos) | (value&mask)<<pos)
}
