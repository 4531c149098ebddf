//go:build tinygo

package pac

// SetReset drives the output latch through the bit operate register: pins in
// set go high, pins in reset go low, all in one store.
func (g *GPIO_Type) SetReset(set, reset uint16) {
	g.BOP.Set(uint32(reset)<<16 | uint32(set))
}

// WriteLock stores one word of the LOCK key sequence.
func (g *GPIO_Type) WriteLock(v uint32) {
	g.LOCK.Set(v)
}
