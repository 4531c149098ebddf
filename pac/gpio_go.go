//go:build !tinygo

package pac

import (
	"sync"
	"sync/atomic"
)

// SetReset drives the output latch through the bit operate register: pins in
// set go high, pins in reset go low, all in one store.
//
// The register model applies the write to OCTL the way the silicon does and
// loops the changed latch bits back into ISTAT, as if nothing else drove the
// pins. Tests that need an external level write ISTAT directly.
func (g *GPIO_Type) SetReset(set, reset uint16) {
	g.BOP.Set(uint32(reset)<<16 | uint32(set))
	g.OCTL.Set(g.OCTL.Get()&^uint32(reset) | uint32(set))
	g.ISTAT.Set(g.ISTAT.Get()&^uint32(reset) | uint32(set))
}

var (
	lockMu    sync.Mutex
	lockSteps = map[*GPIO_Type]uint8{}
)

// WriteLock stores one word of the LOCK key sequence.
//
// The register model follows the silicon: LKK reads 1 only after the full
// LKK=1, LKK=0, LKK=1 sequence with unchanged LK bits, a broken sequence
// starts over, and once LKK is set the register ignores writes until reset.
func (g *GPIO_Type) WriteLock(v uint32) {
	if g.LOCK.HasBits(GPIO_LOCK_LKK) {
		return
	}
	lockMu.Lock()
	defer lockMu.Unlock()

	lk := v & GPIO_LOCK_LK_Msk
	prev := g.LOCK.Get() & GPIO_LOCK_LK_Msk
	key := v&GPIO_LOCK_LKK != 0
	step := lockSteps[g]
	switch {
	case step == 1 && !key && lk == prev:
		step = 2
	case step == 2 && key && lk == prev:
		step = 3
	case key:
		step = 1
	default:
		step = 0
	}

	g.LOCK.Set(v)
	if step == 3 {
		delete(lockSteps, g)
		atomic.StoreUint32(&g.LOCK.Reg, GPIO_LOCK_LKK|lk)
		return
	}
	lockSteps[g] = step
	atomic.StoreUint32(&g.LOCK.Reg, lk)
}
