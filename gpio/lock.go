package gpio

import (
	"gdhal/debug"
	"gdhal/internal/critical"
	"gdhal/pac"
)

// PortLock is the token for a port's configuration lock register. One exists
// per port.
type PortLock struct {
	regs *pac.GPIO_Type
	port uint8
}

// Locked returns the pins of the port whose configuration is frozen.
func (l *PortLock) Locked() uint16 {
	v := l.regs.LOCK.Get()
	if v&pac.GPIO_LOCK_LKK == 0 {
		return 0
	}
	return uint16(v & pac.GPIO_LOCK_LK_Msk)
}

// Locked is a pin whose mode is frozen until the next reset. It keeps the I/O
// views of its mode but has no transitions.
type Locked[G Group, I ID[G], M Mode] struct {
	h handle
}

// Lock freezes the pin's configuration with the LOCK key sequence. Once LKK
// is set the port's LOCK register ignores writes until the next reset, so only
// the first Lock on a port takes effect. Lock panics if l belongs to another
// port, if the port is already locked, or if LKK does not read back set.
func Lock[G Group, I ID[G], M Mode](p Pin[G, I, M], l *PortLock) Locked[G, I, M] {
	p.h.check()
	var id I
	if id.Port() != l.port {
		panic(errLockPort)
	}
	var locked, ok bool
	critical.Do(func() {
		v := l.regs.LOCK.Get()
		if locked = v&pac.GPIO_LOCK_LKK != 0; locked {
			return
		}
		lk := v&pac.GPIO_LOCK_LK_Msk | 1<<id.Index()
		l.regs.WriteLock(pac.GPIO_LOCK_LKK | lk)
		l.regs.WriteLock(lk)
		l.regs.WriteLock(pac.GPIO_LOCK_LKK | lk)
		l.regs.LOCK.Get()
		ok = l.regs.LOCK.HasBits(pac.GPIO_LOCK_LKK)
		debug.Record(debug.EvtPinLock, id.Port()<<4|id.Index(), lk, 0)
	})
	if locked {
		panic(errLocked)
	}
	if !ok {
		panic(errLockFailed)
	}
	return Locked[G, I, M]{h: p.h.next()}
}

func (p Locked[G, I, M]) String() string {
	var id I
	return pinName(id.Port(), id.Index())
}

// AsLockedInput returns the read view of a locked digital input.
func AsLockedInput[G Group, I ID[G], K Digital](p Locked[G, I, Input[K]]) InputPin {
	p.h.check()
	var id I
	return InputPin{h: p.h, mask: 1 << id.Index()}
}

// AsLockedOutput returns the drive view of a locked output.
func AsLockedOutput[G Group, I ID[G], D Drive](p Locked[G, I, Output[D]]) OutputPin {
	p.h.check()
	var id I
	return OutputPin{h: p.h, mask: 1 << id.Index()}
}
