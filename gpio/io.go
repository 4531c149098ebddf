package gpio

import (
	"gdhal/internal/critical"
)

// InputPin reads the level of a digital input.
type InputPin struct {
	h    handle
	mask uint32
}

// AsInput returns the read view of a digital input. Analog inputs and
// outputs do not satisfy its signature.
func AsInput[G Group, I ID[G], K Digital](p Pin[G, I, Input[K]]) InputPin {
	p.h.check()
	var id I
	return InputPin{h: p.h, mask: 1 << id.Index()}
}

// IsHigh reports whether the pin reads high.
func (p InputPin) IsHigh() bool {
	p.h.check()
	return p.h.regs.ISTAT.HasBits(p.mask)
}

// IsLow reports whether the pin reads low.
func (p InputPin) IsLow() bool {
	return !p.IsHigh()
}

// OutputPin drives a general purpose output.
type OutputPin struct {
	h    handle
	mask uint16
}

// AsOutput returns the drive view of an output pin.
func AsOutput[G Group, I ID[G], D Drive](p Pin[G, I, Output[D]]) OutputPin {
	p.h.check()
	var id I
	return OutputPin{h: p.h, mask: 1 << id.Index()}
}

// SetHigh drives the pin high (releases it, for open-drain).
func (p OutputPin) SetHigh() {
	p.h.check()
	p.h.regs.SetReset(p.mask, 0)
}

// SetLow drives the pin low.
func (p OutputPin) SetLow() {
	p.h.check()
	p.h.regs.SetReset(0, p.mask)
}

// Set drives the pin to level high.
func (p OutputPin) Set(high bool) {
	if high {
		p.SetHigh()
	} else {
		p.SetLow()
	}
}

// Toggle inverts the output latch.
func (p OutputPin) Toggle() {
	p.h.check()
	critical.Do(func() {
		if p.IsSetHigh() {
			p.h.regs.SetReset(0, p.mask)
		} else {
			p.h.regs.SetReset(p.mask, 0)
		}
	})
}

// IsSetHigh reports whether the output latch is high.
func (p OutputPin) IsSetHigh() bool {
	p.h.check()
	return p.h.regs.OCTL.HasBits(uint32(p.mask))
}

// IsHigh reports the level actually on the pin, which for an open-drain
// output can be held low externally.
func (p OutputPin) IsHigh() bool {
	p.h.check()
	return p.h.regs.ISTAT.HasBits(uint32(p.mask))
}
