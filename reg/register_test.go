package reg

import "testing"

func TestReplaceBits(t *testing.T) {
	var r Register32
	r.Set(0x44444444)

	r.ReplaceBits(0b1011, 0b1111, 8)
	if got := r.Get(); got != 0x44444B44 {
		t.Fatalf("ReplaceBits: got %#x, want %#x", got, 0x44444B44)
	}

	// value bits outside mask must not leak into neighbouring fields
	r.ReplaceBits(0xFF, 0b1111, 0)
	if got := r.Get(); got != 0x44444B4F {
		t.Errorf("ReplaceBits with wide value: got %#x", got)
	}
}

func TestSetClearHasBits(t *testing.T) {
	var r Register32
	r.SetBits(1 << 3)
	r.SetBits(1 << 12)
	if !r.HasBits(1 << 3) {
		t.Error("bit 3 should be set")
	}
	r.ClearBits(1 << 3)
	if r.HasBits(1 << 3) {
		t.Error("bit 3 should be clear")
	}
	if r.Get() != 1<<12 {
		t.Errorf("unexpected value %#x", r.Get())
	}
	if Field(r.Get(), 0b1, 12) != 1 {
		t.Error("Field should extract bit 12")
	}
}

func TestObserve(t *testing.T) {
	var a, b Register32
	var writes []uint32
	restore := Observe(func(r *Register32, v uint32) {
		if r == &a {
			writes = append(writes, v)
		}
	})
	a.Set(1)
	b.Set(2)
	a.SetBits(4)
	restore()
	a.Set(8)

	if len(writes) != 2 || writes[0] != 1 || writes[1] != 5 {
		t.Errorf("observed writes = %v, want [1 5]", writes)
	}
}
