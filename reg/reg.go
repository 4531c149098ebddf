// Package reg provides volatile access to 32-bit memory-mapped registers.
//
// On TinyGo, Register32 is runtime/volatile.Register32 placed over the vendor
// base addresses. Under the regular Go toolchain it is a register model backed
// by ordinary memory, so peripheral code and its tests run on a host.
package reg

// Field extracts a bit field of width mask at pos from a register value.
func Field(value, mask uint32, pos uint8) uint32 {
	return (value >> pos) & mask
}
