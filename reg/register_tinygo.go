//go:build tinygo

package reg

import "runtime/volatile"

// Register32 is a memory-mapped 32-bit hardware register.
type Register32 = volatile.Register32
