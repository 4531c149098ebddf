//go:build !tinygo

package critical

import "sync/atomic"

// State is a placeholder for interrupt state on regular Go
type State uintptr

var depth atomic.Int32

// Enter marks the start of a critical section. There are no interrupts to
// mask on a host; the nesting depth is kept so callers can be checked.
func Enter() State {
	return State(depth.Add(1) - 1)
}

// Exit closes the critical section opened by the matching Enter.
func Exit(state State) {
	depth.Store(int32(state))
}

// Active reports whether a critical section is open.
func Active() bool {
	return depth.Load() > 0
}
