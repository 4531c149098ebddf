//go:build tinygo

package critical

import "runtime/interrupt"

// State is the interrupt state saved on entry.
type State = interrupt.State

// Enter disables interrupts and returns the previous state.
func Enter() State {
	return interrupt.Disable()
}

// Exit restores the interrupt state.
func Exit(state State) {
	interrupt.Restore(state)
}

// Active reports whether a critical section is open. Not tracked on hardware.
func Active() bool {
	return false
}
