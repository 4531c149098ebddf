// Package critical runs register read-modify-write sequences with interrupts
// disabled, restoring the previous interrupt state on exit.
package critical

// Do runs fn inside a critical section. The prior interrupt state is
// restored even if fn panics.
func Do(fn func()) {
	state := Enter()
	defer Exit(state)
	fn()
}
