// Package debug carries diagnostic output for the HAL: an optional line
// writer supplied by the board (UART, semihosting, host stdout) and a
// fixed-size ring of hardware sequencing events for post-mortem inspection.
package debug

import "gdhal/internal/critical"

// Writer is a function type for writing debug lines
type Writer func(string)

// Event captures one hardware configuration step.
type Event struct {
	Kind     uint8  // Event kind (Evt*)
	Unit     uint8  // Peripheral instance, or port<<4|pin for GPIO
	Value1   uint32 // Kind-dependent value
	Value2   uint32 // Kind-dependent value
	Critical bool   // Recorded inside a critical section
}

// Event kinds
const (
	EvtClockEnable   = 1  // Peripheral bus clock enabled (v1=bus, v2=mask)
	EvtResetPulse    = 2  // Reset line pulsed (v1=bus, v2=mask)
	EvtRemap         = 3  // AFIO remap written (v1=PCF0)
	EvtTimebase      = 4  // Prescaler/auto-reload programmed (v1=psc, v2=car)
	EvtChannelMode   = 5  // Output compare mode set (v1=channel, v2=mode)
	EvtUpdate        = 6  // Software update event issued
	EvtAutoReload    = 7  // Auto-reload shadow enabled
	EvtCounterStart  = 8  // Counter enabled
	EvtChannelOutput = 9  // Channel output enabled/disabled (v1=channel, v2=on)
	EvtPinMode       = 10 // Pin mode field written (v1=mode bits)
	EvtPinLock       = 11 // Pin configuration locked (v1=LOCK)
	EvtBaud          = 12 // Baud divisor written (v1=intdiv, v2=fradiv)
	EvtCounterStop   = 13 // Counter disabled
)

const (
	RingSize = 64 // Keep the last 64 events
)

var (
	// println is the debug line writer (set by board code)
	println Writer = func(s string) {}

	// enabled gates Println; event recording is always on
	enabled bool

	ring     [RingSize]Event
	ringHead uint8
	ringLen  uint8
)

// SetWriter sets the platform-specific debug output function
func SetWriter(w Writer) {
	if w == nil {
		w = func(string) {}
	}
	println = w
}

// SetEnabled enables or disables debug line output
func SetEnabled(on bool) {
	enabled = on
}

// IsEnabled returns whether debug line output is enabled
func IsEnabled() bool {
	return enabled
}

// Println writes a debug line through the board writer when enabled.
func Println(msg string) {
	if enabled {
		println(msg)
	}
}

// Record captures a configuration event in the ring buffer.
func Record(kind, unit uint8, v1, v2 uint32) {
	idx := ringHead
	ring[idx] = Event{
		Kind:     kind,
		Unit:     unit,
		Value1:   v1,
		Value2:   v2,
		Critical: critical.Active(),
	}
	ringHead = (idx + 1) % RingSize
	if ringLen < RingSize {
		ringLen++
	}
}

// Events returns the recorded events, oldest first.
func Events() []Event {
	out := make([]Event, 0, ringLen)
	start := (ringHead + RingSize - ringLen) % RingSize
	for i := uint8(0); i < ringLen; i++ {
		out = append(out, ring[(start+i)%RingSize])
	}
	return out
}

// Clear empties the event ring
func Clear() {
	for i := range ring {
		ring[i] = Event{}
	}
	ringHead = 0
	ringLen = 0
}

// KindName returns a short label for an event kind.
func KindName(kind uint8) string {
	switch kind {
	case EvtClockEnable:
		return "CLOCK_ENABLE"
	case EvtResetPulse:
		return "RESET_PULSE"
	case EvtRemap:
		return "REMAP"
	case EvtTimebase:
		return "TIMEBASE"
	case EvtChannelMode:
		return "CHANNEL_MODE"
	case EvtUpdate:
		return "UPDATE"
	case EvtAutoReload:
		return "ARSE"
	case EvtCounterStart:
		return "COUNTER_START"
	case EvtChannelOutput:
		return "CHANNEL_OUTPUT"
	case EvtPinMode:
		return "PIN_MODE"
	case EvtPinLock:
		return "PIN_LOCK"
	case EvtBaud:
		return "BAUD"
	case EvtCounterStop:
		return "COUNTER_STOP"
	default:
		return "UNKNOWN"
	}
}

// String formats an event without using fmt.
func (e Event) String() string {
	s := KindName(e.Kind) +
		" unit=" + utoa(uint32(e.Unit)) +
		" v1=" + utoa(e.Value1) +
		" v2=" + utoa(e.Value2)
	if e.Critical {
		s += " cs"
	}
	return s
}

// Dump writes the event ring through the board writer, regardless of the
// enable flag. Call it after a failed bring-up.
func Dump() {
	println("[HAL] === Event Ring Dump ===")
	for _, e := range Events() {
		println("[HAL] " + e.String())
	}
	println("[HAL] === End Dump ===")
}
