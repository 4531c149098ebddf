package config

import "fmt"

// Remap option names.
const (
	RemapNone     = "none"
	RemapPartial  = "partial"
	RemapPartial1 = "partial1"
	RemapPartial2 = "partial2"
	RemapFull     = "full"
	RemapOn       = "remap"
)

// Channel pins of each timer remap option, channel 0 first.
var timerRoutes = map[uint8]map[string][4]string{
	0: {
		RemapNone:    {"PA8", "PA9", "PA10", "PA11"},
		RemapPartial: {"PA8", "PA9", "PA10", "PA11"},
		RemapFull:    {"PE9", "PE11", "PE13", "PE14"},
	},
	1: {
		RemapNone:     {"PA0", "PA1", "PA2", "PA3"},
		RemapPartial1: {"PA15", "PB3", "PA2", "PA3"},
		RemapPartial2: {"PA0", "PA1", "PB10", "PB11"},
		RemapFull:     {"PA15", "PB3", "PB10", "PB11"},
	},
	2: {
		RemapNone:    {"PA6", "PA7", "PB0", "PB1"},
		RemapPartial: {"PB4", "PB5", "PB0", "PB1"},
		RemapFull:    {"PC6", "PC7", "PC8", "PC9"},
	},
	3: {
		RemapNone: {"PB6", "PB7", "PB8", "PB9"},
		RemapOn:   {"PD12", "PD13", "PD14", "PD15"},
	},
	4: {
		RemapNone: {"PA0", "PA1", "PA2", "PA3"},
	},
}

// TX and RX pins of each USART remap option.
var usartRoutes = map[uint8]map[string][2]string{
	0: {
		RemapNone: {"PA9", "PA10"},
		RemapOn:   {"PB6", "PB7"},
	},
	1: {
		RemapNone: {"PA2", "PA3"},
		RemapOn:   {"PD5", "PD6"},
	},
	2: {
		RemapNone:    {"PB10", "PB11"},
		RemapPartial: {"PC10", "PC11"},
		RemapFull:    {"PD8", "PD9"},
	},
}

// TimerPins returns the channel pins TIMERn uses under remap.
func TimerPins(n uint8, remap string) ([4]string, error) {
	routes, ok := timerRoutes[n]
	if !ok {
		return [4]string{}, fmt.Errorf("%w: TIMER%d has no PWM channels", ErrInvalid, n)
	}
	pins, ok := routes[remap]
	if !ok {
		return [4]string{}, fmt.Errorf("%w: TIMER%d has no remap %q", ErrInvalid, n, remap)
	}
	return pins, nil
}

// USARTPins returns the TX and RX pins USARTn uses under remap.
func USARTPins(n uint8, remap string) ([2]string, error) {
	routes, ok := usartRoutes[n]
	if !ok {
		return [2]string{}, fmt.Errorf("%w: no USART%d", ErrInvalid, n)
	}
	pins, ok := routes[remap]
	if !ok {
		return [2]string{}, fmt.Errorf("%w: USART%d has no remap %q", ErrInvalid, n, remap)
	}
	return pins, nil
}
