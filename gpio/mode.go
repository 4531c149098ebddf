package gpio

// Output speed bits used for every output and alternate function mode.
const speed50MHz = 0b11

type pull uint8

const (
	pullNone pull = iota
	pullUp
	pullDown
)

// config is the 4-bit CTL:MD field of a mode plus the output latch level
// that selects the pull direction.
type config struct {
	bits uint32
	pull pull
}

// Mode is implemented by the electrical modes a pin can be in.
type Mode interface {
	config() config
}

// InputKind is the input configuration of an Input mode.
type InputKind interface {
	inputConfig() config
}

// Digital is satisfied by the input kinds that read a logic level.
type Digital interface {
	InputKind
	digital()
}

// Drive is the output stage of an Output or Alternate mode.
type Drive interface {
	drive() uint32
}

type (
	// Floating input, no pull resistor.
	Floating struct{}
	// PullUp input with the internal pull-up.
	PullUp struct{}
	// PullDown input with the internal pull-down.
	PullDown struct{}
	// Analog input, digital path disconnected.
	Analog struct{}

	// PushPull output stage.
	PushPull struct{}
	// OpenDrain output stage.
	OpenDrain struct{}
)

func (Floating) inputConfig() config { return config{bits: 0b0100} }
func (PullUp) inputConfig() config   { return config{bits: 0b1000, pull: pullUp} }
func (PullDown) inputConfig() config { return config{bits: 0b1000, pull: pullDown} }
func (Analog) inputConfig() config   { return config{bits: 0b0000} }

func (Floating) digital() {}
func (PullUp) digital()   {}
func (PullDown) digital() {}

func (PushPull) drive() uint32  { return 0b00 }
func (OpenDrain) drive() uint32 { return 0b01 }

// Input is an input mode of kind K.
type Input[K InputKind] struct{}

func (Input[K]) config() config {
	var k K
	return k.inputConfig()
}

// Output is a general purpose output mode with drive D.
type Output[D Drive] struct{}

func (Output[D]) config() config {
	var d D
	return config{bits: d.drive()<<2 | speed50MHz}
}

// Alternate is an alternate function mode with drive D: a peripheral such as
// a timer or USART drives the pin.
type Alternate[D Drive] struct{}

func (Alternate[D]) config() config {
	var d D
	return config{bits: (0b10|d.drive())<<2 | speed50MHz}
}
