package config

import (
	"errors"
	"strings"
	"testing"

	"periph.io/x/conn/v3/physic"

	"gdhal/rcu"
	"gdhal/serial"
	"gdhal/timer"
)

func TestLoadFile(t *testing.T) {
	b, err := LoadFile("testdata/board.json")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if b.Name != "longan-nano" {
		t.Errorf("Name = %q", b.Name)
	}
	if b.Clocks.RCU() != (rcu.Config{AHBDiv: 1, APB1Div: 2, APB2Div: 1}) {
		t.Errorf("clocks = %+v", b.Clocks)
	}
	if b.PWM.PWMFrequency() != physic.KiloHertz || len(b.PWM.Channels) != 3 {
		t.Errorf("pwm = %+v", b.PWM)
	}
	if b.PWM.Channels[0].Polarity != "high" {
		t.Errorf("default polarity = %q", b.PWM.Channels[0].Polarity)
	}
	if p, _ := b.PWM.Channels[1].TimerPolarity(); p != timer.ActiveLow {
		t.Errorf("channel 1 polarity = %v", p)
	}

	line, err := b.Serial.Line()
	if err != nil {
		t.Fatal(err)
	}
	if line != serial.DefaultConfig() {
		t.Errorf("line = %+v, want 8N1", line)
	}
	if b.Serial.Remap != RemapNone || b.Serial.Device != "/dev/ttyUSB0" {
		t.Errorf("serial = %+v", b.Serial)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile("testdata/missing.json"); err == nil {
		t.Error("LoadFile(missing) succeeded")
	}
}

func TestDefault(t *testing.T) {
	b := Default()
	if err := b.Validate(); err != nil {
		t.Fatalf("Default().Validate: %v", err)
	}
	if b.PWM.Frequency != 1000 || b.Serial.Baud != 115200 || b.Serial.StopBits != "1" {
		t.Errorf("Default() = %+v %+v", b.PWM, b.Serial)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"bad json", `{"pwm":`, "parse"},
		{"clock divider", `{"clocks":{"apb1_div":3}}`, "APB1 divider 3"},
		{"ahb divider", `{"clocks":{"ahb_div":32}}`, "AHB divider 32"},
		{"basic timer", `{"pwm":{"timer":5,"channels":[{"channel":0}]}}`, "TIMER5 has no PWM channels"},
		{"remap", `{"pwm":{"timer":4,"remap":"full","channels":[{"channel":0}]}}`, `TIMER4 has no remap "full"`},
		{"no channels", `{"pwm":{"timer":1}}`, "no PWM channel"},
		{"channel", `{"pwm":{"timer":1,"channels":[{"channel":4}]}}`, "PWM channel 4"},
		{"duty", `{"pwm":{"timer":1,"channels":[{"channel":0,"duty_percent":120}]}}`, "duty 120%"},
		{"polarity", `{"pwm":{"timer":1,"channels":[{"channel":0,"polarity":"up"}]}}`, `polarity "up"`},
		{"frequency", `{"pwm":{"timer":1,"frequency_hz":9000000,"channels":[{"channel":0}]}}`, "9000000 Hz"},
		{"one hertz", `{"pwm":{"timer":1,"frequency_hz":1,"channels":[{"channel":0}]}}`, ""},
		{"usart", `{"serial":{"usart":3}}`, "no USART3"},
		{"usart remap", `{"serial":{"usart":1,"remap":"full"}}`, `USART1 has no remap "full"`},
		{"parity", `{"serial":{"parity":"mark"}}`, `parity "mark"`},
		{"stop bits", `{"serial":{"stop_bits":"3"}}`, `stop bits "3"`},
		{"baud", `{"serial":{"baud":2000000}}`, "2000000 baud"},
		{"pin conflict", `{"pwm":{"timer":0,"channels":[{"channel":1}]},"serial":{"usart":0}}`, "PA9 used by TIMER0_CH1 and USART0"},
		{"channel twice", `{"pwm":{"timer":1,"channels":[{"channel":2},{"channel":2}]}}`, "PA2 used by TIMER1_CH2 and TIMER1_CH2"},
	}
	for _, tt := range tests {
		_, err := Load([]byte(tt.json))
		if tt.want == "" {
			if err != nil {
				t.Errorf("%s: %v", tt.name, err)
			}
			continue
		}
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: err = %v, want %q", tt.name, err, tt.want)
		}
		if tt.name != "bad json" && !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: %v is not ErrInvalid", tt.name, err)
		}
	}
}

func TestDutyOf(t *testing.T) {
	tests := []struct {
		duty float64
		max  uint32
		want uint32
	}{
		{0, 999, 0},
		{50, 1000, 500},
		{25, 999, 250},
		{100, 999, 999},
		{33.3, 65535, 21823},
	}
	for _, tt := range tests {
		if got := (ChannelConfig{Duty: tt.duty}).DutyOf(tt.max); got != tt.want {
			t.Errorf("DutyOf(%g%%, %d) = %d, want %d", tt.duty, tt.max, got, tt.want)
		}
	}
}

func TestRoutes(t *testing.T) {
	pins, err := TimerPins(1, RemapPartial2)
	if err != nil || pins != [4]string{"PA0", "PA1", "PB10", "PB11"} {
		t.Errorf("TimerPins(1, partial2) = %v, %v", pins, err)
	}
	tx, err := USARTPins(2, RemapFull)
	if err != nil || tx != [2]string{"PD8", "PD9"} {
		t.Errorf("USARTPins(2, full) = %v, %v", tx, err)
	}
}
