package nixie

import (
	"fmt"
	"strings"
)

// Blank is the digit value that leaves a tube dark.
const Blank byte = '-'

// digits is the full alphabet a tube accepts.
const digits = "-0123456789"

// Tube holds the display state for one tube in the chain: the digit it
// shows, its two decimal point indicators, the cathode PWM brightness
// and the RGB backlight color. A zero-valued Tube is not blank; use
// NewTube or Display to get one in the off state.
type Tube struct {
	digit      byte
	leftDP     bool
	rightDP    bool
	brightness int
	red        int
	green      int
	blue       int
}

// NewTube returns a blank tube: digit '-', decimal points off, all
// channels at 0.
func NewTube() *Tube {
	return &Tube{digit: Blank}
}

// SetDigit stores c if it is one of 0-9 or '-'. Anything else stores
// '-', turning the tube off. This fallback is defined behavior on the
// wire protocol, not an error.
func (t *Tube) SetDigit(c byte) {
	if !strings.ContainsRune(digits, rune(c)) {
		t.digit = Blank
		return
	}
	t.digit = c
}

// Digit returns the stored digit character.
func (t *Tube) Digit() byte {
	return t.digit
}

// SetLeftDP turns the left decimal point on or off.
func (t *Tube) SetLeftDP(on bool) {
	t.leftDP = on
}

// LeftDP reports whether the left decimal point is lit.
func (t *Tube) LeftDP() bool {
	return t.leftDP
}

// SetRightDP turns the right decimal point on or off.
func (t *Tube) SetRightDP(on bool) {
	t.rightDP = on
}

// RightDP reports whether the right decimal point is lit.
func (t *Tube) RightDP() bool {
	return t.rightDP
}

// SetBrightness sets the tube PWM level, 0-255.
func (t *Tube) SetBrightness(v int) error {
	if err := checkChannel("brightness", v); err != nil {
		return err
	}
	t.brightness = v
	return nil
}

// Brightness returns the tube PWM level.
func (t *Tube) Brightness() int {
	return t.brightness
}

// SetRed sets the red PWM value for the backlight LED, 0-255.
func (t *Tube) SetRed(v int) error {
	if err := checkChannel("red", v); err != nil {
		return err
	}
	t.red = v
	return nil
}

// Red returns the red backlight value.
func (t *Tube) Red() int {
	return t.red
}

// SetGreen sets the green PWM value for the backlight LED, 0-255.
func (t *Tube) SetGreen(v int) error {
	if err := checkChannel("green", v); err != nil {
		return err
	}
	t.green = v
	return nil
}

// Green returns the green backlight value.
func (t *Tube) Green() int {
	return t.green
}

// SetBlue sets the blue PWM value for the backlight LED, 0-255.
func (t *Tube) SetBlue(v int) error {
	if err := checkChannel("blue", v); err != nil {
		return err
	}
	t.blue = v
	return nil
}

// Blue returns the blue backlight value.
func (t *Tube) Blue() int {
	return t.blue
}

// TurnOff resets the tube to the blank state: digit '-', decimal
// points off, brightness and color at 0.
func (t *Tube) TurnOff() {
	t.digit = Blank
	t.leftDP = false
	t.rightDP = false
	t.brightness = 0
	t.red = 0
	t.green = 0
	t.blue = 0
}

// CommandString renders the tube's fragment of the wire frame:
// DIGIT,LDP,RDP,BRIGHTNESS,RED,GREEN,BLUE with Y/N decimal points and
// zero-padded 3-digit channels. The '$' prefix and '!' terminator
// belong to the frame, not the fragment.
func (t *Tube) CommandString() string {
	return fmt.Sprintf("%c,%s,%s,%03d,%03d,%03d,%03d",
		t.digit,
		yn(t.leftDP),
		yn(t.rightDP),
		t.brightness,
		t.red,
		t.green,
		t.blue)
}

func yn(b bool) string {
	if b {
		return "Y"
	}
	return "N"
}

func checkChannel(field string, v int) error {
	if v < 0 || v > 255 {
		return fmt.Errorf("%w: %s must be between 0-255, got %d", ErrOutOfRange, field, v)
	}
	return nil
}
