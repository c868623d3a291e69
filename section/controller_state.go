package section

import (
	"strconv"
	"strings"

	"github.com/m64kit/m64/internal/bitfield"
)

const (
	stateFieldXAxis = int(numButtons)
	stateFieldYAxis = int(numButtons) + 1
)

var controllerStateLayout = bitfield.MustLayout(32,
	bitfield.Spec{Name: "dpad_right", Width: 1},
	bitfield.Spec{Name: "dpad_left", Width: 1},
	bitfield.Spec{Name: "dpad_down", Width: 1},
	bitfield.Spec{Name: "dpad_up", Width: 1},
	bitfield.Spec{Name: "start", Width: 1},
	bitfield.Spec{Name: "z", Width: 1},
	bitfield.Spec{Name: "b", Width: 1},
	bitfield.Spec{Name: "a", Width: 1},
	bitfield.Spec{Name: "c_right", Width: 1},
	bitfield.Spec{Name: "c_left", Width: 1},
	bitfield.Spec{Name: "c_down", Width: 1},
	bitfield.Spec{Name: "c_up", Width: 1},
	bitfield.Spec{Name: "trigger_right", Width: 1},
	bitfield.Spec{Name: "trigger_left", Width: 1},
	bitfield.Spec{Name: "reserved01", Width: 1},
	bitfield.Spec{Name: "reserved02", Width: 1},
	bitfield.Spec{Name: "x_axis", Width: 8},
	bitfield.Spec{Name: "y_axis", Width: 8},
)

// ControllerState is one 4-byte input record: the state of a single controller
// during one input poll.
//
// Bits 0-15 hold the buttons in ControllerButton order, bits 16-23 the signed
// X axis and bits 24-31 the signed Y axis. ControllerState is a value type; the
// zero value has no buttons pressed and both axes centered.
type ControllerState struct {
	bits uint32
}

// ControllerStateLayout returns the bit layout of ControllerState.
func ControllerStateLayout() bitfield.Layout {
	return controllerStateLayout
}

// NewControllerState wraps a raw input word.
func NewControllerState(w uint32) ControllerState {
	return ControllerState{bits: w}
}

// Uint32 returns the raw input word.
func (s ControllerState) Uint32() uint32 {
	return s.bits
}

// IsSet reports whether the button is pressed.
func (s ControllerState) IsSet(b ControllerButton) bool {
	if b >= numButtons {
		return false
	}

	return controllerStateLayout.Bool(s.bits, int(b))
}

// SetButton sets the pressed state of the button.
func (s *ControllerState) SetButton(b ControllerButton, pressed bool) {
	if b >= numButtons {
		return
	}
	s.bits = controllerStateLayout.SetBool(s.bits, int(b), pressed)
}

// Set presses the button.
func (s *ControllerState) Set(b ControllerButton) {
	s.SetButton(b, true)
}

// Unset releases the button.
func (s *ControllerState) Unset(b ControllerButton) {
	s.SetButton(b, false)
}

// Toggle flips the pressed state of the button.
func (s *ControllerState) Toggle(b ControllerButton) {
	s.SetButton(b, !s.IsSet(b))
}

// Pressed returns the pressed buttons in bit order.
func (s ControllerState) Pressed() []ControllerButton {
	var out []ControllerButton
	for b := range ControllerButton(numButtons) {
		if s.IsSet(b) {
			out = append(out, b)
		}
	}

	return out
}

// XAxis returns the analog stick X position.
func (s ControllerState) XAxis() int8 {
	return int8(controllerStateLayout.Get(s.bits, stateFieldXAxis)) //nolint:gosec
}

// YAxis returns the analog stick Y position.
func (s ControllerState) YAxis() int8 {
	return int8(controllerStateLayout.Get(s.bits, stateFieldYAxis)) //nolint:gosec
}

// SetXAxis sets the analog stick X position.
func (s *ControllerState) SetXAxis(x int8) {
	s.bits = controllerStateLayout.Set(s.bits, stateFieldXAxis, uint32(uint8(x)))
}

// SetYAxis sets the analog stick Y position.
func (s *ControllerState) SetYAxis(y int8) {
	s.bits = controllerStateLayout.Set(s.bits, stateFieldYAxis, uint32(uint8(y)))
}

// Axis returns the X and Y stick positions.
func (s ControllerState) Axis() (x, y int8) {
	return s.XAxis(), s.YAxis()
}

// SetAxis sets both stick positions.
func (s *ControllerState) SetAxis(x, y int8) {
	s.SetXAxis(x)
	s.SetYAxis(y)
}

// String renders the state as "A+B+Start (12,-40)".
func (s ControllerState) String() string {
	var sb strings.Builder
	for i, b := range s.Pressed() {
		if i > 0 {
			sb.WriteByte('+')
		}
		sb.WriteString(b.String())
	}
	if sb.Len() == 0 {
		sb.WriteString("-")
	}
	sb.WriteString(" (")
	sb.WriteString(strconv.Itoa(int(s.XAxis())))
	sb.WriteByte(',')
	sb.WriteString(strconv.Itoa(int(s.YAxis())))
	sb.WriteByte(')')

	return sb.String()
}
