package section

// ControllerButton identifies one of the 16 digital inputs of a controller.
// The value is the bit index of the button inside ControllerState.
type ControllerButton uint8

const (
	DPadRight ControllerButton = iota
	DPadLeft
	DPadDown
	DPadUp
	Start
	Z
	B
	A
	CRight
	CLeft
	CDown
	CUp
	TriggerRight
	TriggerLeft
	Reserved01
	Reserved02

	numButtons = iota
)

var buttonNames = [numButtons]string{
	"DPadRight", "DPadLeft", "DPadDown", "DPadUp",
	"Start", "Z", "B", "A",
	"CRight", "CLeft", "CDown", "CUp",
	"TriggerRight", "TriggerLeft", "Reserved01", "Reserved02",
}

// Buttons returns every button in bit order.
func Buttons() []ControllerButton {
	out := make([]ControllerButton, numButtons)
	for i := range out {
		out[i] = ControllerButton(i) //nolint:gosec
	}

	return out
}

func (b ControllerButton) String() string {
	if int(b) < len(buttonNames) {
		return buttonNames[b]
	}

	return "Unknown"
}
