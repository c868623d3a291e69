package section

import "github.com/m64kit/m64/internal/bitfield"

// field indexes in controllerFlagsLayout
const (
	ctrlFlagPresent   = 0 // 4 fields
	ctrlFlagMempak    = 4 // 4 fields
	ctrlFlagRumblepak = 8 // 4 fields
	ctrlFlagReserved  = 12
)

var controllerFlagsLayout = bitfield.MustLayout(32,
	bitfield.Spec{Name: "controller_01_present", Width: 1},
	bitfield.Spec{Name: "controller_02_present", Width: 1},
	bitfield.Spec{Name: "controller_03_present", Width: 1},
	bitfield.Spec{Name: "controller_04_present", Width: 1},
	bitfield.Spec{Name: "controller_01_has_mempak", Width: 1},
	bitfield.Spec{Name: "controller_02_has_mempak", Width: 1},
	bitfield.Spec{Name: "controller_03_has_mempak", Width: 1},
	bitfield.Spec{Name: "controller_04_has_mempak", Width: 1},
	bitfield.Spec{Name: "controller_01_has_rumblepak", Width: 1},
	bitfield.Spec{Name: "controller_02_has_rumblepak", Width: 1},
	bitfield.Spec{Name: "controller_03_has_rumblepak", Width: 1},
	bitfield.Spec{Name: "controller_04_has_rumblepak", Width: 1},
	bitfield.Spec{Name: "reserved", Width: 20},
)

// ControllerFlags is the packed controller capability word at offset 0x20.
//
//	Bits 0-3:   controller 1-4 present
//	Bits 4-7:   controller 1-4 has a memory pak
//	Bits 8-11:  controller 1-4 has a rumble pak
//	Bits 12-31: reserved
//
// Controller indexes passed to the methods are zero-based (0-3). Out of range
// indexes read as false and are ignored by setters.
type ControllerFlags struct {
	bits uint32
}

// ControllerFlagsLayout returns the bit layout of ControllerFlags.
func ControllerFlagsLayout() bitfield.Layout {
	return controllerFlagsLayout
}

// NewControllerFlags wraps a raw flag word.
func NewControllerFlags(w uint32) ControllerFlags {
	return ControllerFlags{bits: w}
}

// Uint32 returns the raw flag word.
func (f ControllerFlags) Uint32() uint32 {
	return f.bits
}

func (f ControllerFlags) get(base, controller int) bool {
	if controller < 0 || controller >= MaxControllers {
		return false
	}

	return controllerFlagsLayout.Bool(f.bits, base+controller)
}

func (f *ControllerFlags) set(base, controller int, on bool) {
	if controller < 0 || controller >= MaxControllers {
		return
	}
	f.bits = controllerFlagsLayout.SetBool(f.bits, base+controller, on)
}

// Present reports whether the controller is plugged in.
func (f ControllerFlags) Present(controller int) bool {
	return f.get(ctrlFlagPresent, controller)
}

// SetPresent marks the controller as plugged in or not.
func (f *ControllerFlags) SetPresent(controller int, on bool) {
	f.set(ctrlFlagPresent, controller, on)
}

// HasMempak reports whether the controller has a memory pak inserted.
func (f ControllerFlags) HasMempak(controller int) bool {
	return f.get(ctrlFlagMempak, controller)
}

// SetMempak sets the memory pak flag of the controller.
func (f *ControllerFlags) SetMempak(controller int, on bool) {
	f.set(ctrlFlagMempak, controller, on)
}

// HasRumblepak reports whether the controller has a rumble pak inserted.
func (f ControllerFlags) HasRumblepak(controller int) bool {
	return f.get(ctrlFlagRumblepak, controller)
}

// SetRumblepak sets the rumble pak flag of the controller.
func (f *ControllerFlags) SetRumblepak(controller int, on bool) {
	f.set(ctrlFlagRumblepak, controller, on)
}

// Reserved returns bits 12-31.
func (f ControllerFlags) Reserved() uint32 {
	return controllerFlagsLayout.Get(f.bits, ctrlFlagReserved)
}

// NumControllersPresent counts the controllers marked as present.
func (f ControllerFlags) NumControllersPresent() int {
	n := 0
	for i := range MaxControllers {
		if f.Present(i) {
			n++
		}
	}

	return n
}
