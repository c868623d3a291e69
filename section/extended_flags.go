package section

import "github.com/m64kit/m64/internal/bitfield"

const (
	extFlagWiiVC = iota
	extFlagReserved
)

var extendedFlagsLayout = bitfield.MustLayout(8,
	bitfield.Spec{Name: "wiivc_emulation_mode", Width: 1},
	bitfield.Spec{Name: "reserved", Width: 7},
)

// ExtendedFlags is the packed flag byte at offset 0x17.
//
// Bit 0 is the WiiVC emulation mode flag, which is only meaningful when the
// extended version is 1. Bits 1-7 are reserved.
type ExtendedFlags struct {
	bits uint8
}

// ExtendedFlagsLayout returns the bit layout of ExtendedFlags.
func ExtendedFlagsLayout() bitfield.Layout {
	return extendedFlagsLayout
}

// NewExtendedFlags wraps a raw flag byte.
func NewExtendedFlags(b uint8) ExtendedFlags {
	return ExtendedFlags{bits: b}
}

// Uint8 returns the raw flag byte.
func (f ExtendedFlags) Uint8() uint8 {
	return f.bits
}

// WiiVCEmulationMode reports whether the movie was recorded in WiiVC emulation mode.
func (f ExtendedFlags) WiiVCEmulationMode() bool {
	return extendedFlagsLayout.Bool(uint32(f.bits), extFlagWiiVC)
}

// SetWiiVCEmulationMode sets the WiiVC emulation mode flag.
func (f *ExtendedFlags) SetWiiVCEmulationMode(on bool) {
	f.bits = uint8(extendedFlagsLayout.SetBool(uint32(f.bits), extFlagWiiVC, on)) //nolint:gosec
}

// Reserved returns bits 1-7.
func (f ExtendedFlags) Reserved() uint8 {
	return uint8(extendedFlagsLayout.Get(uint32(f.bits), extFlagReserved)) //nolint:gosec
}

// conditionalBits returns the bits that require extended version 1.
func (f ExtendedFlags) conditionalBits() uint8 {
	return f.bits & uint8(extendedFlagsLayout.Field(extFlagWiiVC).Mask()) //nolint:gosec
}
