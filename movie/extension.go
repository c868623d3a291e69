package movie

import (
	"fmt"

	"github.com/m64kit/m64/errs"
	"github.com/m64kit/m64/format"
	"github.com/m64kit/m64/section"
)

// ExtensionV1 is the payload of extended version 1 movies.
type ExtensionV1 struct {
	Flags section.ExtendedFlags
	Data  section.ExtendedData
}

// WiiVCEmulationMode reports whether the movie was recorded in WiiVC mode.
func (e ExtensionV1) WiiVCEmulationMode() bool {
	return e.Flags.WiiVCEmulationMode()
}

// TotalRerecordCount combines the high word stored in the extension with the
// low word from the header.
func (e ExtensionV1) TotalRerecordCount(low uint32) uint64 {
	return uint64(e.Data.RerecordCountHigh)<<32 | uint64(low)
}

// Extension is the versioned extension block of a movie.
//
// It is either version 0, which carries nothing, or version 1, which carries an
// ExtensionV1. The zero value is version 0. Under version 0 the extension
// fields do not exist at all, so there is no zero-versus-unset ambiguity for
// consumers.
type Extension struct {
	v1 *ExtensionV1
}

// ExtensionV0 returns the empty version 0 extension.
func ExtensionV0() Extension {
	return Extension{}
}

// NewExtensionV1 returns a version 1 extension.
func NewExtensionV1(v1 ExtensionV1) Extension {
	return Extension{v1: &v1}
}

// Version returns the extended version number written to the header.
func (e Extension) Version() uint8 {
	if e.v1 != nil {
		return format.ExtendedVersion1
	}

	return format.ExtendedVersion0
}

// V1 returns the version 1 payload. ok is false for version 0.
func (e Extension) V1() (v1 ExtensionV1, ok bool) {
	if e.v1 == nil {
		return ExtensionV1{}, false
	}

	return *e.v1, true
}

// ResolveExtension builds the typed extension from the raw header fields,
// based only on the extended version.
//
// Returns:
//   - Extension: version 0 or version 1
//   - error: ErrUnsupportedExtendedVersion for any other version
func ResolveExtension(h section.Header) (Extension, error) {
	switch h.ExtendedVersion {
	case format.ExtendedVersion0:
		return ExtensionV0(), nil
	case format.ExtendedVersion1:
		return NewExtensionV1(ExtensionV1{Flags: h.ExtendedFlags, Data: h.ExtendedData}), nil
	default:
		return Extension{}, fmt.Errorf("%w: got %d", errs.ErrUnsupportedExtendedVersion, h.ExtendedVersion)
	}
}

// expand writes the extension back into the raw header fields. Version 0
// clears every conditional field.
func (e Extension) expand(h *section.Header) {
	h.ExtendedVersion = e.Version()
	if e.v1 == nil {
		h.ExtendedFlags = section.ExtendedFlags{}
		h.ExtendedData = section.ExtendedData{}

		return
	}

	h.ExtendedFlags = e.v1.Flags
	h.ExtendedData = e.v1.Data
}
