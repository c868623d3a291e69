package section

import (
	"bytes"
	"fmt"

	"github.com/m64kit/m64/endian"
	"github.com/m64kit/m64/errs"
	"github.com/m64kit/m64/format"
)

// Header is the fixed 1024-byte header at the start of a movie.
//
// It mirrors the on-disk layout field by field. String fields are kept as raw
// byte arrays; their validation and trimming belongs to the typed layer.
// Reserved spans are not stored: they are ignored on parse and written as zero.
type Header struct {
	Version                uint32                // byte offset 0x004, must be 3
	UID                    uint32                // byte offset 0x008, recording timestamp used as identifier
	VerticalInterrupts     uint32                // byte offset 0x00C
	RerecordCount          uint32                // byte offset 0x010
	VIsPerSecond           uint8                 // byte offset 0x014
	ControllerCount        uint8                 // byte offset 0x015
	ExtendedVersion        uint8                 // byte offset 0x016
	ExtendedFlags          ExtendedFlags         // byte offset 0x017
	ControllerInputSamples uint32                // byte offset 0x018
	StartType              format.StartType      // byte offset 0x01C
	ControllerFlags        ControllerFlags       // byte offset 0x020
	ExtendedData           ExtendedData          // byte offset 0x024
	ROMName                [ROMNameSize]byte     // byte offset 0x0C4
	ROMCRC32               uint32                // byte offset 0x0E4
	ROMCountry             uint16                // byte offset 0x0E8
	VideoPlugin            [PluginNameSize]byte  // byte offset 0x122
	SoundPlugin            [PluginNameSize]byte  // byte offset 0x162
	InputPlugin            [PluginNameSize]byte  // byte offset 0x1A2
	RSPPlugin              [PluginNameSize]byte  // byte offset 0x1E2
	AuthorName             [AuthorNameSize]byte  // byte offset 0x222
	Description            [DescriptionSize]byte // byte offset 0x300
}

// NewHeader returns a header with the format version set and the
// power-on start type, the state a freshly started recording has.
func NewHeader() Header {
	return Header{
		Version:   FormatVersion,
		StartType: format.StartPowerOn,
	}
}

// HasMagic reports whether data starts with the movie signature.
func HasMagic(data []byte) bool {
	return len(data) >= len(Magic) && bytes.Equal(data[:len(Magic)], Magic[:])
}

// Parse decodes the header from data, which must hold at least HeaderSize bytes.
// Bytes beyond the header are ignored.
//
// Returns:
//   - error: ErrBadMagic, ErrTruncatedInput, or the first violation reported by Validate.
//     On error h is left unchanged.
func (h *Header) Parse(data []byte) error {
	if !HasMagic(data) {
		return errs.ErrBadMagic
	}

	if len(data) < HeaderSize {
		return fmt.Errorf("%w: header needs %d bytes, got %d", errs.ErrTruncatedInput, HeaderSize, len(data))
	}

	engine := endian.Movie()

	var p Header
	p.Version = engine.Uint32(data[OffsetVersion:])
	p.UID = engine.Uint32(data[OffsetUID:])
	p.VerticalInterrupts = engine.Uint32(data[OffsetVerticalInterrupts:])
	p.RerecordCount = engine.Uint32(data[OffsetRerecordCount:])
	p.VIsPerSecond = data[OffsetVIsPerSecond]
	p.ControllerCount = data[OffsetControllerCount]
	p.ExtendedVersion = data[OffsetExtendedVersion]
	p.ExtendedFlags = NewExtendedFlags(data[OffsetExtendedFlags])
	p.ControllerInputSamples = engine.Uint32(data[OffsetControllerInputSamples:])
	p.StartType = format.StartType(engine.Uint16(data[OffsetStartType:]))
	p.ControllerFlags = NewControllerFlags(engine.Uint32(data[OffsetControllerFlags:]))
	p.ExtendedData.parse(engine, data[OffsetExtendedData:OffsetExtendedData+ExtendedDataSize])
	copy(p.ROMName[:], data[OffsetROMName:])
	p.ROMCRC32 = engine.Uint32(data[OffsetROMCRC32:])
	p.ROMCountry = engine.Uint16(data[OffsetROMCountry:])
	copy(p.VideoPlugin[:], data[OffsetVideoPlugin:])
	copy(p.SoundPlugin[:], data[OffsetSoundPlugin:])
	copy(p.InputPlugin[:], data[OffsetInputPlugin:])
	copy(p.RSPPlugin[:], data[OffsetRSPPlugin:])
	copy(p.AuthorName[:], data[OffsetAuthorName:])
	copy(p.Description[:], data[OffsetDescription:])

	if err := p.Validate(); err != nil {
		return err
	}

	*h = p

	return nil
}

// Validate checks the structural invariants of the header in byte offset order:
// the version, the WiiVC flag bit, the start type and the extension integers.
//
// Fields that only exist under extended version 1 are accepted when they are
// zero, whatever the extended version is. The extended version itself is not
// checked here; see movie.ResolveExtension.
func (h Header) Validate() error {
	if h.Version != FormatVersion {
		return fmt.Errorf("%w: got %d", errs.ErrUnsupportedVersion, h.Version)
	}

	if h.ExtendedFlags.conditionalBits() != 0 && h.ExtendedVersion != format.ExtendedVersion1 {
		return fmt.Errorf("%w: WiiVC flag set with extended version %d",
			errs.ErrInvalidExtensionState, h.ExtendedVersion)
	}

	if !h.StartType.IsValid() {
		return fmt.Errorf("%w: got %d", errs.ErrBadStartType, uint16(h.StartType))
	}

	if !h.ExtendedData.IsZero() && h.ExtendedVersion != format.ExtendedVersion1 {
		return fmt.Errorf("%w: extended data set with extended version %d",
			errs.ErrInvalidExtensionState, h.ExtendedVersion)
	}

	return nil
}

// Put writes the header into b, which must be at least HeaderSize bytes long.
// Reserved spans are zeroed.
func (h Header) Put(b []byte) {
	b = b[:HeaderSize]
	clear(b)

	engine := endian.Movie()

	copy(b[OffsetMagic:], Magic[:])
	engine.PutUint32(b[OffsetVersion:], h.Version)
	engine.PutUint32(b[OffsetUID:], h.UID)
	engine.PutUint32(b[OffsetVerticalInterrupts:], h.VerticalInterrupts)
	engine.PutUint32(b[OffsetRerecordCount:], h.RerecordCount)
	b[OffsetVIsPerSecond] = h.VIsPerSecond
	b[OffsetControllerCount] = h.ControllerCount
	b[OffsetExtendedVersion] = h.ExtendedVersion
	b[OffsetExtendedFlags] = h.ExtendedFlags.Uint8()
	engine.PutUint32(b[OffsetControllerInputSamples:], h.ControllerInputSamples)
	engine.PutUint16(b[OffsetStartType:], uint16(h.StartType))
	engine.PutUint32(b[OffsetControllerFlags:], h.ControllerFlags.Uint32())
	h.ExtendedData.put(engine, b[OffsetExtendedData:OffsetExtendedData+ExtendedDataSize])
	copy(b[OffsetROMName:], h.ROMName[:])
	engine.PutUint32(b[OffsetROMCRC32:], h.ROMCRC32)
	engine.PutUint16(b[OffsetROMCountry:], h.ROMCountry)
	copy(b[OffsetVideoPlugin:], h.VideoPlugin[:])
	copy(b[OffsetSoundPlugin:], h.SoundPlugin[:])
	copy(b[OffsetInputPlugin:], h.InputPlugin[:])
	copy(b[OffsetRSPPlugin:], h.RSPPlugin[:])
	copy(b[OffsetAuthorName:], h.AuthorName[:])
	copy(b[OffsetDescription:], h.Description[:])
}

// Bytes serializes the header into a new HeaderSize byte slice.
func (h Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	h.Put(b)

	return b
}

// ParseHeader parses a Header from the start of data.
func ParseHeader(data []byte) (Header, error) {
	var h Header
	if err := h.Parse(data); err != nil {
		return Header{}, err
	}

	return h, nil
}
