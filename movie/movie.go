package movie

import (
	"errors"
	"iter"
	"slices"

	"github.com/m64kit/m64/encoding"
	"github.com/m64kit/m64/endian"
	"github.com/m64kit/m64/errs"
	"github.com/m64kit/m64/format"
	"github.com/m64kit/m64/internal/hash"
	"github.com/m64kit/m64/section"
)

// Metadata describes the container format of the movie.
type Metadata struct {
	// Extension is the versioned extension block.
	Extension Extension
}

// Version returns the movie format version, which is always 3.
func (m Metadata) Version() uint32 {
	return section.FormatVersion
}

// ExtendedVersion returns the extension version (0 or 1).
func (m Metadata) ExtendedVersion() uint8 {
	return m.Extension.Version()
}

// GameInfo identifies the ROM the movie was recorded on. All values are copied
// from the ROM header.
type GameInfo struct {
	ROMName    encoding.ROMName
	ROMCRC32   uint32
	ROMCountry uint16
}

// PluginInfo names the emulator plugins used during recording.
type PluginInfo struct {
	VideoPlugin encoding.PluginName
	SoundPlugin encoding.PluginName
	InputPlugin encoding.PluginName
	RSPPlugin   encoding.PluginName
}

// RecordingInfo holds the author and session details of the recording.
type RecordingInfo struct {
	AuthorName  encoding.AuthorName
	Description encoding.Description
	// UID identifies the recording; mupen uses the recording start time.
	UID                uint32
	VerticalInterrupts uint32
	RerecordCount      uint32
	VIsPerSecond       uint8
	// ControllerCount is the number of input records per frame.
	ControllerCount uint8
	// ControllerInputSamples is the number of input polls recorded.
	ControllerInputSamples uint32
	ControllerFlags        section.ControllerFlags
	StartType              format.StartType
}

// Movie is the validated, typed view of a movie.
//
// A Movie owns all of its data: converting from or to a RawMovie copies the
// input records.
type Movie struct {
	Metadata  Metadata
	Game      GameInfo
	Plugins   PluginInfo
	Recording RecordingInfo
	Inputs    []section.ControllerState
}

// New returns an empty single-controller movie starting from power-on at 60
// VI/s, with controller 1 marked present.
func New() Movie {
	m := Movie{
		Recording: RecordingInfo{
			VIsPerSecond:    60,
			ControllerCount: 1,
			StartType:       format.StartPowerOn,
		},
	}
	m.Recording.ControllerFlags.SetPresent(0, true)

	return m
}

// Decode decodes and validates a movie.
func Decode(data []byte) (Movie, error) {
	raw, err := DecodeRaw(data)
	if err != nil {
		return Movie{}, err
	}

	return FromRaw(raw)
}

// FromRaw converts a raw movie into its typed view.
//
// The header invariants are checked again, the extension is resolved with
// ResolveExtension, and the six string fields are parsed in offset order. The
// first failure aborts the conversion.
func FromRaw(raw RawMovie) (Movie, error) {
	h := raw.Header

	if err := h.Validate(); err != nil {
		return Movie{}, err
	}

	ext, err := ResolveExtension(h)
	if err != nil {
		return Movie{}, err
	}

	m := Movie{
		Metadata: Metadata{Extension: ext},
		Game: GameInfo{
			ROMCRC32:   h.ROMCRC32,
			ROMCountry: h.ROMCountry,
		},
		Recording: RecordingInfo{
			UID:                    h.UID,
			VerticalInterrupts:     h.VerticalInterrupts,
			RerecordCount:          h.RerecordCount,
			VIsPerSecond:           h.VIsPerSecond,
			ControllerCount:        h.ControllerCount,
			ControllerInputSamples: h.ControllerInputSamples,
			ControllerFlags:        h.ControllerFlags,
			StartType:              h.StartType,
		},
		Inputs: slices.Clone(raw.Inputs),
	}

	if m.Game.ROMName, err = parseField[encoding.ROMNameLayout]("rom_name", h.ROMName[:]); err != nil {
		return Movie{}, err
	}
	if m.Plugins.VideoPlugin, err = parseField[encoding.PluginNameLayout]("video_plugin", h.VideoPlugin[:]); err != nil {
		return Movie{}, err
	}
	if m.Plugins.SoundPlugin, err = parseField[encoding.PluginNameLayout]("sound_plugin", h.SoundPlugin[:]); err != nil {
		return Movie{}, err
	}
	if m.Plugins.InputPlugin, err = parseField[encoding.PluginNameLayout]("input_plugin", h.InputPlugin[:]); err != nil {
		return Movie{}, err
	}
	if m.Plugins.RSPPlugin, err = parseField[encoding.PluginNameLayout]("rsp_plugin", h.RSPPlugin[:]); err != nil {
		return Movie{}, err
	}
	if m.Recording.AuthorName, err = parseField[encoding.AuthorNameLayout]("author_name", h.AuthorName[:]); err != nil {
		return Movie{}, err
	}
	if m.Recording.Description, err = parseField[encoding.DescriptionLayout]("description", h.Description[:]); err != nil {
		return Movie{}, err
	}

	return m, nil
}

// parseField parses a header string and names the field in the error.
func parseField[L encoding.Layout](field string, data []byte) (encoding.FixedString[L], error) {
	s, err := encoding.ParseFixedString[L](data)
	if err != nil {
		var serr *errs.StringError
		if errors.As(err, &serr) {
			serr.Field = field
		}

		return s, err
	}

	return s, nil
}

// ToRaw converts the movie back into its raw form. Reserved spans and the
// fields of absent extension versions are zero.
//
// ToRaw does not validate. Movies built with New or Decode convert to a raw
// movie that decodes again; a zero Movie has start type 0 and does not. Use
// Validate before writing a movie assembled by hand.
func (m Movie) ToRaw() RawMovie {
	return RawMovie{Header: m.header(), Inputs: slices.Clone(m.Inputs)}
}

// Validate reports whether the header ToRaw produces passes the checks of
// DecodeRaw.
func (m Movie) Validate() error {
	return m.header().Validate()
}

func (m Movie) header() section.Header {
	h := section.Header{
		Version:                section.FormatVersion,
		UID:                    m.Recording.UID,
		VerticalInterrupts:     m.Recording.VerticalInterrupts,
		RerecordCount:          m.Recording.RerecordCount,
		VIsPerSecond:           m.Recording.VIsPerSecond,
		ControllerCount:        m.Recording.ControllerCount,
		ControllerInputSamples: m.Recording.ControllerInputSamples,
		StartType:              m.Recording.StartType,
		ControllerFlags:        m.Recording.ControllerFlags,
		ROMCRC32:               m.Game.ROMCRC32,
		ROMCountry:             m.Game.ROMCountry,
	}
	m.Metadata.Extension.expand(&h)

	m.Game.ROMName.Put(h.ROMName[:])
	m.Plugins.VideoPlugin.Put(h.VideoPlugin[:])
	m.Plugins.SoundPlugin.Put(h.SoundPlugin[:])
	m.Plugins.InputPlugin.Put(h.InputPlugin[:])
	m.Plugins.RSPPlugin.Put(h.RSPPlugin[:])
	m.Recording.AuthorName.Put(h.AuthorName[:])
	m.Recording.Description.Put(h.Description[:])

	return h
}

// Bytes encodes the movie. Like ToRaw it does not validate.
func (m Movie) Bytes() []byte {
	return m.ToRaw().Bytes()
}

// Frames groups the inputs by controller count, one group per frame.
// See the package level Frames function for details.
func (m Movie) Frames() iter.Seq2[int, []section.ControllerState] {
	return Frames(m.Inputs, int(m.Recording.ControllerCount))
}

// FrameCount returns the number of groups yielded by Frames.
func (m Movie) FrameCount() int {
	return FrameCount(len(m.Inputs), int(m.Recording.ControllerCount))
}

// Frame returns the inputs of frame i, or nil when out of range.
func (m Movie) Frame(i int) []section.ControllerState {
	return Frame(m.Inputs, int(m.Recording.ControllerCount), i)
}

// TotalRerecordCount returns the 64-bit rerecord count. For version 0 movies
// this is the header count.
func (m Movie) TotalRerecordCount() uint64 {
	if v1, ok := m.Metadata.Extension.V1(); ok {
		return v1.TotalRerecordCount(m.Recording.RerecordCount)
	}

	return uint64(m.Recording.RerecordCount)
}

// InputDigest returns the xxHash64 of the encoded input records. Two movies
// with the same inputs have the same digest regardless of their headers.
func (m Movie) InputDigest() uint64 {
	return InputDigest(m.Inputs)
}

// InputDigest returns the xxHash64 of the little-endian encoding of inputs.
func InputDigest(inputs []section.ControllerState) uint64 {
	if len(inputs) == 0 {
		return hash.Sum(nil)
	}

	engine := endian.Movie()
	if endian.MatchesNative(engine) {
		return hash.Sum(inputBytes(inputs))
	}

	d := hash.NewDigest()
	var word [section.InputRecordSize]byte
	for _, in := range inputs {
		engine.PutUint32(word[:], in.Uint32())
		d.Write(word[:])
	}

	return d.Sum64()
}
