package movie

import (
	"iter"

	"github.com/m64kit/m64/section"
)

// RawMovie is the byte-level decoding of a movie: the fixed header and the
// input records, exactly as stored.
//
// A RawMovie obtained from DecodeRaw satisfies the structural invariants of the
// format, but its strings are unchecked byte arrays and its extension fields
// are not interpreted. Use FromRaw to get the validated typed view.
type RawMovie struct {
	Header section.Header
	Inputs []section.ControllerState
}

// DecodeRaw decodes a movie from data.
//
// Checks are performed in a single pass in byte offset order and the first
// violation is returned:
//   - ErrBadMagic if data does not start with "M64\x1A"
//   - ErrTruncatedInput if data is shorter than the header
//   - ErrUnsupportedVersion, ErrInvalidExtensionState or ErrBadStartType from the header
//   - ErrTruncatedInput if the input records do not end on a 4-byte boundary
//
// The returned RawMovie does not reference data.
func DecodeRaw(data []byte) (RawMovie, error) {
	var h section.Header
	if err := h.Parse(data); err != nil {
		return RawMovie{}, err
	}

	inputs, err := decodeInputs(data[section.OffsetInputs:])
	if err != nil {
		return RawMovie{}, err
	}

	return RawMovie{Header: h, Inputs: inputs}, nil
}

// Size returns the encoded size of the movie in bytes.
func (r RawMovie) Size() int {
	return section.HeaderSize + len(r.Inputs)*section.InputRecordSize
}

// AppendBytes appends the encoded movie to dst and returns the extended slice.
func (r RawMovie) AppendBytes(dst []byte) []byte {
	start := len(dst)
	if cap(dst)-start < r.Size() {
		grown := make([]byte, start, start+r.Size())
		copy(grown, dst)
		dst = grown
	}

	dst = dst[:start+section.HeaderSize]
	r.Header.Put(dst[start:])

	return appendInputs(dst, r.Inputs)
}

// Bytes encodes the movie. Reserved spans are written as zero, so for any data
// whose reserved bytes are zero, DecodeRaw(data) followed by Bytes reproduces
// data exactly.
func (r RawMovie) Bytes() []byte {
	return r.AppendBytes(make([]byte, 0, r.Size()))
}

// Frames groups the input records by the header controller count. See Frames.
func (r RawMovie) Frames() iter.Seq2[int, []section.ControllerState] {
	return Frames(r.Inputs, int(r.Header.ControllerCount))
}
