// Package m64 reads and writes Mupen64 .m64 input movies.
//
// A movie is a fixed 1024-byte header describing the recording (ROM,
// plugins, author, rerecord count, controller setup) followed by one 4-byte
// input record per polled controller. This package provides the common entry
// points; the movie package holds the raw and typed views, and the section
// package the individual binary structures.
//
// # Basic Usage
//
// Decoding a movie and walking its frames:
//
//	m, err := m64.ReadFile("run.m64")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(m.Game.ROMName, m.Recording.AuthorName)
//	for i, frame := range m.Frames() {
//	    fmt.Println(i, frame[0])
//	}
//
// Creating a movie:
//
//	m := movie.New()
//	m.Game.ROMName = encoding.MustFixedString[encoding.ROMNameLayout]("SUPER MARIO 64")
//	var in section.ControllerState
//	in.Set(section.A)
//	in.SetAxis(0, 127)
//	m.Inputs = append(m.Inputs, in)
//	data := m64.Encode(m)
//
// # Archives
//
// WriteFile can wrap the encoded movie in a compressed archive envelope (see
// package archive). ReadFile and ReadRawFile accept both forms.
//
// # Errors
//
// Format violations are reported with the sentinel errors of package errs
// and can be tested with errors.Is. File system failures wrap errs.ErrIO
// together with the underlying error.
package m64

import (
	"github.com/m64kit/m64/movie"
	"github.com/m64kit/m64/section"
)

// Decode decodes and validates a movie.
func Decode(data []byte) (movie.Movie, error) {
	return movie.Decode(data)
}

// DecodeRaw decodes a movie without interpreting its strings or extension.
func DecodeRaw(data []byte) (movie.RawMovie, error) {
	return movie.DecodeRaw(data)
}

// Encode encodes a movie. Reserved spans are written as zero.
//
// Encode does not validate: m should come from movie.New or Decode, or pass
// m.Validate. WriteFile validates before writing.
func Encode(m movie.Movie) []byte {
	return m.Bytes()
}

// InputDigest returns the xxHash64 of the encoded input records. Movies with
// identical inputs have identical digests whatever their headers hold.
func InputDigest(inputs []section.ControllerState) uint64 {
	return movie.InputDigest(inputs)
}
