// Package movie decodes and encodes complete .m64 movies.
//
// Two views of a movie are provided:
//
//   - RawMovie mirrors the file byte for byte: a section.Header plus the input
//     records. DecodeRaw performs the structural checks of the format and
//     RawMovie.Bytes writes it back, zeroing reserved spans.
//   - Movie is the validated projection. Strings are checked against their
//     field discipline (ASCII or UTF-8), the extension block is resolved into
//     version 0 or version 1, and fields are grouped by meaning.
//
// The two views convert into each other with FromRaw and Movie.ToRaw. For
// input whose reserved spans are zero:
//
//	raw, _ := movie.DecodeRaw(data)
//	m, _ := movie.FromRaw(raw)
//	bytes.Equal(m.ToRaw().Bytes(), data) // true
//
// Input records are grouped per frame by Frames, which is lazy and restartable.
package movie
