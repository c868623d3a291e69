package encoding

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/m64kit/m64/errs"
	"github.com/m64kit/m64/section"
)

// Layout describes a fixed string field: its capacity in bytes and its
// character discipline. Implementations are empty struct types used as type
// parameters, so the discipline of every field is fixed at compile time.
type Layout interface {
	// Name is the field name reported in errors.
	Name() string
	// Size is the field capacity in bytes. A string of exactly Size bytes is
	// stored without a terminating NUL.
	Size() int
	// ASCIIOnly reports whether every byte must be below 0x80.
	// When false the string only has to be valid UTF-8.
	ASCIIOnly() bool
}

type (
	ROMNameLayout     struct{} // 32 bytes, ASCII
	PluginNameLayout  struct{} // 64 bytes, ASCII
	AuthorNameLayout  struct{} // 222 bytes, UTF-8
	DescriptionLayout struct{} // 256 bytes, UTF-8
)

func (ROMNameLayout) Name() string    { return "rom_name" }
func (ROMNameLayout) Size() int       { return section.ROMNameSize }
func (ROMNameLayout) ASCIIOnly() bool { return true }

func (PluginNameLayout) Name() string    { return "plugin_name" }
func (PluginNameLayout) Size() int       { return section.PluginNameSize }
func (PluginNameLayout) ASCIIOnly() bool { return true }

func (AuthorNameLayout) Name() string    { return "author_name" }
func (AuthorNameLayout) Size() int       { return section.AuthorNameSize }
func (AuthorNameLayout) ASCIIOnly() bool { return false }

func (DescriptionLayout) Name() string    { return "description" }
func (DescriptionLayout) Size() int       { return section.DescriptionSize }
func (DescriptionLayout) ASCIIOnly() bool { return false }

// FixedString is a string that is known to fit, NUL padded, into the field
// described by L and to satisfy its character discipline.
//
// The zero value is the empty string, which is valid for every layout.
type FixedString[L Layout] struct {
	value string
}

type (
	ROMName     = FixedString[ROMNameLayout]
	PluginName  = FixedString[PluginNameLayout]
	AuthorName  = FixedString[AuthorNameLayout]
	Description = FixedString[DescriptionLayout]
)

// NewFixedString validates s against the layout L.
//
// Returns:
//   - FixedString[L]: the validated string
//   - error: *errs.StringError wrapping ErrEmbeddedNUL, ErrInvalidUTF8,
//     ErrInvalidASCII or ErrStringTooLong
func NewFixedString[L Layout](s string) (FixedString[L], error) {
	var layout L

	if strings.IndexByte(s, 0) >= 0 {
		return FixedString[L]{}, &errs.StringError{Field: layout.Name(), Value: s, Err: errs.ErrEmbeddedNUL}
	}

	if err := validate(layout, []byte(s)); err != nil {
		return FixedString[L]{}, err
	}

	if len(s) > layout.Size() {
		return FixedString[L]{}, &errs.StringError{Field: layout.Name(), Value: s, Err: errs.ErrStringTooLong}
	}

	return FixedString[L]{value: s}, nil
}

// MustFixedString is like NewFixedString but panics on error.
func MustFixedString[L Layout](s string) FixedString[L] {
	f, err := NewFixedString[L](s)
	if err != nil {
		panic(err)
	}

	return f
}

// ParseFixedString decodes a field read from a movie header.
//
// The data is cut at the first NUL byte (or used whole when there is none),
// validated as UTF-8 and, for ASCII layouts, checked for bytes >= 0x80.
//
// Returns:
//   - FixedString[L]: the decoded string
//   - error: *errs.StringError wrapping ErrInvalidUTF8, ErrInvalidASCII, or
//     ErrStringTooLong when data is longer than the field
func ParseFixedString[L Layout](data []byte) (FixedString[L], error) {
	var layout L

	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}

	if err := validate(layout, data); err != nil {
		return FixedString[L]{}, err
	}

	if len(data) > layout.Size() {
		return FixedString[L]{}, &errs.StringError{Field: layout.Name(), Value: string(data), Err: errs.ErrStringTooLong}
	}

	return FixedString[L]{value: string(data)}, nil
}

func validate(layout Layout, data []byte) error {
	if !utf8.Valid(data) {
		return &errs.StringError{Field: layout.Name(), Bytes: bytes.Clone(data), Err: errs.ErrInvalidUTF8}
	}

	if layout.ASCIIOnly() {
		for _, c := range data {
			if c >= utf8.RuneSelf {
				return &errs.StringError{Field: layout.Name(), Value: string(data), Err: errs.ErrInvalidASCII}
			}
		}
	}

	return nil
}

// String returns the string value.
func (f FixedString[L]) String() string {
	return f.value
}

// Len returns the length of the string in bytes.
func (f FixedString[L]) Len() int {
	return len(f.value)
}

// IsEmpty reports whether the string is empty.
func (f FixedString[L]) IsEmpty() bool {
	return f.value == ""
}

// Size returns the field capacity of L.
func (f FixedString[L]) Size() int {
	var layout L
	return layout.Size()
}

// Put writes the string into dst followed by NUL padding. Exactly Size()
// bytes of dst are written; dst must be at least that long.
func (f FixedString[L]) Put(dst []byte) {
	dst = dst[:f.Size()]
	n := copy(dst, f.value)
	clear(dst[n:])
}

// Bytes returns the NUL padded field bytes.
func (f FixedString[L]) Bytes() []byte {
	b := make([]byte, f.Size())
	f.Put(b)

	return b
}
