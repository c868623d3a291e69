// Package bitfield describes packed integer words as ordered lists of named fields.
//
// A Layout is declared once from field widths; offsets are assigned sequentially
// starting at the least significant bit, in declaration order. The same table
// drives both unpacking (Get, Unpack) and packing (Set, Pack), so the bit
// assignment of a word lives in exactly one place.
//
//	var flags = bitfield.MustLayout(8,
//	    bitfield.Spec{Name: "wiivc", Width: 1},
//	    bitfield.Spec{Name: "reserved", Width: 7},
//	)
//
// Layouts are immutable after construction and safe for concurrent use.
package bitfield

import "fmt"

// Spec declares a field by name and width in bits.
type Spec struct {
	Name  string
	Width uint8
}

// Field is a Spec with its resolved bit offset.
type Field struct {
	Name   string
	Offset uint8
	Width  uint8
}

// Mask returns the in-place mask of the field.
func (f Field) Mask() uint32 {
	return f.valueMask() << f.Offset
}

func (f Field) valueMask() uint32 {
	if f.Width >= 32 {
		return ^uint32(0)
	}

	return (uint32(1) << f.Width) - 1
}

// Layout is an ordered set of fields covering a word of Bits() bits without gaps.
type Layout struct {
	bits   uint8
	fields []Field
}

// NewLayout builds a layout for a word of the given width.
//
// Returns an error if a field has zero width, or if the field widths do not add up
// to exactly bits.
func NewLayout(bits uint8, specs ...Spec) (Layout, error) {
	if bits == 0 || bits > 32 {
		return Layout{}, fmt.Errorf("bitfield: unsupported word width %d", bits)
	}

	fields := make([]Field, 0, len(specs))
	offset := 0
	for _, s := range specs {
		if s.Width == 0 {
			return Layout{}, fmt.Errorf("bitfield: field %q has zero width", s.Name)
		}
		fields = append(fields, Field{Name: s.Name, Offset: uint8(offset), Width: s.Width}) //nolint:gosec
		offset += int(s.Width)
	}

	if offset != int(bits) {
		return Layout{}, fmt.Errorf("bitfield: fields cover %d bits, word has %d", offset, bits)
	}

	return Layout{bits: bits, fields: fields}, nil
}

// MustLayout is like NewLayout but panics on error. It is meant for package-level
// layout declarations.
func MustLayout(bits uint8, specs ...Spec) Layout {
	l, err := NewLayout(bits, specs...)
	if err != nil {
		panic(err)
	}

	return l
}

// Bits returns the word width.
func (l Layout) Bits() int {
	return int(l.bits)
}

// Len returns the number of fields.
func (l Layout) Len() int {
	return len(l.fields)
}

// Field returns the i-th field descriptor.
func (l Layout) Field(i int) Field {
	return l.fields[i]
}

// Get extracts the value of field i from word.
func (l Layout) Get(word uint32, i int) uint32 {
	f := l.fields[i]
	return (word >> f.Offset) & f.valueMask()
}

// Set returns word with field i replaced by v. Bits of v beyond the field width
// are discarded.
func (l Layout) Set(word uint32, i int, v uint32) uint32 {
	f := l.fields[i]
	return (word &^ f.Mask()) | ((v & f.valueMask()) << f.Offset)
}

// Bool reports whether field i is non-zero.
func (l Layout) Bool(word uint32, i int) bool {
	return l.Get(word, i) != 0
}

// SetBool sets field i to 1 or 0.
func (l Layout) SetBool(word uint32, i int, on bool) uint32 {
	if on {
		return l.Set(word, i, 1)
	}

	return l.Set(word, i, 0)
}

// Unpack splits word into one value per field, in declaration order.
func (l Layout) Unpack(word uint32) []uint32 {
	values := make([]uint32, len(l.fields))
	for i := range l.fields {
		values[i] = l.Get(word, i)
	}

	return values
}

// Pack assembles a word from per-field values. Missing trailing values are zero.
func (l Layout) Pack(values []uint32) uint32 {
	var word uint32
	for i := range l.fields {
		if i >= len(values) {
			break
		}
		word = l.Set(word, i, values[i])
	}

	return word
}
