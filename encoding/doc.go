// Package encoding provides the fixed-capacity string fields of the movie header.
//
// Each string field has a capacity and a character discipline:
//
//	Field         Size  Discipline
//	rom_name        32  ASCII
//	plugin names    64  ASCII
//	author_name    222  UTF-8
//	description    256  UTF-8
//
// On disk a string is stored followed by NUL padding. A string that uses the
// whole capacity has no terminator. The discipline is part of the type:
// FixedString is parameterized by a Layout, so a ROMName cannot be assigned
// to an AuthorName field and every value has been validated for its field.
//
//	name, err := encoding.NewFixedString[encoding.ROMNameLayout]("SUPER MARIO 64")
//	if err != nil {
//	    return err // *errs.StringError
//	}
//	var field [32]byte
//	name.Put(field[:])
package encoding
