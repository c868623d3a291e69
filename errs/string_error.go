package errs

import "fmt"

// StringError describes a fixed string field that failed validation.
type StringError struct {
	// Field is the on-disk field name, e.g. "rom_name".
	Field string
	// Value is the offending string. It is empty when the bytes were not valid UTF-8.
	Value string
	// Bytes holds the raw field bytes up to the first NUL, when decoding.
	Bytes []byte
	// Err is one of ErrInvalidUTF8, ErrInvalidASCII, ErrStringTooLong or ErrEmbeddedNUL.
	Err error
}

func (e *StringError) Error() string {
	switch {
	case e.Value != "":
		return fmt.Sprintf("%v: field %s: %q", e.Err, e.Field, e.Value)
	case len(e.Bytes) > 0:
		return fmt.Sprintf("%v: field %s: % x", e.Err, e.Field, e.Bytes)
	default:
		return fmt.Sprintf("%v: field %s", e.Err, e.Field)
	}
}

func (e *StringError) Unwrap() error {
	return e.Err
}
