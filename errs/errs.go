// Package errs defines the sentinel errors returned by the m64 packages.
//
// Every error produced while decoding or encoding a movie wraps exactly one of
// the sentinels below, so callers can classify failures with errors.Is:
//
//	movie, err := m64.Decode(data)
//	if errors.Is(err, errs.ErrUnsupportedVersion) {
//	    // not a version 3 movie
//	}
//
// Errors coming from the file system are wrapped with ErrIO and keep the
// underlying error in the chain, so errors.Is(err, fs.ErrNotExist) still works.
package errs

import "errors"

// Container format errors.
var (
	ErrBadMagic                   = errors.New("m64: invalid magic number")
	ErrUnsupportedVersion         = errors.New("m64: unsupported movie version")
	ErrUnsupportedExtendedVersion = errors.New("m64: unsupported extended version")
	ErrInvalidExtensionState      = errors.New("m64: extension field set without matching extended version")
	ErrBadStartType               = errors.New("m64: invalid start type")
	ErrTruncatedInput             = errors.New("m64: truncated input")
)

// Fixed string errors.
var (
	ErrInvalidUTF8   = errors.New("m64: invalid UTF-8 string")
	ErrInvalidASCII  = errors.New("m64: invalid ASCII string")
	ErrStringTooLong = errors.New("m64: string too long")
	ErrEmbeddedNUL   = errors.New("m64: string contains NUL byte")
)

// Archive envelope errors.
var (
	ErrInvalidArchive         = errors.New("m64: invalid archive envelope")
	ErrChecksumMismatch       = errors.New("m64: archive checksum mismatch")
	ErrUnsupportedCompression = errors.New("m64: unsupported compression type")
)

// ErrIO marks failures of the file system boundary.
var ErrIO = errors.New("m64: i/o error")
