// Package endian provides the byte order used by the m64 container.
//
// All multi-byte integers in an .m64 file are little-endian. The package wraps
// encoding/binary so that encoders and decoders share one engine value, and
// reports whether the host already stores integers in that order, which lets
// the input-record decoder copy words without per-element conversion.
//
// All functions are safe for concurrent use.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

var nativeLittle = detectLittleEndian()

func detectLittleEndian() bool {
	var i uint16 = 0x0001
	b := (*[2]byte)(unsafe.Pointer(&i))

	return b[0] == 0x01
}

// Movie returns the engine for the .m64 container.
func Movie() EndianEngine {
	return binary.LittleEndian
}

// MatchesNative reports whether engine has the host byte order, in which case
// words can be copied without conversion.
func MatchesNative(engine EndianEngine) bool {
	if nativeLittle {
		return engine == binary.LittleEndian
	}

	return engine == binary.BigEndian
}
