package section

import "github.com/m64kit/m64/endian"

// ExtendedData is the 32-byte extension block at offset 0x24. Its three
// integers are only meaningful when the extended version is 1; the trailing
// 20 bytes are reserved and always written as zero.
type ExtendedData struct {
	// AuthorshipInfo identifies the tool that authored the movie.
	AuthorshipInfo uint32 // byte offset 0x24-0x27
	// BruteforceData is extra data used by bruteforcing tools.
	BruteforceData uint32 // byte offset 0x28-0x2B
	// RerecordCountHigh holds the upper 32 bits of the rerecord count.
	RerecordCountHigh uint32 // byte offset 0x2C-0x2F
}

// IsZero reports whether all extension integers are zero.
func (d ExtendedData) IsZero() bool {
	return d == ExtendedData{}
}

func (d *ExtendedData) parse(engine endian.EndianEngine, b []byte) {
	d.AuthorshipInfo = engine.Uint32(b[0:4])
	d.BruteforceData = engine.Uint32(b[4:8])
	d.RerecordCountHigh = engine.Uint32(b[8:12])
}

func (d ExtendedData) put(engine endian.EndianEngine, b []byte) {
	engine.PutUint32(b[0:4], d.AuthorshipInfo)
	engine.PutUint32(b[4:8], d.BruteforceData)
	engine.PutUint32(b[8:12], d.RerecordCountHigh)
	clear(b[12 : 12+extendedDataReserved])
}
