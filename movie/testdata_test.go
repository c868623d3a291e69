package movie

import (
	"encoding/binary"

	"github.com/m64kit/m64/section"
)

// movieBytes builds a minimal valid movie: version 3, power-on, no extension,
// one controller, followed by the given input words.
func movieBytes(inputs ...uint32) []byte {
	b := make([]byte, section.HeaderSize, section.HeaderSize+len(inputs)*section.InputRecordSize)
	copy(b, section.Magic[:])
	binary.LittleEndian.PutUint32(b[section.OffsetVersion:], section.FormatVersion)
	b[section.OffsetVIsPerSecond] = 60
	b[section.OffsetControllerCount] = 1
	binary.LittleEndian.PutUint16(b[section.OffsetStartType:], 2)
	binary.LittleEndian.PutUint32(b[section.OffsetControllerFlags:], 1)

	for _, in := range inputs {
		b = binary.LittleEndian.AppendUint32(b, in)
	}

	return b
}

// fullMovieBytes is a version 1 movie with every field populated.
func fullMovieBytes() []byte {
	b := movieBytes(0x00000080, 0x7F810000, 0x00000010, 0xFFFF0000, 0x00001000, 0x00000001)
	le := binary.LittleEndian

	le.PutUint32(b[section.OffsetUID:], 0x5F3C1A22)
	le.PutUint32(b[section.OffsetVerticalInterrupts:], 3600)
	le.PutUint32(b[section.OffsetRerecordCount:], 12345)
	b[section.OffsetControllerCount] = 2
	b[section.OffsetExtendedVersion] = 1
	b[section.OffsetExtendedFlags] = 1
	le.PutUint32(b[section.OffsetControllerInputSamples:], 6)
	le.PutUint16(b[section.OffsetStartType:], 1)
	le.PutUint32(b[section.OffsetControllerFlags:], 0x0000_0113)
	le.PutUint32(b[section.OffsetExtendedData:], 0xA0)
	le.PutUint32(b[section.OffsetExtendedData+4:], 0xB0)
	le.PutUint32(b[section.OffsetExtendedData+8:], 2)
	copy(b[section.OffsetROMName:], "SUPER MARIO 64")
	le.PutUint32(b[section.OffsetROMCRC32:], 0x635A2BFF)
	le.PutUint16(b[section.OffsetROMCountry:], 0x45)
	copy(b[section.OffsetVideoPlugin:], "Jabo's Direct3D8 1.6")
	copy(b[section.OffsetSoundPlugin:], "Jabo's DirectSound 1.6")
	copy(b[section.OffsetInputPlugin:], "TAS Input Plugin 1.0")
	copy(b[section.OffsetRSPPlugin:], "RSP emulation Plugin")
	copy(b[section.OffsetAuthorName:], "Niño")
	copy(b[section.OffsetDescription:], "120 star any% • 日本語")

	return b
}
