package format

import "strings"

type (
	StartType       uint16
	CompressionType uint8
)

const (
	StartSnapshot StartType = 0x1 // StartSnapshot starts the movie from a savestate.
	StartPowerOn  StartType = 0x2 // StartPowerOn starts the movie from console power-on.
	StartEEPROM   StartType = 0x4 // StartEEPROM starts the movie from power-on with existing EEPROM data.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Extended versions understood by the typed layer.
const (
	ExtendedVersion0 uint8 = 0 // no extension payload
	ExtendedVersion1 uint8 = 1 // WiiVC flag and extension data present
)

// IsValid reports whether s is one of the start types defined by the format.
func (s StartType) IsValid() bool {
	switch s {
	case StartSnapshot, StartPowerOn, StartEEPROM:
		return true
	default:
		return false
	}
}

func (s StartType) String() string {
	switch s {
	case StartSnapshot:
		return "Snapshot"
	case StartPowerOn:
		return "PowerOn"
	case StartEEPROM:
		return "EEPROM"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType maps a case-insensitive name ("none", "zstd", "s2", "lz4")
// to its CompressionType. The second result is false for unknown names.
func ParseCompressionType(name string) (CompressionType, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none", "":
		return CompressionNone, true
	case "zstd":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}
