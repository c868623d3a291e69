package section

// Magic is the 4-byte signature at offset 0 of every movie: "M64\x1A".
var Magic = [4]byte{0x4D, 0x36, 0x34, 0x1A}

const (
	FormatVersion = 3 // the only supported value of the version field

	HeaderSize      = 0x400 // fixed header size; input records start here
	InputRecordSize = 4     // size of one ControllerState word
	MaxControllers  = 4     // controllers described by ControllerFlags

	ROMNameSize     = 32
	PluginNameSize  = 64
	AuthorNameSize  = 222
	DescriptionSize = 256

	ExtendedDataSize     = 32 // 3 x uint32 + 20 reserved bytes
	extendedDataReserved = 20
)

// byte offsets of header fields
const (
	OffsetMagic                  = 0x000
	OffsetVersion                = 0x004
	OffsetUID                    = 0x008
	OffsetVerticalInterrupts     = 0x00C
	OffsetRerecordCount          = 0x010
	OffsetVIsPerSecond           = 0x014
	OffsetControllerCount        = 0x015
	OffsetExtendedVersion        = 0x016
	OffsetExtendedFlags          = 0x017
	OffsetControllerInputSamples = 0x018
	OffsetStartType              = 0x01C
	OffsetReserved01             = 0x01E // 2 bytes
	OffsetControllerFlags        = 0x020
	OffsetExtendedData           = 0x024 // 32 bytes, last 20 reserved
	OffsetReserved02             = 0x044 // 128 bytes
	OffsetROMName                = 0x0C4
	OffsetROMCRC32               = 0x0E4
	OffsetROMCountry             = 0x0E8
	OffsetReserved03             = 0x0EA // 56 bytes
	OffsetVideoPlugin            = 0x122
	OffsetSoundPlugin            = 0x162
	OffsetInputPlugin            = 0x1A2
	OffsetRSPPlugin              = 0x1E2
	OffsetAuthorName             = 0x222
	OffsetDescription            = 0x300
	OffsetInputs                 = HeaderSize
)
