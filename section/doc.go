// Package section defines the fixed binary structures of the .m64 movie container.
//
// A movie is a 1024-byte header followed by 4-byte input records:
//
//	┌────────────────────────────────────────────────────────────┐
//	│ Header (0x400 bytes, fixed)                                │
//	│  0x000  magic "M64\x1A"                                    │
//	│  0x004  version (3), uid, VI count, rerecord count         │
//	│  0x014  VI/s, controller count, extended version/flags     │
//	│  0x018  input samples, start type, controller flags        │
//	│  0x024  extended data (3 x u32 + 20 reserved)              │
//	│  0x044  reserved (128)                                     │
//	│  0x0C4  ROM name (32), CRC32, country code, reserved (56)  │
//	│  0x122  video, sound, input, RSP plugin names (4 x 64)     │
//	│  0x222  author (222), description (256)                    │
//	├────────────────────────────────────────────────────────────┤
//	│ Input records (N x 4 bytes, to end of data)                │
//	└────────────────────────────────────────────────────────────┘
//
// All integers are little-endian. Reserved spans are written as zero.
//
// # Packed Words
//
// ExtendedFlags, ControllerFlags and ControllerState wrap an integer and expose
// its bits through a bitfield.Layout declared once per type. Reserved bits are
// preserved, so converting a word to its named fields and back never loses
// information:
//
//	state := section.NewControllerState(0x0000000F)
//	state.IsSet(section.DPadUp) // true
//	state.Uint32()              // 0x0000000F
//
// # Conditional Fields
//
// The WiiVC flag (bit 0 of ExtendedFlags) and the three ExtendedData integers
// only exist under extended version 1. Header.Validate accepts them when they
// are zero or when the extended version is 1, and rejects them otherwise.
package section
