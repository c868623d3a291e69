package movie

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m64kit/m64/encoding"
	"github.com/m64kit/m64/errs"
	"github.com/m64kit/m64/format"
	"github.com/m64kit/m64/internal/hash"
	"github.com/m64kit/m64/section"
)

func TestDecode(t *testing.T) {
	t.Run("Full movie", func(t *testing.T) {
		m, err := Decode(fullMovieBytes())
		require.NoError(t, err)

		assert.Equal(t, uint32(3), m.Metadata.Version())
		assert.Equal(t, uint8(1), m.Metadata.ExtendedVersion())
		v1, ok := m.Metadata.Extension.V1()
		require.True(t, ok)
		assert.True(t, v1.WiiVCEmulationMode())
		assert.Equal(t, uint32(0xA0), v1.Data.AuthorshipInfo)

		assert.Equal(t, "SUPER MARIO 64", m.Game.ROMName.String())
		assert.Equal(t, uint32(0x635A2BFF), m.Game.ROMCRC32)
		assert.Equal(t, uint16(0x45), m.Game.ROMCountry)

		assert.Equal(t, "Jabo's Direct3D8 1.6", m.Plugins.VideoPlugin.String())
		assert.Equal(t, "Jabo's DirectSound 1.6", m.Plugins.SoundPlugin.String())
		assert.Equal(t, "TAS Input Plugin 1.0", m.Plugins.InputPlugin.String())
		assert.Equal(t, "RSP emulation Plugin", m.Plugins.RSPPlugin.String())

		assert.Equal(t, "Niño", m.Recording.AuthorName.String())
		assert.Equal(t, "120 star any% • 日本語", m.Recording.Description.String())
		assert.Equal(t, format.StartSnapshot, m.Recording.StartType)
		assert.Equal(t, uint8(2), m.Recording.ControllerCount)
		assert.Equal(t, uint32(6), m.Recording.ControllerInputSamples)

		assert.Equal(t, 3, m.FrameCount())
		assert.Equal(t, uint64(2)<<32|12345, m.TotalRerecordCount())
	})

	t.Run("Single record yields one frame", func(t *testing.T) {
		m, err := Decode(movieBytes(0x80))
		require.NoError(t, err)
		require.Equal(t, ExtensionV0(), m.Metadata.Extension)

		groups := 0
		for _, frame := range m.Frames() {
			require.Len(t, frame, 1)
			groups++
		}
		require.Equal(t, 1, groups)
	})

	t.Run("Extended version 2", func(t *testing.T) {
		data := movieBytes(0x80)
		data[section.OffsetExtendedVersion] = 2

		_, err := Decode(data)
		require.ErrorIs(t, err, errs.ErrUnsupportedExtendedVersion)
		require.Contains(t, err.Error(), "2")
	})

	t.Run("Non ASCII ROM name", func(t *testing.T) {
		data := movieBytes()
		copy(data[section.OffsetROMName:], "MARIO \xc3\xa9")

		_, err := Decode(data)
		require.ErrorIs(t, err, errs.ErrInvalidASCII)

		var serr *errs.StringError
		require.True(t, errors.As(err, &serr))
		require.Equal(t, "rom_name", serr.Field)
		require.Equal(t, "MARIO é", serr.Value)
	})

	t.Run("Invalid UTF-8 in ROM name", func(t *testing.T) {
		data := movieBytes()
		copy(data[section.OffsetROMName:], "\xff\xfe")

		_, err := Decode(data)
		require.ErrorIs(t, err, errs.ErrInvalidUTF8)
	})

	t.Run("Non ASCII allowed in author", func(t *testing.T) {
		data := movieBytes()
		copy(data[section.OffsetAuthorName:], "Ünïcödé")

		m, err := Decode(data)
		require.NoError(t, err)
		require.Equal(t, "Ünïcödé", m.Recording.AuthorName.String())
	})

	t.Run("Field names in errors", func(t *testing.T) {
		fields := map[string]int{
			"video_plugin": section.OffsetVideoPlugin,
			"sound_plugin": section.OffsetSoundPlugin,
			"input_plugin": section.OffsetInputPlugin,
			"rsp_plugin":   section.OffsetRSPPlugin,
			"author_name":  section.OffsetAuthorName,
			"description":  section.OffsetDescription,
		}
		for field, offset := range fields {
			t.Run(field, func(t *testing.T) {
				data := movieBytes()
				data[offset] = 0xFF

				_, err := Decode(data)
				var serr *errs.StringError
				require.True(t, errors.As(err, &serr))
				require.Equal(t, field, serr.Field)
				require.ErrorIs(t, err, errs.ErrInvalidUTF8)
			})
		}
	})

	t.Run("First failing field wins", func(t *testing.T) {
		data := movieBytes()
		data[section.OffsetDescription] = 0xFF
		data[section.OffsetSoundPlugin] = 0xFF

		_, err := Decode(data)
		var serr *errs.StringError
		require.True(t, errors.As(err, &serr))
		require.Equal(t, "sound_plugin", serr.Field)
	})

	t.Run("String filling the whole field", func(t *testing.T) {
		data := movieBytes()
		name := "ABCDEFGHIJKLMNOPQRSTUVWXYZ012345"
		require.Len(t, name, section.ROMNameSize)
		copy(data[section.OffsetROMName:], name)

		m, err := Decode(data)
		require.NoError(t, err)
		require.Equal(t, name, m.Game.ROMName.String())
		require.Equal(t, data, m.Bytes())
	})
}

func TestFromRaw_RevalidatesHeader(t *testing.T) {
	raw, err := DecodeRaw(movieBytes())
	require.NoError(t, err)

	raw.Header.Version = 4
	_, err = FromRaw(raw)
	require.ErrorIs(t, err, errs.ErrUnsupportedVersion)

	raw.Header.Version = 3
	raw.Header.StartType = 0
	_, err = FromRaw(raw)
	require.ErrorIs(t, err, errs.ErrBadStartType)
}

func TestMovie_RoundTrip(t *testing.T) {
	t.Run("Bytes", func(t *testing.T) {
		for name, data := range map[string][]byte{
			"minimal": movieBytes(),
			"single":  movieBytes(0x80),
			"full":    fullMovieBytes(),
		} {
			t.Run(name, func(t *testing.T) {
				raw, err := DecodeRaw(data)
				require.NoError(t, err)

				m, err := FromRaw(raw)
				require.NoError(t, err)
				require.Equal(t, raw, m.ToRaw())
				require.Equal(t, data, m.Bytes())
			})
		}
	})

	t.Run("Semantic", func(t *testing.T) {
		m := New()
		m.Metadata.Extension = NewExtensionV1(ExtensionV1{
			Flags: section.NewExtendedFlags(1),
			Data:  section.ExtendedData{AuthorshipInfo: 0x4D55, RerecordCountHigh: 1},
		})
		m.Game.ROMName = encoding.MustFixedString[encoding.ROMNameLayout]("THE LEGEND OF ZELDA")
		m.Game.ROMCRC32 = 0xCF7F6C8A
		m.Plugins.InputPlugin = encoding.MustFixedString[encoding.PluginNameLayout]("Mupen64 Input")
		m.Recording.AuthorName = encoding.MustFixedString[encoding.AuthorNameLayout]("José")
		m.Recording.Description = encoding.MustFixedString[encoding.DescriptionLayout]("glitched\nrun")
		m.Recording.UID = 42
		m.Recording.RerecordCount = 9001
		m.Recording.ControllerCount = 2
		m.Recording.ControllerFlags.SetPresent(1, true)
		m.Recording.ControllerFlags.SetRumblepak(1, true)
		m.Inputs = states(0x80, 0x10, 0x7F7F0000, 0)

		back, err := FromRaw(m.ToRaw())
		require.NoError(t, err)
		require.Equal(t, m, back)
		require.Equal(t, uint64(1)<<32|9001, back.TotalRerecordCount())
	})

	t.Run("Version 0 drops reserved flag bits", func(t *testing.T) {
		raw, err := DecodeRaw(movieBytes())
		require.NoError(t, err)
		raw.Header.ExtendedFlags = section.NewExtendedFlags(0x80)

		m, err := FromRaw(raw)
		require.NoError(t, err)
		require.Equal(t, uint8(0), m.ToRaw().Header.ExtendedFlags.Uint8())
	})

	t.Run("Conversion copies inputs", func(t *testing.T) {
		m := New()
		m.Inputs = states(1, 2)

		raw := m.ToRaw()
		raw.Inputs[0] = section.NewControllerState(9)
		require.Equal(t, uint32(1), m.Inputs[0].Uint32())
	})
}

func TestNew(t *testing.T) {
	m := New()

	assert.Equal(t, format.StartPowerOn, m.Recording.StartType)
	assert.Equal(t, uint8(1), m.Recording.ControllerCount)
	assert.True(t, m.Recording.ControllerFlags.Present(0))
	assert.Equal(t, uint8(0), m.Metadata.ExtendedVersion())

	decoded, err := Decode(m.Bytes())
	require.NoError(t, err)
	require.Equal(t, m, decoded)
}

func TestMovie_Validate(t *testing.T) {
	require.NoError(t, New().Validate())

	m, err := Decode(fullMovieBytes())
	require.NoError(t, err)
	require.NoError(t, m.Validate())

	var zero Movie
	require.ErrorIs(t, zero.Validate(), errs.ErrBadStartType)

	_, err = FromRaw(zero.ToRaw())
	require.ErrorIs(t, err, errs.ErrBadStartType)
}

func TestMovie_Frame(t *testing.T) {
	m := New()
	m.Recording.ControllerCount = 2
	m.Inputs = states(1, 2, 3)

	require.Equal(t, 2, m.FrameCount())
	require.Equal(t, states(3), m.Frame(1))
	require.Nil(t, m.Frame(2))
}

func TestInputDigest(t *testing.T) {
	data := movieBytes(0x80, 0x7F810000)
	m, err := Decode(data)
	require.NoError(t, err)

	require.Equal(t, hash.Sum(data[section.OffsetInputs:]), m.InputDigest())

	other := m
	other.Recording.AuthorName = encoding.MustFixedString[encoding.AuthorNameLayout]("someone else")
	require.Equal(t, m.InputDigest(), other.InputDigest())

	other.Inputs = states(0x80)
	require.NotEqual(t, m.InputDigest(), other.InputDigest())
}
