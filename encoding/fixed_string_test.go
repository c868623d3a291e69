package encoding

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/m64kit/m64/errs"
)

func TestNewFixedString(t *testing.T) {
	t.Run("ASCII", func(t *testing.T) {
		s, err := NewFixedString[ROMNameLayout]("SUPER MARIO 64")
		require.NoError(t, err)
		require.Equal(t, "SUPER MARIO 64", s.String())
		require.Equal(t, 14, s.Len())
		require.Equal(t, 32, s.Size())
	})

	t.Run("UTF-8", func(t *testing.T) {
		for _, in := range []string{"Hello, world!", "こんにちは、世界！", "Привет, мир!"} {
			s, err := NewFixedString[AuthorNameLayout](in)
			require.NoError(t, err)
			require.Equal(t, in, s.String())
		}
	})

	t.Run("Non-ASCII in ASCII field", func(t *testing.T) {
		_, err := NewFixedString[PluginNameLayout]("Hello, 世界!")
		require.ErrorIs(t, err, errs.ErrInvalidASCII)

		var serr *errs.StringError
		require.True(t, errors.As(err, &serr))
		require.Equal(t, "Hello, 世界!", serr.Value)
		require.Equal(t, "plugin_name", serr.Field)
	})

	t.Run("Invalid UTF-8", func(t *testing.T) {
		_, err := NewFixedString[DescriptionLayout]("bad \xff byte")
		require.ErrorIs(t, err, errs.ErrInvalidUTF8)
	})

	t.Run("Embedded NUL", func(t *testing.T) {
		_, err := NewFixedString[DescriptionLayout]("a\x00b")
		require.ErrorIs(t, err, errs.ErrEmbeddedNUL)
	})

	t.Run("Capacity", func(t *testing.T) {
		full := strings.Repeat("x", 32)
		s, err := NewFixedString[ROMNameLayout](full)
		require.NoError(t, err)
		require.Equal(t, full, s.String())

		_, err = NewFixedString[ROMNameLayout](full + "x")
		require.ErrorIs(t, err, errs.ErrStringTooLong)

		// multibyte characters count in bytes
		_, err = NewFixedString[AuthorNameLayout](strings.Repeat("世", 75))
		require.ErrorIs(t, err, errs.ErrStringTooLong)
		_, err = NewFixedString[AuthorNameLayout](strings.Repeat("世", 74))
		require.NoError(t, err)
	})

	t.Run("Must panics", func(t *testing.T) {
		require.Panics(t, func() { MustFixedString[ROMNameLayout]("é") })
		require.Equal(t, "ok", MustFixedString[ROMNameLayout]("ok").String())
	})

	t.Run("Zero value", func(t *testing.T) {
		var s PluginName
		require.True(t, s.IsEmpty())
		require.Equal(t, make([]byte, 64), s.Bytes())
	})
}

func TestParseFixedString(t *testing.T) {
	t.Run("Trims at first NUL", func(t *testing.T) {
		data := make([]byte, 32)
		copy(data, "SUPER MARIO 64\x00garbage")

		s, err := ParseFixedString[ROMNameLayout](data)
		require.NoError(t, err)
		require.Equal(t, "SUPER MARIO 64", s.String())
	})

	t.Run("No terminator", func(t *testing.T) {
		data := bytes.Repeat([]byte{'A'}, 32)

		s, err := ParseFixedString[ROMNameLayout](data)
		require.NoError(t, err)
		require.Equal(t, 32, s.Len())
		require.Equal(t, data, s.Bytes())
	})

	t.Run("High bytes in ASCII field", func(t *testing.T) {
		data := make([]byte, 32)
		copy(data, "MARIO\xc3\xa9")

		_, err := ParseFixedString[ROMNameLayout](data)
		require.ErrorIs(t, err, errs.ErrInvalidASCII)

		var serr *errs.StringError
		require.True(t, errors.As(err, &serr))
		require.Equal(t, "MARIOé", serr.Value)
	})

	t.Run("Invalid UTF-8 reported before ASCII", func(t *testing.T) {
		data := make([]byte, 32)
		copy(data, "MARIO\x80")

		_, err := ParseFixedString[ROMNameLayout](data)
		require.ErrorIs(t, err, errs.ErrInvalidUTF8)

		var serr *errs.StringError
		require.True(t, errors.As(err, &serr))
		require.Equal(t, []byte("MARIO\x80"), serr.Bytes)
	})

	t.Run("UTF-8 field accepts multibyte", func(t *testing.T) {
		data := make([]byte, 222)
		copy(data, "こんにちは")

		s, err := ParseFixedString[AuthorNameLayout](data)
		require.NoError(t, err)
		require.Equal(t, "こんにちは", s.String())
	})

	t.Run("Oversized buffer", func(t *testing.T) {
		_, err := ParseFixedString[ROMNameLayout](bytes.Repeat([]byte{'A'}, 33))
		require.ErrorIs(t, err, errs.ErrStringTooLong)
	})
}

func TestFixedString_RoundTrip(t *testing.T) {
	inputs := []string{"", "a", "Mupen64 0.5", strings.Repeat("z", 64)}
	for _, in := range inputs {
		s := MustFixedString[PluginNameLayout](in)

		b := s.Bytes()
		require.Len(t, b, 64)

		parsed, err := ParseFixedString[PluginNameLayout](b)
		require.NoError(t, err)
		require.Equal(t, s, parsed)
	}
}

func TestFixedString_PutZeroFills(t *testing.T) {
	dst := bytes.Repeat([]byte{0xEE}, 40)
	MustFixedString[ROMNameLayout]("abc").Put(dst)

	require.Equal(t, []byte("abc"), dst[:3])
	require.Equal(t, make([]byte, 29), dst[3:32])
	require.Equal(t, bytes.Repeat([]byte{0xEE}, 8), dst[32:], "bytes past the field are untouched")
}
