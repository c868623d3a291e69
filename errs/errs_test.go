package errs

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringError(t *testing.T) {
	t.Run("With value", func(t *testing.T) {
		err := error(&StringError{Field: "rom_name", Value: "SUPER MARIO 64é", Err: ErrInvalidASCII})

		require.ErrorIs(t, err, ErrInvalidASCII)
		require.Contains(t, err.Error(), "rom_name")
		require.Contains(t, err.Error(), "SUPER MARIO 64é")

		var serr *StringError
		require.True(t, errors.As(err, &serr))
		require.Equal(t, "SUPER MARIO 64é", serr.Value)
	})

	t.Run("With bytes", func(t *testing.T) {
		err := &StringError{Field: "author_name", Bytes: []byte{0xff, 0xfe}, Err: ErrInvalidUTF8}

		require.ErrorIs(t, err, ErrInvalidUTF8)
		require.Contains(t, err.Error(), "ff fe")
	})

	t.Run("Field only", func(t *testing.T) {
		err := &StringError{Field: "description", Err: ErrStringTooLong}

		require.ErrorIs(t, err, ErrStringTooLong)
		require.Equal(t, "m64: string too long: field description", err.Error())
	})
}

func TestIOWrapping(t *testing.T) {
	err := fmt.Errorf("%w: %w", ErrIO, fs.ErrNotExist)

	require.ErrorIs(t, err, ErrIO)
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.NotErrorIs(t, err, ErrBadMagic)
}
