package m64

import (
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"github.com/m64kit/m64/archive"
	"github.com/m64kit/m64/errs"
	"github.com/m64kit/m64/format"
	"github.com/m64kit/m64/internal/options"
	"github.com/m64kit/m64/internal/pool"
	"github.com/m64kit/m64/movie"
)

const defaultFileMode fs.FileMode = 0o644

type writeConfig struct {
	compression format.CompressionType
	mode        fs.FileMode
}

// WriteOption configures WriteFile.
type WriteOption = options.Option[*writeConfig]

// WithCompression packs the movie into an archive envelope compressed with
// ct. format.CompressionNone still adds the envelope and its checksum.
func WithCompression(ct format.CompressionType) WriteOption {
	return options.New(func(c *writeConfig) error {
		if ct < format.CompressionNone || ct > format.CompressionLZ4 {
			return fmt.Errorf("%w: %d", errs.ErrUnsupportedCompression, uint8(ct))
		}
		c.compression = ct

		return nil
	})
}

// WithFileMode sets the permission bits of a newly created file.
func WithFileMode(mode fs.FileMode) WriteOption {
	return options.NoError(func(c *writeConfig) {
		c.mode = mode.Perm()
	})
}

// ReadFile reads and decodes the movie stored at path. Archive envelopes
// are unpacked transparently.
func ReadFile(path string) (movie.Movie, error) {
	data, err := readMovieBytes(path)
	if err != nil {
		return movie.Movie{}, err
	}

	m, err := movie.Decode(data)
	if err != nil {
		return movie.Movie{}, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// ReadRawFile is like ReadFile but returns the raw view.
func ReadRawFile(path string) (movie.RawMovie, error) {
	data, err := readMovieBytes(path)
	if err != nil {
		return movie.RawMovie{}, err
	}

	raw, err := movie.DecodeRaw(data)
	if err != nil {
		return movie.RawMovie{}, fmt.Errorf("%s: %w", path, err)
	}

	return raw, nil
}

func readMovieBytes(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrIO, err)
	}

	if !archive.IsPacked(data) {
		Logger().Debug("read movie", zap.String("path", path), zap.Int("size", len(data)))
		return data, nil
	}

	h, err := archive.ParseHeader(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	unpacked, err := archive.Unpack(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	Logger().Debug("read packed movie",
		zap.String("path", path),
		zap.Stringer("compression", h.Compression),
		zap.Int("packed_size", len(data)),
		zap.Int("size", len(unpacked)))

	return unpacked, nil
}

// WriteFile encodes m and writes it to path, creating or truncating the file.
//
// Without options the plain .m64 encoding is written with mode 0644. Movies
// that fail m.Validate are rejected and nothing is written.
func WriteFile(path string, m movie.Movie, opts ...WriteOption) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return writeMovie(path, m.ToRaw(), opts)
}

// WriteRawFile is like WriteFile for the raw view. The header must pass the
// checks of DecodeRaw; the typed checks of Decode are not applied, so movies
// with unknown extended versions or non-ASCII plugin names are written as is.
func WriteRawFile(path string, raw movie.RawMovie, opts ...WriteOption) error {
	if err := raw.Header.Validate(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return writeMovie(path, raw, opts)
}

func writeMovie(path string, raw movie.RawMovie, opts []WriteOption) error {
	cfg := &writeConfig{mode: defaultFileMode}
	if err := options.Apply(cfg, opts...); err != nil {
		return err
	}

	buf := pool.GetMovieBuffer()
	defer pool.PutMovieBuffer(buf)

	buf.Grow(raw.Size())
	buf.B = raw.AppendBytes(buf.B)
	data := buf.Bytes()

	if cfg.compression != 0 {
		packed, err := archive.Pack(data, cfg.compression)
		if err != nil {
			return err
		}
		data = packed
	}

	if err := os.WriteFile(path, data, cfg.mode); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrIO, err)
	}

	Logger().Debug("wrote movie",
		zap.String("path", path),
		zap.Int("size", buf.Len()),
		zap.Int("written", len(data)),
		zap.Int("inputs", len(raw.Inputs)),
		zap.Bool("packed", cfg.compression != 0))

	return nil
}
