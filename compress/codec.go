package compress

import (
	"fmt"

	"github.com/m64kit/m64/errs"
	"github.com/m64kit/m64/format"
)

// Compressor compresses a complete encoded movie.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller, except for the
//     no-op codec which returns its input
//   - Input slice is not modified
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores data produced by the matching Compressor.
//
// size is the expected decompressed length when the caller knows it, as the
// archive envelope does, or 0 when unknown. Codecs use it to size their output
// buffer; callers must still check the length of the result.
//
// DecompressBound returns the largest output a well-formed block of n
// compressed bytes can produce, capped at MaxDecodedSize. Sizes read from
// untrusted input must be checked against it before any buffer is allocated.
//
// Implementations are safe for concurrent use.
type Decompressor interface {
	Decompress(data []byte, size int) ([]byte, error)
	DecompressBound(n int) int
}

// MaxDecodedSize is the largest payload any codec will decompress.
const MaxDecodedSize = 1 << 30

func capBound(bound uint64) int {
	if bound > MaxDecodedSize {
		return MaxDecodedSize
	}

	return int(bound)
}

func checkSize(size, bound int) error {
	if size > bound {
		return fmt.Errorf("expected size %d exceeds bound %d", size, bound)
	}

	return nil
}

// Codec combines both compression and decompression.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes one compression run.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64
}

// CompressionRatio returns the compression ratio (compressed size / original size).
//
// Values less than 1.0 indicate successful compression.
//
// Returns:
//   - float64: Compression ratio (0.0 if original size is zero)
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage (0-100%).
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
//
// Returns:
//   - Codec: shared codec instance, safe for concurrent use
//   - error: ErrUnsupportedCompression for unknown types
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %d", errs.ErrUnsupportedCompression, uint8(compressionType))
}
