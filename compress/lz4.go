package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances, which keep a hash table
// between calls.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// maxLZ4Size bounds the adaptive buffer used when the decompressed size is unknown.
const maxLZ4Size = 128 * 1024 * 1024

// LZ4Compressor provides LZ4 block compression. Blocks carry no length, so
// decompression is exact when the caller passes the expected size.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the input data using a pooled lz4.Compressor.
//
// Returns:
//   - []byte: Compressed data (nil if input is empty)
//   - error: Compression error if any
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress decompresses the input data.
//
// With a positive size the output buffer is allocated once. Otherwise the
// buffer starts at 4x the compressed size and doubles on
// ErrInvalidSourceShortBuffer, up to 128MB.
func (c LZ4Compressor) Decompress(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	if size > 0 {
		if err := checkSize(size, c.DecompressBound(len(data))); err != nil {
			return nil, fmt.Errorf("lz4 decompression failed: %w", err)
		}

		buf := make([]byte, size)
		n, err := lz4.UncompressBlock(data, buf)
		if err != nil {
			return nil, fmt.Errorf("lz4 decompression failed: %w", err)
		}

		return buf[:n], nil
	}

	limit := min(c.DecompressBound(len(data)), maxLZ4Size)
	for bufSize := min(len(data)*4, limit); ; bufSize = min(bufSize*2, limit) {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) || bufSize == limit {
			return nil, fmt.Errorf("lz4 decompression failed: %w", err)
		}
	}
}

// DecompressBound returns 255 bytes per input byte, the longest match a
// single length byte extends.
func (c LZ4Compressor) DecompressBound(n int) int {
	return capBound(uint64(max(n, 0))*255 + 16)
}
