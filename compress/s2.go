package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

// S2Compressor provides S2 block compression, a faster Snappy extension.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses the input data using S2 compression.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decompresses the input data. The block stores its own decoded
// length, so size is only used to reject a block that disagrees with it.
// The stored length is checked against DecompressBound before decoding.
func (c S2Compressor) Decompress(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}
	if err := checkSize(n, c.DecompressBound(len(data))); err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}
	if size > 0 && n != size {
		return nil, fmt.Errorf("s2 decompression failed: decoded length %d, expected %d", n, size)
	}

	decompressed, err := s2.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}

	return decompressed, nil
}

// DecompressBound allows 4 MiB per input byte. A 5-byte repeat is the densest
// S2 element and expands to just under 17 MiB.
func (c S2Compressor) DecompressBound(n int) int {
	return capBound(uint64(max(n, 0)) << 22)
}
