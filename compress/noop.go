package compress

// NoOpCompressor stores data as is. The archive envelope still adds its
// checksum, so this is the choice for integrity-only archives.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data without copying.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data without copying. size is ignored.
func (c NoOpCompressor) Decompress(data []byte, _ int) ([]byte, error) {
	return data, nil
}

// DecompressBound returns n; stored data does not expand.
func (c NoOpCompressor) DecompressBound(n int) int {
	return capBound(uint64(max(n, 0)))
}
