package compress

// ZstdCompressor provides Zstandard compression.
//
// It has the best ratio of the built-in codecs, which suits archived movies:
// input records repeat heavily between frames and long runs of idle input
// compress to almost nothing.
//
// The default build uses github.com/klauspost/compress/zstd. Building with
// cgo and the gozstd tag switches to the libzstd bindings of
// github.com/valyala/gozstd; both produce standard zstd frames.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// zstdBlockMax is the largest output of a single zstd block.
const zstdBlockMax = 128 << 10

// DecompressBound allows one full block per 4 input bytes, the size of the
// smallest RLE block.
func (c ZstdCompressor) DecompressBound(n int) int {
	return capBound((uint64(max(n, 0))/4 + 1) * zstdBlockMax)
}
