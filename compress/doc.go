// Package compress provides the block codecs used by the movie archive envelope.
//
// Movies are small (a header of 1 KiB plus 4 bytes per polled controller) and
// extremely repetitive: consecutive frames usually hold identical input
// words. General purpose block compression removes most of that redundancy.
//
// Supported algorithms:
//   - None: no compression, integrity checking only
//   - Zstd: best ratio, the default for archives
//   - S2: fast, Snappy compatible framing extension
//   - LZ4: fastest decompression
//
// All codecs implement Codec:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(movieBytes)
//	original, err := codec.Decompress(packed, len(movieBytes))
//
// # Thread Safety
//
// All codec implementations are safe for concurrent use. Zstd encoders and
// decoders and LZ4 compressors are pooled with sync.Pool.
package compress
