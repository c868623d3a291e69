// Package archive wraps encoded movies in a small self-describing envelope
// that records the compression codec, the uncompressed length and an xxHash64
// of the uncompressed bytes.
//
// Envelope layout (all integers little-endian):
//
//	0x00  4  magic "M64Z"
//	0x04  1  compression type (format.CompressionType)
//	0x05  3  reserved, zero
//	0x08  4  uncompressed length
//	0x0C  8  xxHash64 of the uncompressed payload
//	0x14  …  compressed payload
//
// A packed movie never starts with the movie signature, so readers can accept
// both forms with IsPacked.
package archive

import (
	"bytes"
	"fmt"

	"github.com/m64kit/m64/compress"
	"github.com/m64kit/m64/endian"
	"github.com/m64kit/m64/errs"
	"github.com/m64kit/m64/format"
	"github.com/m64kit/m64/internal/hash"
)

// Magic is the 4-byte signature of an archive envelope.
var Magic = [4]byte{'M', '6', '4', 'Z'}

const (
	HeaderSize = 20

	offsetCompression = 0x04
	offsetReserved    = 0x05
	offsetLength      = 0x08
	offsetChecksum    = 0x0C
)

// Header is the decoded envelope header.
type Header struct {
	Compression format.CompressionType
	Length      uint32 // uncompressed payload length
	Checksum    uint64 // xxHash64 of the uncompressed payload
}

// IsPacked reports whether data starts with the envelope signature.
func IsPacked(data []byte) bool {
	return len(data) >= len(Magic) && bytes.Equal(data[:len(Magic)], Magic[:])
}

// ParseHeader decodes and checks the envelope header at the start of data.
//
// Returns:
//   - Header: the decoded header
//   - error: ErrInvalidArchive for a bad signature, short data or non-zero
//     reserved bytes; ErrUnsupportedCompression for unknown codecs
func ParseHeader(data []byte) (Header, error) {
	if !IsPacked(data) {
		return Header{}, fmt.Errorf("%w: bad signature", errs.ErrInvalidArchive)
	}
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes, header needs %d", errs.ErrInvalidArchive, len(data), HeaderSize)
	}

	for _, b := range data[offsetReserved:offsetLength] {
		if b != 0 {
			return Header{}, fmt.Errorf("%w: reserved bytes set", errs.ErrInvalidArchive)
		}
	}

	engine := endian.Movie()
	h := Header{
		Compression: format.CompressionType(data[offsetCompression]),
		Length:      engine.Uint32(data[offsetLength:]),
		Checksum:    engine.Uint64(data[offsetChecksum:]),
	}

	if _, err := compress.GetCodec(h.Compression); err != nil {
		return Header{}, err
	}

	return h, nil
}

// Put writes the header into the first HeaderSize bytes of b.
func (h Header) Put(b []byte) {
	b = b[:HeaderSize]
	clear(b)

	engine := endian.Movie()
	copy(b, Magic[:])
	b[offsetCompression] = uint8(h.Compression)
	engine.PutUint32(b[offsetLength:], h.Length)
	engine.PutUint64(b[offsetChecksum:], h.Checksum)
}

// Pack compresses data with the codec ct and wraps it in an envelope.
// data is typically an encoded movie but any payload is accepted.
func Pack(data []byte, ct format.CompressionType) ([]byte, error) {
	codec, err := compress.GetCodec(ct)
	if err != nil {
		return nil, err
	}

	if len(data) > compress.MaxDecodedSize {
		return nil, fmt.Errorf("%w: payload of %d bytes exceeds %d", errs.ErrInvalidArchive, len(data), compress.MaxDecodedSize)
	}

	payload, err := codec.Compress(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidArchive, err)
	}

	h := Header{
		Compression: ct,
		Length:      uint32(len(data)), //nolint:gosec
		Checksum:    hash.Sum(data),
	}

	out := make([]byte, HeaderSize, HeaderSize+len(payload))
	h.Put(out)

	return append(out, payload...), nil
}

// Unpack validates the envelope and returns the uncompressed payload.
//
// Returns:
//   - []byte: the payload, never aliasing data
//   - error: ErrInvalidArchive, ErrUnsupportedCompression or ErrChecksumMismatch
//
// The header length is checked against the codec's DecompressBound before
// any output buffer is allocated.
func Unpack(data []byte) ([]byte, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(h.Compression)
	if err != nil {
		return nil, err
	}

	payload := data[HeaderSize:]
	if bound := codec.DecompressBound(len(payload)); uint64(h.Length) > uint64(bound) {
		return nil, fmt.Errorf("%w: header length %d exceeds %d for a %d byte %s payload",
			errs.ErrInvalidArchive, h.Length, bound, len(payload), h.Compression)
	}

	if h.Compression == format.CompressionNone {
		payload = bytes.Clone(payload)
	}

	out, err := codec.Decompress(payload, int(h.Length))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidArchive, err)
	}

	if len(out) != int(h.Length) {
		return nil, fmt.Errorf("%w: payload is %d bytes, header says %d", errs.ErrInvalidArchive, len(out), h.Length)
	}

	if sum := hash.Sum(out); sum != h.Checksum {
		return nil, fmt.Errorf("%w: got %016x, want %016x", errs.ErrChecksumMismatch, sum, h.Checksum)
	}

	return out, nil
}
