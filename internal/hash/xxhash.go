// Package hash wraps xxHash64 for movie input digests and archive checksums.
package hash

import "github.com/cespare/xxhash/v2"

// Sum computes the xxHash64 of data.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Digest is a streaming xxHash64.
type Digest struct {
	d *xxhash.Digest
}

// NewDigest returns an empty streaming digest.
func NewDigest() Digest {
	return Digest{d: xxhash.New()}
}

// Write adds data to the digest.
func (d Digest) Write(data []byte) {
	_, _ = d.d.Write(data)
}

// Sum64 returns the current hash value.
func (d Digest) Sum64() uint64 {
	return d.d.Sum64()
}
