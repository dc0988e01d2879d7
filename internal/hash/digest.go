// Package hash wraps xxHash64 for tag fingerprints.
package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Digest is a streaming xxHash64 over a canonical byte sequence.
//
// Every variable-length field is length-prefixed so that adjacent fields can
// not alias: ("ab", "c") and ("a", "bc") hash differently.
type Digest struct {
	d       *xxhash.Digest
	scratch [8]byte
}

// NewDigest returns an empty digest.
func NewDigest() *Digest {
	return &Digest{d: xxhash.New()}
}

// Byte feeds a single byte.
func (h *Digest) Byte(b byte) {
	h.scratch[0] = b
	_, _ = h.d.Write(h.scratch[:1])
}

// Uint32 feeds v in big-endian order.
func (h *Digest) Uint32(v uint32) {
	binary.BigEndian.PutUint32(h.scratch[:4], v)
	_, _ = h.d.Write(h.scratch[:4])
}

// Uint64 feeds v in big-endian order.
func (h *Digest) Uint64(v uint64) {
	binary.BigEndian.PutUint64(h.scratch[:], v)
	_, _ = h.d.Write(h.scratch[:])
}

// String feeds the length of s followed by its bytes.
func (h *Digest) String(s string) {
	h.Uint32(uint32(len(s))) //nolint:gosec
	_, _ = h.d.WriteString(s)
}

// Sum64 returns the current hash value.
func (h *Digest) Sum64() uint64 {
	return h.d.Sum64()
}

// Reset clears the digest for reuse.
func (h *Digest) Reset() {
	h.d.Reset()
}
