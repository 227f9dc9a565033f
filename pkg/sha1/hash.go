package sha1

import (
	"hash"

	"github.com/fenilsonani/hyperhash/internal/sha1block"
)

// Sum returns the SHA-1 digest of data.
func Sum(data []byte) [Size]byte {
	d := New()
	d.absorb(data)
	return d.checkSum()
}

// hasher adapts Digest to hash.Hash. Sum works on a copy so the running
// state keeps absorbing.
type hasher struct {
	d Digest
}

// NewHash returns a hash.Hash backed by the preferred backend.
func NewHash() hash.Hash {
	return NewHashWithBackend(sha1block.Preferred())
}

// NewHashWithBackend returns a hash.Hash that compresses with b.
func NewHashWithBackend(b sha1block.Backend) hash.Hash {
	return &hasher{d: *NewWithBackend(b)}
}

func (h *hasher) Write(p []byte) (int, error) {
	h.d.absorb(p)
	return len(p), nil
}

func (h *hasher) Sum(in []byte) []byte {
	d := h.d
	sum := d.checkSum()
	return append(in, sum[:]...)
}

func (h *hasher) Reset() { h.d.reset() }

func (h *hasher) Size() int { return Size }

func (h *hasher) BlockSize() int { return BlockSize }
