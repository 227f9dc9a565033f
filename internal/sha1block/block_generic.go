package sha1block

import (
	"encoding/binary"
	"math/bits"
)

// blockGeneric is the portable compression function. It runs the 80-round
// transform over every 64-byte block of p in order and folds each result
// back into h.
func blockGeneric(h *[5]uint32, p []byte) {
	var w [Rounds]uint32

	h0, h1, h2, h3, h4 := h[0], h[1], h[2], h[3], h[4]
	for len(p) >= BlockSize {
		for i := 0; i < 16; i++ {
			w[i] = binary.BigEndian.Uint32(p[i*4:])
		}
		expand(&w)

		a, b, c, d, e := h0, h1, h2, h3, h4

		t := 0
		for ; t < 20; t++ {
			f := b&c | (^b)&d
			a, b, c, d, e = bits.RotateLeft32(a, 5)+f+e+w[t]+K0, a, bits.RotateLeft32(b, 30), c, d
		}
		for ; t < 40; t++ {
			f := b ^ c ^ d
			a, b, c, d, e = bits.RotateLeft32(a, 5)+f+e+w[t]+K1, a, bits.RotateLeft32(b, 30), c, d
		}
		for ; t < 60; t++ {
			f := ((b | c) & d) | (b & c)
			a, b, c, d, e = bits.RotateLeft32(a, 5)+f+e+w[t]+K2, a, bits.RotateLeft32(b, 30), c, d
		}
		for ; t < Rounds; t++ {
			f := b ^ c ^ d
			a, b, c, d, e = bits.RotateLeft32(a, 5)+f+e+w[t]+K3, a, bits.RotateLeft32(b, 30), c, d
		}

		h0 += a
		h1 += b
		h2 += c
		h3 += d
		h4 += e

		p = p[BlockSize:]
	}
	h[0], h[1], h[2], h[3], h[4] = h0, h1, h2, h3, h4
}
