// Package sha1block implements the SHA-1 compression function and selects,
// once per process, the fastest backend the host CPU can run.
package sha1block

import "math/bits"

const (
	// BlockSize is the number of message bytes consumed per compression.
	BlockSize = 64

	// Rounds is the length of the expanded message schedule.
	Rounds = 80
)

// IV is the initial hash state (A, B, C, D, E).
var IV = [5]uint32{0x67452301, 0xEFCDAB89, 0x98BADCFE, 0x10325476, 0xC3D2E1F0}

// Round constants, one per twenty-round phase.
const (
	K0 = 0x5A827999
	K1 = 0x6ED9EBA1
	K2 = 0x8F1BBCDC
	K3 = 0xCA62C1D6
)

// expand fills w[16:80] from w[0:16].
func expand(w *[Rounds]uint32) {
	for t := 16; t < Rounds; t++ {
		w[t] = bits.RotateLeft32(w[t-16]^w[t-14]^w[t-8]^w[t-3], 1)
	}
}
