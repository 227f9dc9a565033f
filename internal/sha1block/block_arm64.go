//go:build arm64 && !purego

package sha1block

import "github.com/fenilsonani/hyperhash/internal/hyperdrive"

// kVectors holds each round constant replicated across the four lanes of a
// vector register, in phase order.
var kVectors = [16]uint32{
	K0, K0, K0, K0,
	K1, K1, K1, K1,
	K2, K2, K2, K2,
	K3, K3, K3, K3,
}

// blockSHA1CE is implemented in block_arm64.s. len(p) must be a non-zero
// multiple of BlockSize.
//
//go:noescape
func blockSHA1CE(h *[5]uint32, p []byte, k *[16]uint32)

func blockARM64(h *[5]uint32, p []byte) {
	if len(p) < BlockSize {
		return
	}
	blockSHA1CE(h, p[:len(p)&^(BlockSize-1)], &kVectors)
}

// accelerated reports the SHA1 crypto extension backend when the CPU has it.
// Being built for arm64 is not enough: the extension is optional in ARMv8.
func accelerated() []Backend {
	if !hyperdrive.Detect().ARM64SHA1 {
		return nil
	}
	return []Backend{{Name: "arm64-sha1", Accelerated: true, block: blockARM64}}
}
