// Package sha1 computes SHA-1 digests over streamed input.
//
// A Digest absorbs any number of Update calls and produces its 20-byte
// result exactly once:
//
//	d := sha1.New()
//	if err := d.Update(header); err != nil {
//	    return err
//	}
//	if err := d.Update(body); err != nil {
//	    return err
//	}
//	sum, err := d.Finalize()
//
// Block compression is delegated to the fastest backend available on the
// host CPU. SHA-1 is not collision resistant; use it for content addressing
// and interoperability, not for security.
package sha1

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/fenilsonani/hyperhash/internal/sha1block"
)

const (
	// Size is the length of a SHA-1 digest in bytes.
	Size = 20

	// BlockSize is the SHA-1 block size in bytes.
	BlockSize = sha1block.BlockSize
)

// ErrFinalized is returned when a Digest is used after Finalize.
var ErrFinalized = errors.New("digest already finalized")

// Phase is the lifecycle position of a Digest.
type Phase uint8

const (
	// PhaseEmpty means no input has been absorbed yet.
	PhaseEmpty Phase = iota
	// PhaseAbsorbing means at least one non-empty Update has happened.
	PhaseAbsorbing
	// PhaseFinalized is terminal.
	PhaseFinalized
)

func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhaseAbsorbing:
		return "absorbing"
	case PhaseFinalized:
		return "finalized"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// Digest is a streaming SHA-1 context. It is not safe for concurrent use.
// The zero value is not ready; create Digests with New or NewWithBackend.
type Digest struct {
	h       [5]uint32
	x       [BlockSize]byte
	nx      int    // bytes pending in x, always < BlockSize between calls
	len     uint64 // total bytes absorbed, mod 2^64
	phase   Phase
	backend sha1block.Backend
}

// New returns a Digest using the preferred backend.
func New() *Digest {
	return NewWithBackend(sha1block.Preferred())
}

// NewWithBackend returns a Digest that compresses with b.
func NewWithBackend(b sha1block.Backend) *Digest {
	d := &Digest{backend: b}
	d.reset()
	return d
}

func (d *Digest) reset() {
	d.h = sha1block.IV
	d.nx = 0
	d.len = 0
	d.phase = PhaseEmpty
}

// Update absorbs p. It fails with ErrFinalized once Finalize has been called.
func (d *Digest) Update(p []byte) error {
	if d.phase == PhaseFinalized {
		return fmt.Errorf("sha1: update: %w", ErrFinalized)
	}
	if len(p) > 0 {
		d.phase = PhaseAbsorbing
	}
	d.absorb(p)
	return nil
}

// absorb buffers p and compresses every block it completes.
func (d *Digest) absorb(p []byte) {
	d.len += uint64(len(p))
	if d.nx > 0 {
		n := copy(d.x[d.nx:], p)
		d.nx += n
		if d.nx == BlockSize {
			d.backend.Compress(&d.h, d.x[:])
			d.nx = 0
		}
		p = p[n:]
	}
	if len(p) >= BlockSize {
		n := len(p) &^ (BlockSize - 1)
		d.backend.Compress(&d.h, p[:n])
		p = p[n:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
}

// Finalize pads the message, compresses the trailing block or blocks and
// returns the digest. The Digest cannot be used afterwards; a second call
// returns ErrFinalized.
func (d *Digest) Finalize() ([Size]byte, error) {
	if d.phase == PhaseFinalized {
		return [Size]byte{}, fmt.Errorf("sha1: finalize: %w", ErrFinalized)
	}
	sum := d.checkSum()
	d.phase = PhaseFinalized
	return sum, nil
}

func (d *Digest) checkSum() [Size]byte {
	n := d.len
	d.absorb(Padding(n))
	d.len = n
	if d.nx != 0 {
		panic("sha1: pending bytes after padding")
	}

	var out [Size]byte
	for i, v := range d.h {
		binary.BigEndian.PutUint32(out[i*4:], v)
	}
	return out
}

// Padding returns the bytes appended to a message of n bytes: 0x80, zeros up
// to 56 mod 64, then the message length in bits as a big-endian uint64.
// The result is 9 to 72 bytes long.
func Padding(n uint64) []byte {
	var tmp [BlockSize + 8]byte
	tmp[0] = 0x80

	rem := n % BlockSize
	var zeros uint64
	if rem < 56 {
		zeros = 56 - rem
	} else {
		zeros = BlockSize + 56 - rem
	}
	binary.BigEndian.PutUint64(tmp[zeros:], n<<3)
	return tmp[:zeros+8]
}

// Len returns the number of bytes absorbed so far, mod 2^64.
func (d *Digest) Len() uint64 {
	return d.len
}

// Phase returns where d is in its lifecycle.
func (d *Digest) Phase() Phase {
	return d.phase
}

// Backend returns the compression backend d uses.
func (d *Digest) Backend() sha1block.Backend {
	return d.backend
}
