package sha1block

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownBackend is returned by Lookup for names that are not compiled in
// or cannot run on this CPU.
var ErrUnknownBackend = errors.New("unknown sha1 backend")

// BlockFunc compresses every 64-byte block of p, in order, into h.
// len(p) must be a multiple of BlockSize.
type BlockFunc func(h *[5]uint32, p []byte)

// Backend is a named implementation of the compression function.
type Backend struct {
	Name        string
	Accelerated bool // relies on CPU extensions
	block       BlockFunc
}

// Compress runs the backend over blocks. It panics if len(blocks) is not a
// multiple of BlockSize. A Backend not obtained from this package (no block
// function) compresses with the portable implementation.
func (b Backend) Compress(h *[5]uint32, blocks []byte) {
	checkLength(blocks)
	if len(blocks) == 0 {
		return
	}
	if b.block == nil {
		blockGeneric(h, blocks)
		return
	}
	b.block(h, blocks)
}

func (b Backend) String() string {
	return b.Name
}

// Generic is the portable backend. It is always available.
var Generic = Backend{Name: "generic", block: blockGeneric}

var preferred = sync.OnceValue(func() Backend {
	return Backends()[0]
})

// Preferred returns the backend Compress uses. The choice is made on first
// call and never changes for the life of the process.
func Preferred() Backend {
	return preferred()
}

// Compress applies the preferred backend to each 64-byte block of blocks in
// order, updating h in place.
func Compress(h *[5]uint32, blocks []byte) {
	Preferred().Compress(h, blocks)
}

// Backends lists the backends usable on this host, most preferred first.
// The last entry is always Generic.
func Backends() []Backend {
	return append(accelerated(), Generic)
}

// Lookup finds a usable backend by name. "auto" resolves to Preferred.
func Lookup(name string) (Backend, error) {
	if name == "" || name == "auto" {
		return Preferred(), nil
	}
	for _, b := range Backends() {
		if b.Name == name {
			return b, nil
		}
	}
	return Backend{}, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}

func checkLength(p []byte) {
	if len(p)%BlockSize != 0 {
		panic(fmt.Sprintf("sha1block: input length %d is not a multiple of %d", len(p), BlockSize))
	}
}
