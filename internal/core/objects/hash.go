package objects

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fenilsonani/hyperhash/pkg/sha1"
)

// ErrSizeMismatch is returned by HashReader when the reader does not yield
// exactly the declared number of bytes.
var ErrSizeMismatch = errors.New("object size mismatch")

// ObjectID is the SHA-1 name of a git object
type ObjectID [sha1.Size]byte

// String returns the hexadecimal string representation of the ObjectID
func (id ObjectID) String() string {
	return hex.EncodeToString(id[:])
}

// Short returns the first 7 characters of the hash
func (id ObjectID) Short() string {
	return id.String()[:7]
}

// IsZero returns true if the ObjectID is all zeros
func (id ObjectID) IsZero() bool {
	return id == ObjectID{}
}

// NewObjectID creates an ObjectID from a hexadecimal string
func NewObjectID(hexStr string) (ObjectID, error) {
	var id ObjectID

	if len(hexStr) != 2*sha1.Size {
		return id, fmt.Errorf("invalid object ID length: expected %d, got %d", 2*sha1.Size, len(hexStr))
	}

	if _, err := hex.Decode(id[:], []byte(hexStr)); err != nil {
		return ObjectID{}, fmt.Errorf("invalid hex string: %w", err)
	}
	return id, nil
}

// ParseObjectID parses a full object ID, ignoring surrounding whitespace
func ParseObjectID(input string) (ObjectID, error) {
	input = strings.TrimSpace(input)
	if len(input) < 2*sha1.Size {
		return ObjectID{}, fmt.Errorf("abbreviated object IDs not supported: %s", input)
	}
	return NewObjectID(input)
}

// header is the "<type> <size>\x00" prefix git hashes before the content
func header(objectType ObjectType, size int64) []byte {
	h := make([]byte, 0, 32)
	h = append(h, string(objectType)...)
	h = append(h, ' ')
	h = strconv.AppendInt(h, size, 10)
	return append(h, 0)
}

// ComputeHash calculates the SHA-1 hash of the given data with the object type prefix
func ComputeHash(objectType ObjectType, data []byte) ObjectID {
	d := sha1.New()
	// Update only fails on a finalized digest.
	_ = d.Update(header(objectType, int64(len(data))))
	_ = d.Update(data)

	sum, _ := d.Finalize()
	return ObjectID(sum)
}

// HashReader hashes an object of the given size while reading its content
// from r. Reading stops after size bytes; a short or long reader is an error.
func HashReader(objectType ObjectType, size int64, r io.Reader) (ObjectID, error) {
	if size < 0 {
		return ObjectID{}, fmt.Errorf("negative object size %d", size)
	}

	d := sha1.New()
	if err := d.Update(header(objectType, size)); err != nil {
		return ObjectID{}, err
	}

	buf := make([]byte, 32*1024)
	var n int64
	lr := io.LimitReader(r, size)
	for {
		m, err := lr.Read(buf)
		if m > 0 {
			n += int64(m)
			if uerr := d.Update(buf[:m]); uerr != nil {
				return ObjectID{}, uerr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return ObjectID{}, fmt.Errorf("failed to hash reader: %w", err)
		}
	}

	if n != size {
		return ObjectID{}, fmt.Errorf("%w: expected %d bytes, read %d", ErrSizeMismatch, size, n)
	}
	var probe [1]byte
	if m, _ := r.Read(probe[:]); m > 0 {
		return ObjectID{}, fmt.Errorf("%w: reader has more than %d bytes", ErrSizeMismatch, size)
	}

	sum, err := d.Finalize()
	if err != nil {
		return ObjectID{}, err
	}
	return ObjectID(sum), nil
}
