package checksums

import (
	"hash"

	"github.com/chronos-tachyon/assert"
)

const crc32Size = 4

// Digest is a running checksum implementing hash.Hash32.  Sum appends the
// checksum in big-endian byte order.
type Digest struct {
	d    *Dispatcher
	kind Kind
	sum  uint32
}

// New returns a Digest for kind using the Default Dispatcher.
func New(kind Kind) *Digest {
	return Default().New(kind)
}

// New returns a Digest for kind using this Dispatcher.
func (d *Dispatcher) New(kind Kind) *Digest {
	assert.NotNil(&d)
	assert.Assertf(kind.IsValid(), "invalid Kind %d", uint(kind))
	return &Digest{d: d, kind: kind}
}

// Kind returns the Kind of checksum this Digest computes.
func (h *Digest) Kind() Kind { return h.kind }

// Size fulfills hash.Hash.
func (h *Digest) Size() int { return crc32Size }

// BlockSize fulfills hash.Hash.
func (h *Digest) BlockSize() int { return 1 }

// Reset fulfills hash.Hash.
func (h *Digest) Reset() {
	h.sum = 0
}

// Write fulfills io.Writer.  It never fails.
func (h *Digest) Write(p []byte) (int, error) {
	h.sum = h.d.Update(h.kind, h.sum, p)
	return len(p), nil
}

// Sum fulfills hash.Hash.
func (h *Digest) Sum(p []byte) []byte {
	return Checksum32(h.sum).Append(p)
}

// Sum32 fulfills hash.Hash32.
func (h *Digest) Sum32() uint32 {
	return h.sum
}

var _ hash.Hash32 = (*Digest)(nil)
