// Package checksums computes CRC-32 (IEEE) and CRC-32C (Castagnoli)
// checksums, using the fastest implementation the running processor
// supports.
//
// The first call probes the processor once and picks an Engine per Kind;
// every later call reuses that choice.  All functions are safe for
// concurrent use, never retain the caller's memory, and never perform I/O.
//
// A checksum is computed incrementally by passing the previous result back
// in as prev; pass 0 to start a new checksum:
//
//	sum, err := checksums.CRC32C(checksums.Heap(data), 0, len(data), 0)
package checksums

import (
	"github.com/chronos-tachyon/assert"

	"github.com/chronos-tachyon/checksums/internal/crc32"
)

// CRC32 returns the CRC-32 of the length bytes of buf starting at offset,
// continuing from prev.  The only error is a RangeError.
func CRC32(buf Buffer, offset, length int, prev uint32) (uint32, error) {
	return Default().Compute(CRC32Kind, buf, offset, length, prev)
}

// CRC32C returns the CRC-32C of the length bytes of buf starting at
// offset, continuing from prev.  The only error is a RangeError.
func CRC32C(buf Buffer, offset, length int, prev uint32) (uint32, error) {
	return Default().Compute(CRC32CKind, buf, offset, length, prev)
}

// Update returns the checksum of p appended to the data summarized by
// prev.
func Update(kind Kind, prev uint32, p []byte) uint32 {
	return Default().Update(kind, prev, p)
}

// Checksum returns the checksum of p.
func Checksum(kind Kind, p []byte) uint32 {
	return Default().Update(kind, 0, p)
}

// Combine returns the checksum of A‖B, given sumA = Checksum(kind, A),
// sumB = Checksum(kind, B), and lenB = len(B).  This allows the pieces of
// a large input to be checksummed independently.
func Combine(kind Kind, sumA, sumB uint32, lenB int64) uint32 {
	assert.Assertf(kind.IsValid(), "invalid Kind %d", uint(kind))
	assert.Assertf(lenB >= 0, "negative length %d", lenB)
	return crc32.Combine(kind.table(), sumA, sumB, uint64(lenB))
}

// Engines returns every Engine usable for kind on this processor, fastest
// first.
func Engines(kind Kind) []Engine {
	return Default().Engines(kind)
}
