// Package crc32 holds the CRC-32 computation kernels: a portable
// slicing-by-8 implementation that works everywhere, and the hardware
// kernels compiled for the target architecture.
//
// All kernels take and return the conventional (pre- and post-inverted)
// CRC value, so the output of one call can be fed to the next call of any
// kernel.
package crc32

import (
	"encoding/binary"

	"github.com/chronos-tachyon/assert"

	"github.com/chronos-tachyon/checksums/internal/cpu"
)

// Size is the size of a CRC-32 checksum in bytes.
const Size = 4

// Kernel identifies one implementation of the CRC computation.
type Kernel byte

const (
	// KernelPortable is the table-driven implementation.
	KernelPortable Kernel = iota

	// KernelSSE42 uses the x86 SSE4.2 CRC32 instruction (Castagnoli only).
	KernelSSE42

	// KernelCLMUL uses x86 carry-less multiplication folding for IEEE and
	// three interleaved SSE4.2 streams for Castagnoli.
	KernelCLMUL

	// KernelARMv8 uses the ARMv8 CRC32 and CRC32C instructions.
	KernelARMv8

	// KernelVX uses the s390x vector facility.
	KernelVX

	// KernelVPMSUM uses the POWER8 vector polynomial multiply.
	KernelVPMSUM

	numKernels
)

// NumKernels is the number of Kernel constants.
const NumKernels = int(numKernels)

// String returns a short name for the kernel.
func (k Kernel) String() string {
	switch k {
	case KernelPortable:
		return "portable"
	case KernelSSE42:
		return "sse42"
	case KernelCLMUL:
		return "clmul"
	case KernelARMv8:
		return "armv8-crc"
	case KernelVX:
		return "vx"
	case KernelVPMSUM:
		return "vpmsum"
	default:
		return "unknown"
	}
}

// Preference returns the kernels compiled for this architecture, fastest
// first.  The last element is always KernelPortable.
func Preference() []Kernel {
	out := make([]Kernel, 0, len(archPreference)+1)
	out = append(out, archPreference...)
	out = append(out, KernelPortable)
	return out
}

// Supports returns true if k is compiled for this architecture, fs says the
// processor has the instructions k needs, and k implements poly.
func (k Kernel) Supports(poly Polynomial, fs cpu.FeatureSet) bool {
	if k == KernelPortable {
		return true
	}
	if poly != IEEE && poly != Castagnoli {
		return false
	}
	return archSupports(k, poly, fs)
}

// Update returns the CRC of p appended to the data summarized by crc.  The
// caller must have checked Supports against the detected FeatureSet.
func (k Kernel) Update(tab *Table, crc uint32, p []byte) uint32 {
	assert.NotNil(&tab)
	if len(p) == 0 {
		return crc
	}
	if k == KernelPortable {
		return Portable(tab, crc, p)
	}
	return archUpdate(k, tab, crc, p)
}

// Portable returns the CRC of p appended to the data summarized by crc,
// using only table lookups.
func Portable(tab *Table, crc uint32, p []byte) uint32 {
	length := uint(len(p))
	if length == 0 {
		return crc
	}
	t := &tab.slicing
	crc = ^crc
	if length >= 16 {
		for length >= 8 {
			crc ^= binary.LittleEndian.Uint32(p)
			crc = (t[0][p[7]] ^
				t[1][p[6]] ^
				t[2][p[5]] ^
				t[3][p[4]] ^
				t[4][crc>>24] ^
				t[5][(crc>>16)&0xff] ^
				t[6][(crc>>8)&0xff] ^
				t[7][crc&0xff])
			p = p[8:]
			length -= 8
		}
	}
	for _, ch := range p {
		crc = t[0][byte(crc)^ch] ^ (crc >> 8)
	}
	return ^crc
}

func mustNotReach(k Kernel) uint32 {
	assert.Raisef("kernel %v is not available on this architecture", k)
	return 0
}
