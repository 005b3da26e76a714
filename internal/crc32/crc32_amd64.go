//go:build amd64

package crc32

import (
	kcrc32 "github.com/klauspost/crc32"

	"github.com/chronos-tachyon/checksums/internal/cpu"
)

// castagnoliSSE42 updates the non-inverted crc with p using the CRC32
// instruction, eight bytes at a time.
//
//go:noescape
func castagnoliSSE42(crc uint32, p []byte) uint32

var archPreference = []Kernel{KernelCLMUL, KernelSSE42}

// Inputs shorter than this go through a single SSE4.2 stream; the
// interleaved kernel only pays off once it can run three 168-byte lanes.
const castagnoliInterleaveMin = 3 * 168

// The folding kernel consumes 16-byte blocks and needs at least four of
// them.
const clmulMin = 64

var klauspostCastagnoli = kcrc32.MakeTable(kcrc32.Castagnoli)

func archSupports(k Kernel, poly Polynomial, fs cpu.FeatureSet) bool {
	switch k {
	case KernelSSE42:
		return poly == Castagnoli && fs.HasSSE42
	case KernelCLMUL:
		if poly == IEEE {
			return fs.HasPCLMULQDQ && fs.HasSSE41
		}
		return fs.HasPCLMULQDQ && fs.HasSSE42
	default:
		return false
	}
}

func archUpdate(k Kernel, tab *Table, crc uint32, p []byte) uint32 {
	switch k {
	case KernelSSE42:
		return ^castagnoliSSE42(^crc, p)
	case KernelCLMUL:
		if tab.poly == IEEE {
			return clmulIEEE(tab, crc, p)
		}
		return clmulCastagnoli(crc, p)
	default:
		return mustNotReach(k)
	}
}

func clmulIEEE(tab *Table, crc uint32, p []byte) uint32 {
	length := uint(len(p))
	if length >= clmulMin {
		n := length &^ 0xf
		crc = kcrc32.Update(crc, kcrc32.IEEETable, p[:n])
		p = p[n:]
	}
	return Portable(tab, crc, p)
}

func clmulCastagnoli(crc uint32, p []byte) uint32 {
	if len(p) < castagnoliInterleaveMin {
		return ^castagnoliSSE42(^crc, p)
	}
	return kcrc32.Update(crc, klauspostCastagnoli, p)
}
