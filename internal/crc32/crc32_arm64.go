//go:build arm64

package crc32

import (
	"github.com/chronos-tachyon/checksums/internal/cpu"
)

// ieeeUpdate and castagnoliUpdate update the non-inverted crc with p using
// the ARMv8 CRC32X/CRC32CX instructions, eight bytes at a time.

//go:noescape
func ieeeUpdate(crc uint32, p []byte) uint32

//go:noescape
func castagnoliUpdate(crc uint32, p []byte) uint32

var archPreference = []Kernel{KernelARMv8}

func archSupports(k Kernel, poly Polynomial, fs cpu.FeatureSet) bool {
	return k == KernelARMv8 && fs.HasCRC32
}

func archUpdate(k Kernel, tab *Table, crc uint32, p []byte) uint32 {
	if k != KernelARMv8 {
		return mustNotReach(k)
	}
	if tab.poly == IEEE {
		return ^ieeeUpdate(^crc, p)
	}
	return ^castagnoliUpdate(^crc, p)
}
