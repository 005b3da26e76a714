//go:build s390x

package crc32

import (
	"github.com/chronos-tachyon/checksums/internal/cpu"
)

var archPreference = []Kernel{KernelVX}

func archSupports(k Kernel, poly Polynomial, fs cpu.FeatureSet) bool {
	return k == KernelVX && fs.HasVX
}

func archUpdate(k Kernel, tab *Table, crc uint32, p []byte) uint32 {
	if k != KernelVX {
		return mustNotReach(k)
	}
	return vectorUpdate(tab, crc, p)
}
