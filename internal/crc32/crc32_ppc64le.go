//go:build ppc64le

package crc32

import (
	"github.com/chronos-tachyon/checksums/internal/cpu"
)

var archPreference = []Kernel{KernelVPMSUM}

func archSupports(k Kernel, poly Polynomial, fs cpu.FeatureSet) bool {
	return k == KernelVPMSUM && fs.IsPOWER8
}

func archUpdate(k Kernel, tab *Table, crc uint32, p []byte) uint32 {
	if k != KernelVPMSUM {
		return mustNotReach(k)
	}
	return vectorUpdate(tab, crc, p)
}
