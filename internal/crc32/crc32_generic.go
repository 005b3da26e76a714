//go:build !amd64 && !arm64 && !s390x && !ppc64le

package crc32

import (
	"github.com/chronos-tachyon/checksums/internal/cpu"
)

var archPreference []Kernel

func archSupports(k Kernel, poly Polynomial, fs cpu.FeatureSet) bool {
	return false
}

func archUpdate(k Kernel, tab *Table, crc uint32, p []byte) uint32 {
	return mustNotReach(k)
}
