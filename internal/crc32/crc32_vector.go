//go:build s390x || ppc64le

package crc32

import (
	kcrc32 "github.com/klauspost/crc32"
)

var klauspostCastagnoli = kcrc32.MakeTable(kcrc32.Castagnoli)

// vectorUpdate hands the whole buffer to the vector kernels; they do their
// own block splitting.
func vectorUpdate(tab *Table, crc uint32, p []byte) uint32 {
	if tab.poly == IEEE {
		return kcrc32.Update(crc, kcrc32.IEEETable, p)
	}
	return kcrc32.Update(crc, klauspostCastagnoli, p)
}
