//go:build unix

package main

import (
	"math"
	"os"
	"unsafe"

	"github.com/rs/zerolog/log"
	"golang.org/x/sys/unix"

	"github.com/chronos-tachyon/checksums"
)

const haveMmap = true

// mapFile maps the whole of f read-only and returns it as a direct Buffer.
// The returned function unmaps it.
func mapFile(f *os.File, size int64) (checksums.Buffer, func() error, error) {
	if size == 0 {
		return checksums.Direct(nil, 0), func() error { return nil }, nil
	}
	if err := checkMapSize(size, math.MaxInt); err != nil {
		return checksums.Buffer{}, nil, err
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return checksums.Buffer{}, nil, err
	}
	if err := unix.Madvise(data, unix.MADV_SEQUENTIAL); err != nil {
		log.Logger.Debug().
			Str("filename", f.Name()).
			Err(err).
			Msg("unix.Madvise(MADV_SEQUENTIAL) failed")
	}
	buf := checksums.Direct(unsafe.Pointer(&data[0]), len(data))
	return buf, func() error { return unix.Munmap(data) }, nil
}
