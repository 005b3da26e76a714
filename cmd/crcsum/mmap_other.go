//go:build !unix

package main

import (
	"errors"
	"os"

	"github.com/chronos-tachyon/checksums"
)

const haveMmap = false

func mapFile(f *os.File, size int64) (checksums.Buffer, func() error, error) {
	return checksums.Buffer{}, nil, errors.New("memory mapping is not supported on this platform")
}
