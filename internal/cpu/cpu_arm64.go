//go:build arm64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

func archProbe(fs *FeatureSet) {
	// Every Apple Silicon part implements the ARMv8 CRC extension.
	fs.HasCRC32 = cpu.ARM64.HasCRC32 || runtime.GOOS == "darwin"
}
