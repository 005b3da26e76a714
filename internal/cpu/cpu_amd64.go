//go:build amd64

package cpu

import (
	"golang.org/x/sys/cpu"
)

func archProbe(fs *FeatureSet) {
	fs.HasSSE41 = cpu.X86.HasSSE41
	fs.HasSSE42 = cpu.X86.HasSSE42
	fs.HasPCLMULQDQ = cpu.X86.HasPCLMULQDQ
}
