//go:build s390x

package cpu

import (
	"golang.org/x/sys/cpu"
)

func archProbe(fs *FeatureSet) {
	fs.HasVX = cpu.S390X.HasVX
}
