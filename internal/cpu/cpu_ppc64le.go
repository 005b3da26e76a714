//go:build ppc64le

package cpu

import (
	"golang.org/x/sys/cpu"
)

func archProbe(fs *FeatureSet) {
	fs.IsPOWER8 = cpu.PPC64.IsPOWER8
}
