// Package cpu probes the running processor for the instruction set
// extensions that the CRC kernels can use.
package cpu

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/klauspost/cpuid/v2"
)

// FeatureSet records which CRC-relevant instruction set extensions are
// present.  The zero value means "no acceleration".
//
// Every flag gates at least one engine.  Wider vector paths inside an
// engine (such as AVX-512 folding in the CLMUL engine) are chosen by that
// engine itself and are not part of the set.
type FeatureSet struct {
	// amd64
	HasSSE41     bool
	HasSSE42     bool
	HasPCLMULQDQ bool

	// arm64
	HasCRC32 bool

	// s390x
	HasVX bool

	// ppc64le
	IsPOWER8 bool

	Vendor       string
	Brand        string
	LogicalCores int
}

var (
	gOnce     sync.Once
	gFeatures FeatureSet
	gProbes   uint32
	gProbe    = probe
)

// Detect returns the FeatureSet of the running processor.  The probe runs
// exactly once per process; every caller observes the same result.
func Detect() FeatureSet {
	gOnce.Do(func() {
		atomic.AddUint32(&gProbes, 1)
		gFeatures = gProbe()
	})
	return gFeatures
}

func probe() FeatureSet {
	var fs FeatureSet
	archProbe(&fs)
	fs.Vendor = cpuid.CPU.VendorString
	fs.Brand = cpuid.CPU.BrandName
	fs.LogicalCores = cpuid.CPU.LogicalCores
	return fs
}

// IsEmpty returns true if no acceleration feature is present.
func (fs FeatureSet) IsEmpty() bool {
	return len(fs.Names()) == 0
}

// Names returns the sorted names of the features that are present.
func (fs FeatureSet) Names() []string {
	flags := [...]struct {
		name    string
		present bool
	}{
		{"sse4.1", fs.HasSSE41},
		{"sse4.2", fs.HasSSE42},
		{"pclmulqdq", fs.HasPCLMULQDQ},
		{"crc32", fs.HasCRC32},
		{"vx", fs.HasVX},
		{"power8", fs.IsPOWER8},
	}
	names := make([]string, 0, len(flags))
	for _, flag := range flags {
		if flag.present {
			names = append(names, flag.name)
		}
	}
	sort.Strings(names)
	return names
}

// Intersect returns the features present in both fs and other.  The
// descriptive fields are taken from fs.
func (fs FeatureSet) Intersect(other FeatureSet) FeatureSet {
	out := fs
	out.HasSSE41 = fs.HasSSE41 && other.HasSSE41
	out.HasSSE42 = fs.HasSSE42 && other.HasSSE42
	out.HasPCLMULQDQ = fs.HasPCLMULQDQ && other.HasPCLMULQDQ
	out.HasCRC32 = fs.HasCRC32 && other.HasCRC32
	out.HasVX = fs.HasVX && other.HasVX
	out.IsPOWER8 = fs.IsPOWER8 && other.IsPOWER8
	return out
}
