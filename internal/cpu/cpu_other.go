//go:build !amd64 && !arm64 && !s390x && !ppc64le

package cpu

func archProbe(fs *FeatureSet) {}
