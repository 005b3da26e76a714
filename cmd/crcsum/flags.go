package main

import (
	"github.com/chronos-tachyon/checksums"
	getopt "github.com/pborman/getopt/v2"
)

// type KindFlag {{{

// KindFlag implements getopt.Value for checksums.Kind.
type KindFlag struct {
	Value checksums.Kind
}

// Set fulfills getopt.Value.
func (flag *KindFlag) Set(str string, opt getopt.Option) error {
	return flag.Value.Parse(str)
}

// String fulfills getopt.Value.
func (flag KindFlag) String() string {
	return flag.Value.String()
}

var _ getopt.Value = (*KindFlag)(nil)

// }}}

// type EngineFlag {{{

// EngineFlag implements getopt.Value for checksums.Engine.
type EngineFlag struct {
	Value checksums.Engine
}

// Set fulfills getopt.Value.
func (flag *EngineFlag) Set(str string, opt getopt.Option) error {
	return flag.Value.Parse(str)
}

// String fulfills getopt.Value.
func (flag EngineFlag) String() string {
	return flag.Value.String()
}

var _ getopt.Value = (*EngineFlag)(nil)

// }}}

// type SeedFlag {{{

// SeedFlag implements getopt.Value for checksums.Checksum32.
type SeedFlag struct {
	Value checksums.Checksum32
}

// Set fulfills getopt.Value.
func (flag *SeedFlag) Set(str string, opt getopt.Option) error {
	return flag.Value.Parse(str)
}

// String fulfills getopt.Value.
func (flag SeedFlag) String() string {
	return flag.Value.String()
}

var _ getopt.Value = (*SeedFlag)(nil)

// }}}
