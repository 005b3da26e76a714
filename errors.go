package checksums

import (
	"errors"
	"fmt"
)

// ErrInvalidRange is matched by every RangeError via errors.Is.
var ErrInvalidRange = errors.New("offset/length outside buffer bounds")

// RangeError is returned when the requested offset and length do not lie
// within the Buffer.  It is the only error the computation functions
// return.
type RangeError struct {
	Offset int
	Length int
	Size   int
}

// Error fulfills the error interface.
func (err RangeError) Error() string {
	return fmt.Sprintf("invalid range: offset %d, length %d, buffer size %d", err.Offset, err.Length, err.Size)
}

// Is returns true for ErrInvalidRange.
func (err RangeError) Is(target error) bool {
	return target == ErrInvalidRange
}

// MismatchError is reported by SelfTest when an Engine disagrees with the
// expected checksum.
type MismatchError struct {
	Kind   Kind
	Engine Engine
	Length int
	Seed   Checksum32
	Expect Checksum32
	Actual Checksum32
}

// Error fulfills the error interface.
func (err MismatchError) Error() string {
	return fmt.Sprintf("%v engine %v: length %d, seed %v: expected %v, got %v", err.Kind, err.Engine, err.Length, err.Seed, err.Expect, err.Actual)
}

var _ error = RangeError{}
var _ error = MismatchError{}
