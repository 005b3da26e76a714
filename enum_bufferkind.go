package checksums

import (
	"fmt"

	"github.com/chronos-tachyon/enumhelper"
)

// BufferKind records where the memory behind a Buffer came from.  It has no
// effect on the checksum computation.
type BufferKind byte

const (
	// HeapBuffer indicates memory owned by the Go runtime.
	HeapBuffer BufferKind = iota

	// DirectBuffer indicates memory owned outside the Go heap, such as a
	// memory-mapped file or a region pinned by a foreign runtime.
	DirectBuffer
)

var bufferKindData = []enumhelper.EnumData{
	{GoName: "HeapBuffer", Name: "heap"},
	{GoName: "DirectBuffer", Name: "direct"},
}

// IsValid returns true if bk is a valid BufferKind constant.
func (bk BufferKind) IsValid() bool {
	return bk >= HeapBuffer && bk <= DirectBuffer
}

// GoString returns the Go string representation of this BufferKind constant.
func (bk BufferKind) GoString() string {
	return enumhelper.DereferenceEnumData("BufferKind", bufferKindData, uint(bk)).GoName
}

// String returns the string representation of this BufferKind constant.
func (bk BufferKind) String() string {
	return enumhelper.DereferenceEnumData("BufferKind", bufferKindData, uint(bk)).Name
}

// MarshalJSON returns the JSON representation of this BufferKind constant.
func (bk BufferKind) MarshalJSON() ([]byte, error) {
	return enumhelper.MarshalEnumToJSON("BufferKind", bufferKindData, uint(bk))
}

var _ fmt.GoStringer = BufferKind(0)
var _ fmt.Stringer = BufferKind(0)
