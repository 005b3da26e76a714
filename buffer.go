package checksums

import (
	"unsafe"

	"github.com/chronos-tachyon/assert"
)

// Buffer is a read-only view of contiguous bytes owned by the caller.  It
// never copies, retains, or frees the memory it refers to; the caller must
// keep the memory alive and unmodified while a computation reads it.
//
// Heap and direct buffers differ only in how the memory was obtained.  Both
// are checksummed by the same code.
type Buffer struct {
	kind BufferKind
	data []byte
}

// Heap returns a Buffer over p.
func Heap(p []byte) Buffer {
	return Buffer{kind: HeapBuffer, data: p}
}

// Direct returns a Buffer over size bytes starting at ptr.  The memory must
// not be managed by the Go garbage collector in a way that could move or
// free it during use; typical sources are unix.Mmap and memory pinned by a
// foreign runtime.
func Direct(ptr unsafe.Pointer, size int) Buffer {
	assert.Assertf(size >= 0, "negative Direct buffer size %d", size)
	if size == 0 {
		return Buffer{kind: DirectBuffer}
	}
	assert.Assert(ptr != nil, "nil pointer for non-empty Direct buffer")
	return Buffer{kind: DirectBuffer, data: unsafe.Slice((*byte)(ptr), size)}
}

// Kind returns where the memory behind this Buffer came from.
func (buf Buffer) Kind() BufferKind {
	return buf.kind
}

// Size returns the number of bytes in this Buffer.
func (buf Buffer) Size() int {
	return len(buf.data)
}

// Slice returns the length bytes starting at offset, or a RangeError if
// that range does not lie entirely within the Buffer.  No byte is read.
func (buf Buffer) Slice(offset, length int) ([]byte, error) {
	size := len(buf.data)
	if offset < 0 || length < 0 || offset > size || length > size-offset {
		return nil, RangeError{Offset: offset, Length: length, Size: size}
	}
	end := offset + length
	return buf.data[offset:end:end], nil
}
