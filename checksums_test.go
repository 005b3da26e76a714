package checksums

import (
	"errors"
	stdcrc32 "hash/crc32"
	"strconv"
	"sync"
	"testing"
	"unsafe"
)

var equivalenceLengths = [...]int{0, 1, 3, 15, 16, 17, 1023, 1024, 1<<20 + 7}

func TestKnownVectors(t *testing.T) {
	type testRow struct {
		name   string
		fn     func(Buffer, int, int, uint32) (uint32, error)
		input  string
		expect uint32
	}

	var testData = [...]testRow{
		{"crc32-check", CRC32, "123456789", 0xcbf43926},
		{"crc32c-check", CRC32C, "123456789", 0xe3069283},
		{"crc32-empty", CRC32, "", 0},
		{"crc32c-empty", CRC32C, "", 0},
		{"crc32-fox", CRC32, "The quick brown fox jumps over the lazy dog", 0x414fa339},
		{"crc32c-fox", CRC32C, "The quick brown fox jumps over the lazy dog", 0x22620404},
	}

	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			p := []byte(row.input)
			actual, err := row.fn(Heap(p), 0, len(p), 0)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if actual != row.expect {
				t.Errorf("expected %#08x, got %#08x", row.expect, actual)
			}
		})
	}
}

func TestOffsetWithinBuffer(t *testing.T) {
	p := []byte("xx123456789yyy")
	actual, err := CRC32C(Heap(p), 2, 9, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if expect := uint32(0xe3069283); actual != expect {
		t.Errorf("expected %#08x, got %#08x", expect, actual)
	}
}

func TestRangeRejection(t *testing.T) {
	type testRow struct {
		name   string
		size   int
		offset int
		length int
	}

	var testData = [...]testRow{
		{"past-end", 16, 8, 9},
		{"offset-past-end", 16, 17, 0},
		{"negative-offset", 16, -1, 4},
		{"negative-length", 16, 0, -1},
		{"overflow", 16, 8, int(^uint(0) >> 1)},
		{"empty-buffer", 0, 0, 1},
	}

	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			buf := Heap(make([]byte, row.size))
			for _, kind := range Kinds() {
				_, err := Default().Compute(kind, buf, row.offset, row.length, 0)
				if !errors.Is(err, ErrInvalidRange) {
					t.Errorf("%v: expected ErrInvalidRange, got %v", kind, err)
				}
				var rangeErr RangeError
				if !errors.As(err, &rangeErr) {
					t.Fatalf("%v: expected RangeError, got %T", kind, err)
				}
				if rangeErr.Offset != row.offset || rangeErr.Length != row.length || rangeErr.Size != row.size {
					t.Errorf("%v: wrong fields in %+v", kind, rangeErr)
				}
			}
		})
	}
}

func TestRangeEdgeAccepted(t *testing.T) {
	buf := Heap(make([]byte, 16))
	for _, r := range [...][2]int{{0, 16}, {16, 0}, {0, 0}, {15, 1}} {
		if _, err := CRC32(buf, r[0], r[1], 0); err != nil {
			t.Errorf("offset %d length %d: unexpected error: %v", r[0], r[1], err)
		}
	}
}

func TestEmptyIsIdentity(t *testing.T) {
	p := []byte("abc")
	for _, kind := range Kinds() {
		for engine, d := range dispatchersUnderTest(kind) {
			for _, seed := range [...]uint32{0, 1, 0x12345678, 0xffffffff} {
				actual, err := d.Compute(kind, Heap(p), 1, 0, seed)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if actual != seed {
					t.Errorf("%v/%v: expected %#08x, got %#08x", kind, engine, seed, actual)
				}
			}
		}
	}
}

func TestEngineEquivalence(t *testing.T) {
	oracles := [numKinds]*stdcrc32.Table{
		CRC32Kind:  stdcrc32.IEEETable,
		CRC32CKind: stdcrc32.MakeTable(stdcrc32.Castagnoli),
	}
	seeds := [...]uint32{0, 0xffffffff, 0x9e3779b9}
	for _, kind := range Kinds() {
		dispatchers := dispatchersUnderTest(kind)
		portable := NewDispatcher(WithEngine(PortableEngine))
		for _, length := range equivalenceLengths {
			p := randomBytes(int64(length)+1, length)
			for _, seed := range seeds {
				expect := portable.Update(kind, seed, p)
				if oracle := stdcrc32.Update(seed, oracles[kind], p); oracle != expect {
					t.Errorf("%v/portable: length %d: expected %#08x, got %#08x", kind, length, oracle, expect)
				}
				for engine, d := range dispatchers {
					if actual := d.Update(kind, seed, p); actual != expect {
						t.Errorf("%v/%v: length %d seed %#08x: expected %#08x, got %#08x", kind, engine, length, seed, expect, actual)
					}
				}
			}
		}
	}
}

func TestChunkInvariance(t *testing.T) {
	p := randomBytes(3, 5000)
	for _, kind := range Kinds() {
		for engine, d := range dispatchersUnderTest(kind) {
			expect := d.Update(kind, 0, p)
			for _, split := range [...]int{0, 1, 7, 64, 504, 1024, 4999, 5000} {
				first, err := d.Compute(kind, Heap(p), 0, split, 0)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				actual, err := d.Compute(kind, Heap(p), split, len(p)-split, first)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if actual != expect {
					t.Errorf("%v/%v: split %d: expected %#08x, got %#08x", kind, engine, split, expect, actual)
				}
			}
		}
	}
}

func TestHeapAndDirectAgree(t *testing.T) {
	p := randomBytes(11, 4096)
	heap := Heap(p)
	direct := Direct(unsafe.Pointer(&p[0]), len(p))
	if direct.Kind() != DirectBuffer || heap.Kind() != HeapBuffer {
		t.Fatalf("wrong buffer kinds: %v, %v", heap.Kind(), direct.Kind())
	}
	if direct.Size() != heap.Size() {
		t.Fatalf("size mismatch: %d vs %d", heap.Size(), direct.Size())
	}
	for _, fn := range [...]func(Buffer, int, int, uint32) (uint32, error){CRC32, CRC32C} {
		a, errA := fn(heap, 100, 3000, 0x1234)
		b, errB := fn(direct, 100, 3000, 0x1234)
		c, errC := fn(direct, 100, 3000, 0x1234)
		if errA != nil || errB != nil || errC != nil {
			t.Fatalf("unexpected errors: %v, %v, %v", errA, errB, errC)
		}
		if a != b || b != c {
			t.Errorf("results differ: heap %#08x, direct %#08x, direct again %#08x", a, b, c)
		}
	}
}

func TestDirectEmpty(t *testing.T) {
	buf := Direct(nil, 0)
	actual, err := CRC32(buf, 0, 0, 42)
	if err != nil || actual != 42 {
		t.Errorf("expected (42, nil), got (%d, %v)", actual, err)
	}
	if _, err := CRC32(buf, 0, 1, 0); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
}

func TestConcurrentUse(t *testing.T) {
	p := randomBytes(17, 100000)
	expect := [numKinds]uint32{
		CRC32Kind:  Checksum(CRC32Kind, p),
		CRC32CKind: Checksum(CRC32CKind, p),
	}

	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			kind := Kinds()[i%2]
			for j := 0; j < 10; j++ {
				if actual := Checksum(kind, p); actual != expect[kind] {
					errs <- kind.String()
					return
				}
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for kind := range errs {
		t.Errorf("%s: concurrent result differs", kind)
	}
}

func TestCombine(t *testing.T) {
	p := randomBytes(23, 10000)
	for _, kind := range Kinds() {
		expect := Checksum(kind, p)
		for _, split := range [...]int{0, 1, 4096, 9999, 10000} {
			a := Checksum(kind, p[:split])
			b := Checksum(kind, p[split:])
			if actual := Combine(kind, a, b, int64(len(p)-split)); actual != expect {
				t.Errorf("%v: split %d: expected %#08x, got %#08x", kind, split, expect, actual)
			}
		}
	}
}

func BenchmarkChecksum(b *testing.B) {
	for _, kind := range Kinds() {
		for engine, d := range dispatchersUnderTest(kind) {
			for _, size := range [...]int{16, 1024, 1 << 20} {
				p := randomBytes(1, size)
				b.Run(kind.String()+"/"+engine.String()+"/"+strconv.Itoa(size), func(b *testing.B) {
					b.SetBytes(int64(size))
					for n := 0; n < b.N; n++ {
						_ = d.Update(kind, 0, p)
					}
				})
			}
		}
	}
}
