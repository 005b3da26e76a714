package checksums

import (
	"bytes"
	stdcrc32 "hash/crc32"
	"testing"
)

func TestDigest(t *testing.T) {
	type testRow struct {
		name   string
		kind   Kind
		expect []byte
	}

	var testData = [...]testRow{
		{"crc32", CRC32Kind, mustDecodeHex("cbf43926")},
		{"crc32c", CRC32CKind, mustDecodeHex("e3069283")},
	}

	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			h := New(row.kind)
			for _, piece := range [...]string{"1", "234", "", "56789"} {
				n, err := h.Write([]byte(piece))
				if err != nil || n != len(piece) {
					t.Fatalf("Write(%q) = (%d, %v)", piece, n, err)
				}
			}
			if actual := h.Sum([]byte{0xaa}); !bytes.Equal(actual, append([]byte{0xaa}, row.expect...)) {
				t.Errorf("expected aa%x, got %x", row.expect, actual)
			}
			h.Reset()
			if h.Sum32() != 0 {
				t.Errorf("Reset did not clear the sum")
			}
		})
	}
}

func TestDigestMatchesStdlib(t *testing.T) {
	p := randomBytes(29, 70000)
	h := New(CRC32Kind)
	ref := stdcrc32.NewIEEE()
	for len(p) > 0 {
		n := 4093
		if n > len(p) {
			n = len(p)
		}
		_, _ = h.Write(p[:n])
		_, _ = ref.Write(p[:n])
		p = p[n:]
	}
	if h.Sum32() != ref.Sum32() {
		t.Errorf("expected %#08x, got %#08x", ref.Sum32(), h.Sum32())
	}
}
