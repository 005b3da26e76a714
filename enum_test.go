package checksums

import (
	"encoding/json"
	"testing"
)

func TestParseEngine(t *testing.T) {
	type testRow struct {
		input  string
		expect Engine
	}

	var testData = [...]testRow{
		{"auto", AutoEngine},
		{"default", AutoEngine},
		{"portable", PortableEngine},
		{"generic", PortableEngine},
		{"sse42", SSE42Engine},
		{"clmul", CLMULEngine},
		{"armv8-crc", ARMv8Engine},
		{"vx", VXEngine},
		{"vpmsum", VPMSUMEngine},
	}

	for _, row := range testData {
		t.Run(row.input, func(t *testing.T) {
			var actual Engine
			if err := actual.Parse(row.input); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if actual != row.expect {
				t.Errorf("expected %#v, got %#v", row.expect, actual)
			}
		})
	}

	var e Engine
	if err := e.Parse("quantum"); err == nil {
		t.Errorf("expected error for unknown engine")
	}
}

func TestParseKind(t *testing.T) {
	for input, expect := range map[string]Kind{
		"crc32":      CRC32Kind,
		"ieee":       CRC32Kind,
		"crc32c":     CRC32CKind,
		"castagnoli": CRC32CKind,
	} {
		var actual Kind
		if err := actual.Parse(input); err != nil {
			t.Errorf("%q: Parse failed: %v", input, err)
			continue
		}
		if actual != expect {
			t.Errorf("%q: expected %#v, got %#v", input, expect, actual)
		}
	}
}

func TestKindPolynomial(t *testing.T) {
	if actual := CRC32Kind.Polynomial(); actual != 0xedb88320 {
		t.Errorf("crc32: got %#08x", actual)
	}
	if actual := CRC32CKind.Polynomial(); actual != 0x82f63b78 {
		t.Errorf("crc32c: got %#08x", actual)
	}
}

func TestChecksum32JSON(t *testing.T) {
	raw, err := json.Marshal(Checksum32(0xe3069283))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(raw) != `"0xe3069283"` {
		t.Errorf("unexpected JSON %s", raw)
	}
	var csum Checksum32
	if err := json.Unmarshal(raw, &csum); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if csum != 0xe3069283 {
		t.Errorf("expected 0xe3069283, got %v", csum)
	}
}
