package checksums

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Checksum32 is a 32-bit CRC accumulator.  It stringifies to hexadecimal
// format, which is also its JSON form.
type Checksum32 uint32

// GoString returns the Go string representation of this Checksum32 value.
func (csum Checksum32) GoString() string {
	return fmt.Sprintf("Checksum32(%#08x)", uint32(csum))
}

// String returns the string representation of this Checksum32 value.
func (csum Checksum32) String() string {
	return fmt.Sprintf("%#08x", uint32(csum))
}

// Append appends the big-endian bytes of this Checksum32 value to p.
func (csum Checksum32) Append(p []byte) []byte {
	var tmp [crc32Size]byte
	binary.BigEndian.PutUint32(tmp[:], uint32(csum))
	return append(p, tmp[:]...)
}

// Parse parses a hexadecimal Checksum32, with or without a "0x" prefix.
func (csum *Checksum32) Parse(str string) error {
	str = strings.TrimPrefix(strings.TrimPrefix(str, "0x"), "0X")
	u64, err := strconv.ParseUint(str, 16, 32)
	if err != nil {
		return err
	}
	*csum = Checksum32(u64)
	return nil
}

// MarshalJSON returns the JSON representation of this Checksum32 value.
func (csum Checksum32) MarshalJSON() ([]byte, error) {
	return json.Marshal(csum.String())
}

// UnmarshalJSON parses the JSON representation of a Checksum32 value.
func (csum *Checksum32) UnmarshalJSON(raw []byte) error {
	var str string
	if err := json.Unmarshal(raw, &str); err != nil {
		return err
	}
	return csum.Parse(str)
}

var _ fmt.GoStringer = Checksum32(0)
var _ fmt.Stringer = Checksum32(0)
var _ json.Marshaler = Checksum32(0)
var _ json.Unmarshaler = (*Checksum32)(nil)
