package checksums

import (
	"fmt"

	"github.com/chronos-tachyon/assert"
	"github.com/chronos-tachyon/enumhelper"

	"github.com/chronos-tachyon/checksums/internal/crc32"
)

// Kind selects which CRC-32 variant to compute.  The variants differ only
// in their polynomial.
type Kind byte

const (
	// CRC32Kind is CRC-32 with the IEEE 802.3 polynomial, as used by
	// Ethernet, gzip, zlib, and PNG.
	CRC32Kind Kind = iota

	// CRC32CKind is CRC-32C with the Castagnoli polynomial, as used by
	// iSCSI, SCTP, and ext4.
	CRC32CKind

	numKinds
)

var kindData = []enumhelper.EnumData{
	{GoName: "CRC32Kind", Name: "crc32", Aliases: []string{"ieee", "crc-32"}},
	{GoName: "CRC32CKind", Name: "crc32c", Aliases: []string{"castagnoli", "crc-32c"}},
}

// Kinds returns every valid Kind.
func Kinds() []Kind {
	return []Kind{CRC32Kind, CRC32CKind}
}

// IsValid returns true if k is a valid Kind constant.
func (k Kind) IsValid() bool {
	return k < numKinds
}

// Polynomial returns the reflected generator polynomial for this Kind.
func (k Kind) Polynomial() uint32 {
	return uint32(k.table().Polynomial())
}

func (k Kind) table() *crc32.Table {
	switch k {
	case CRC32Kind:
		return crc32.IEEETable
	case CRC32CKind:
		return crc32.CastagnoliTable
	default:
		assert.Raisef("invalid Kind %d", uint(k))
		return nil
	}
}

// GoString returns the Go string representation of this Kind constant.
func (k Kind) GoString() string {
	return enumhelper.DereferenceEnumData("Kind", kindData, uint(k)).GoName
}

// String returns the string representation of this Kind constant.
func (k Kind) String() string {
	return enumhelper.DereferenceEnumData("Kind", kindData, uint(k)).Name
}

// MarshalJSON returns the JSON representation of this Kind constant.
func (k Kind) MarshalJSON() ([]byte, error) {
	return enumhelper.MarshalEnumToJSON("Kind", kindData, uint(k))
}

// Parse parses a string representation of a Kind constant.
func (k *Kind) Parse(str string) error {
	value, err := enumhelper.ParseEnum("Kind", kindData, str)
	*k = Kind(value)
	return err
}

var _ fmt.GoStringer = Kind(0)
var _ fmt.Stringer = Kind(0)
