package crc32

// Polynomial is a reflected CRC-32 generator polynomial.
type Polynomial uint32

const (
	// IEEE is the polynomial used by Ethernet, gzip, zlib, and PNG.
	IEEE Polynomial = 0xedb88320

	// Castagnoli is the polynomial used by iSCSI, SCTP, ext4, and Btrfs.
	Castagnoli Polynomial = 0x82f63b78
)

type basicTable [256]uint32

type slicingTable [8]basicTable

// Table holds the precomputed state for one Polynomial: a slicing-by-8
// lookup table for the portable engine, and the powers x^(2^k) mod P used
// by Combine.
type Table struct {
	poly    Polynomial
	slicing slicingTable
	x2n     [32]uint32
}

// IEEETable and CastagnoliTable are built at package init.
var (
	IEEETable       = MakeTable(IEEE)
	CastagnoliTable = MakeTable(Castagnoli)
)

// TableFor returns the shared Table for poly, building a new one for
// polynomials other than IEEE and Castagnoli.
func TableFor(poly Polynomial) *Table {
	switch poly {
	case IEEE:
		return IEEETable
	case Castagnoli:
		return CastagnoliTable
	default:
		return MakeTable(poly)
	}
}

// MakeTable builds a Table for poly.
func MakeTable(poly Polynomial) *Table {
	tab := &Table{poly: poly}
	for i := uint32(0); i < 256; i++ {
		sum := i
		for j := 0; j < 8; j++ {
			if (sum & 1) == 1 {
				sum = (sum >> 1) ^ uint32(poly)
			} else {
				sum >>= 1
			}
		}
		tab.slicing[0][i] = sum
	}
	for i := uint32(0); i < 256; i++ {
		sum := tab.slicing[0][i]
		for j := 1; j < 8; j++ {
			sum = tab.slicing[0][sum&0xff] ^ (sum >> 8)
			tab.slicing[j][i] = sum
		}
	}

	// x^1 in reflected form is bit 30.
	tab.x2n[0] = 1 << 30
	for k := 1; k < len(tab.x2n); k++ {
		tab.x2n[k] = multModP(poly, tab.x2n[k-1], tab.x2n[k-1])
	}
	return tab
}

// Polynomial returns the polynomial this Table was built for.
func (tab *Table) Polynomial() Polynomial {
	return tab.poly
}
