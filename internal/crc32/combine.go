package crc32

// multModP returns a*b modulo the polynomial, with both operands and the
// result in reflected bit order (x^0 is bit 31).
func multModP(poly Polynomial, a, b uint32) uint32 {
	m := uint32(1) << 31
	var product uint32
	for {
		if (a & m) != 0 {
			product ^= b
			if (a & (m - 1)) == 0 {
				break
			}
		}
		m >>= 1
		if (b & 1) != 0 {
			b = (b >> 1) ^ uint32(poly)
		} else {
			b >>= 1
		}
	}
	return product
}

// xPow8nModP returns x^(8*n) modulo the polynomial: the operator that
// shifts a CRC past n zero bytes.
func (tab *Table) xPow8nModP(n uint64) uint32 {
	p := uint32(1) << 31
	k := 3
	for n != 0 {
		if (n & 1) != 0 {
			p = multModP(tab.poly, tab.x2n[k&31], p)
		}
		n >>= 1
		k++
	}
	return p
}

// Combine returns the CRC of A‖B given crcA = CRC(A), crcB = CRC(B), and
// lenB = len(B).  Both CRCs must have been computed from a zero initial
// value.
func Combine(tab *Table, crcA, crcB uint32, lenB uint64) uint32 {
	return multModP(tab.poly, tab.xPow8nModP(lenB), crcA) ^ crcB
}
