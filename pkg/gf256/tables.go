package gf256

import "sync"

// GF(256) arithmetic in polynomial representation, with multiplication
// and division reduced modulo x^8 + x^4 + x^3 + x^2 + 1 (0x11D) and made
// O(1) via discrete-log tables over the generator x.

const (
	// Reduction polynomial x^8 + x^4 + x^3 + x^2 + 1 with the x^8 term
	// dropped, since reduction only ever applies to an 8-bit value.
	reductionPoly = 0x1D

	// Order of the multiplicative group: every nonzero element is a
	// power of x with exponent in 0..254.
	groupOrder = 255
)

// tables holds the exp, log and inv lookup tables. exp[i] is x^i for
// i in 0..254, with exp[255] = exp[0] so that unreduced exponent sums
// landing exactly on 255 stay in range. log and inv are undefined at
// index 0 and must not be read there.
type tables struct {
	exp [256]byte
	log [256]byte
	inv [256]byte
}

var (
	tablesOnce  sync.Once
	fieldTables tables
)

// mask replicates the least significant bit of b to every other bit.
func mask(b byte) byte {
	return -(b & 1)
}

// xtimes multiplies a polynomial by x and reduces the result modulo
// the reduction polynomial.
func xtimes(p byte) byte {
	return (p << 1) ^ (mask(p>>7) & reductionPoly)
}

// getTables returns the shared lookup tables, building them on first
// use. The sync.Once guard runs the construction at most once and
// establishes a happens-before edge between it and every read, so
// callers never observe a partially populated table. After the first
// call, reads are synchronization-free.
func getTables() *tables {
	tablesOnce.Do(func() {
		// x has multiplicative order 255 under this polynomial, so
		// repeated multiplication by x walks every nonzero byte
		// exactly once before returning to 1.
		v := byte(1)
		for power := 0; power < groupOrder; power++ {
			fieldTables.exp[power] = v
			fieldTables.log[v] = byte(power)
			v = xtimes(v)
		}
		fieldTables.exp[groupOrder] = fieldTables.exp[0]

		// inv[v] = x^(255 - log(v)), since x^(log(v) + 255 - log(v))
		// = x^255 = 1. The mod handles v == 1, whose log is 0.
		for x := 1; x < 256; x++ {
			l := fieldTables.log[x]
			var nl byte
			if l != 0 {
				nl = groupOrder - l
			}
			fieldTables.inv[x] = fieldTables.exp[nl]
		}
	})
	return &fieldTables
}
