package eqsolve

import "github.com/hselasky/mbin/numerics"

const invalidOffset = ^uint32(0)

// popcount32 counts the set bits of x by clearing the lowest set bit
// until none remain.
func popcount32(x uint32) uint32 {
	var c uint32
	for x != 0 {
		x &= x - 1
		c++
	}
	return c
}

// SolveTable discovers the minimal GF(2)-linear term expansion of a
// boolean truth table (xtable -> ytable), restricted to monomials of
// popcount at most lorder (or, if lorder is negative, both at most
// |lorder| and at least ltotal-|lorder|, its "higher" mirror), via
// Gauss-Jordan elimination over the sampled equations. Reuses
// numerics.Coeff32 to size each popcount class instead of re-deriving
// a binomial coefficient. Grounded on mbin_eq_solve_table_32.
func SolveTable(xtable, ytable []uint32, max, ltotal uint32, lorder int32, valmask uint32) ([]Term, bool) {
	higher := lorder < 0
	if higher {
		lorder = -lorder
	}
	if uint32(lorder) > ltotal {
		lorder = int32(ltotal)
	}

	array := make([]uint32, ltotal+1)
	for i := range array {
		array[i] = invalidOffset
	}

	total := uint32(0)
	for x := uint32(0); x <= uint32(lorder); x++ {
		if array[x] == invalidOffset {
			array[x] = total
			total += numerics.Coeff32(int32(ltotal), int32(x))
		}
		if higher && array[ltotal-x] == invalidOffset {
			array[ltotal-x] = total
			total += numerics.Coeff32(int32(ltotal), int32(ltotal-x))
		}
	}

	bitmap := make([]uint32, total)
	cursor := append([]uint32(nil), array...)

	limit := uint32(1) << ltotal
	for y := uint32(0); y != limit; y++ {
		z := popcount32(y)
		if array[z] == invalidOffset {
			continue
		}
		bitmap[cursor[z]] = y
		cursor[z]++
	}

	words := roundWords64(total)
	eqs := make([]*Eq32, max)
	for x := uint32(0); x != max; x++ {
		ptr := newEq32(words)
		for y := uint32(0); y != total; y++ {
			if (xtable[x] & bitmap[y]) == bitmap[y] {
				ptr.setBit(y)
			}
		}
		if (ytable[x] & valmask) != 0 {
			ptr.Value = 1
		}
		eqs[x] = ptr
	}

	solved, ok := Solve(total, eqs)
	if !ok {
		return nil, false
	}

	var terms []Term
	for _, ptr := range solved {
		if ptr.Value == 0 {
			continue
		}
		idx := firstSetBit(ptr, total)
		if idx == total {
			continue
		}
		terms = append(terms, Term{Index: bitmap[idx], Value: 1})
	}
	return terms, true
}
