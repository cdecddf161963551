package eqsolve

import "github.com/hselasky/mbin/xorring"

// Op names the combining operator applied to the two sample indices
// before being passed through funcR, mirroring mbin_eq_solve_func_32's
// op switch.
type Op uint8

const (
	OpAdd Op = iota
	OpMul
	OpXor
	OpAnd
	OpOr
	OpXor2Mul
)

// Term is a single solved equation reduced to its surviving variable:
// Index packs the (t, u) monomial pair as t*size+u, and Value is the
// XOR contribution that variable carries. Grounded on the compact
// 32-bit equation records mbin_eq_solve_func_32 emits into its output
// list (bitdata holding just the index instead of a full bit vector).
type Term struct {
	Index uint32
	Value uint32
}

// SolveFunc discovers the minimal term expansion of an unknown
// bitwise function by sampling funcA/funcB/funcR over [0, size) under
// the combining rule op and solving the resulting GF(2)-linear
// system. Grounded on mbin_eq_solve_func_32.
func SolveFunc(funcA, funcB, funcR func(uint32) uint32, size uint32, op Op) ([]Term, bool) {
	mask := size - 1
	total := size * size
	words := roundWords64(total)

	var eqs []*Eq32

	for x := uint32(0); x != size; x++ {
		fx := funcB(x) & mask
		for y := x; x+y != 2*size; y++ {
			fy := funcA(y) & mask

			ptr := newEq32(words)
			switch op {
			case OpAdd:
				ptr.Value = funcR(x+y) & mask
			case OpMul:
				ptr.Value = funcR(x*y) & mask
			case OpXor:
				ptr.Value = funcR(x^y) & mask
			case OpAnd:
				ptr.Value = funcR(x&y) & mask
			case OpOr:
				ptr.Value = funcR(x|y) & mask
			case OpXor2Mul:
				ptr.Value = funcR(uint32(xorring.Mul64(uint64(x), uint64(y)))) & mask
			}

			j := uint32(0)
			for t := uint32(0); t != size; t++ {
				for u := uint32(0); u != size; u++ {
					if (fx&t) == t && (fy&u) == u {
						ptr.setBit(j)
					}
					j++
				}
			}
			eqs = append(eqs, ptr)
		}
	}

	simplified, ok := Simplify(total, eqs)
	if !ok {
		return nil, false
	}

	var terms []Term
	for _, ptr := range simplified {
		if ptr.Value == 0 {
			continue
		}
		idx := firstSetBit(ptr, total)
		if idx == total {
			return nil, false
		}
		terms = append(terms, Term{Index: idx, Value: ptr.Value})
	}
	return terms, true
}

// Func32 evaluates a solved term list against inputs a, b, grounded
// on mbin_eq_func_32.
func Func32(terms []Term, size, a, b uint32) uint32 {
	var r uint32
	for _, term := range terms {
		t := term.Index % size
		u := term.Index / size
		if (a&t) == t && (b&u) == u {
			r ^= term.Value
		}
	}
	return r & (size - 1)
}
