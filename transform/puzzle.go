package transform

import "sort"

// Puzzle is one contiguous window [Start, Start+len(Vars)) of
// variables that must be covered by a butterfly transform; a nonzero
// Vars[i] names which input variable feeds slot Start+i, and a zero
// means that slot is unused. Solve coalesces and shrinks a set of
// these windows to minimize the total transform cost needed to cover
// every named variable. Grounded on struct mbin_xform_puzzle.
type Puzzle struct {
	Start int
	Vars  []int
}

// Solve repeatedly tries to move variables out of smaller windows
// into the tail of larger windows that end at the same offset, then
// drops windows left with no variables and shrinks windows whose
// lower half is empty (advancing Start past it), until no further move
// is possible. It returns
// the resulting window set sorted by Start. Grounded on
// mbin_xform_puzzle_solve.
func Solve(puzzles []*Puzzle) []*Puzzle {
	for {
		any := false
		for _, ptr := range puzzles {
			for _, other := range puzzles {
				if other == ptr || len(other.Vars) < len(ptr.Vars) {
					continue
				}
				for x := range ptr.Vars {
					if ptr.Vars[x] == 0 {
						continue
					}
					if ptr.Start+len(ptr.Vars) == other.Start+len(other.Vars) {
						slot := len(other.Vars) - len(ptr.Vars) + x
						if other.Vars[slot] == 0 {
							other.Vars[slot] = ptr.Vars[x]
							ptr.Vars[x] = 0
							any = true
						}
					}
				}
			}
		}

		kept := puzzles[:0]
		for _, ptr := range puzzles {
			for {
				x := 0
				for x != len(ptr.Vars) && ptr.Vars[x] == 0 {
					x++
				}
				if x == len(ptr.Vars) {
					ptr = nil
					break
				}
				if len(ptr.Vars) >= 2 && x >= len(ptr.Vars)/2 {
					any = true
					half := len(ptr.Vars) / 2
					ptr.Start += half
					ptr.Vars = append([]int(nil), ptr.Vars[half:]...)
					continue
				}
				break
			}
			if ptr != nil {
				kept = append(kept, ptr)
			}
		}
		puzzles = kept

		if !any {
			break
		}
	}

	sort.Slice(puzzles, func(i, j int) bool { return puzzles[i].Start < puzzles[j].Start })
	return puzzles
}

// Cost estimates the number of butterfly operations a window needs:
// 2^b * b / 2 where b is the popcount of the bitmask of slots the
// window actually uses. Grounded on the cost computation in
// mbin_xform_puzzle_print.
func Cost(p *Puzzle) int {
	mask := 0
	for x, v := range p.Vars {
		if v != 0 {
			mask |= x
		}
	}
	b := 0
	for m := mask; m != 0; m >>= 1 {
		b += m & 1
	}
	return (b << b) / 2
}
