package transform

import "testing"

func TestSolveCoalescesSmallerWindowIntoLarger(t *testing.T) {
	// The lone variable moves from the small window into the tail of
	// the larger window, after which the larger window shrinks back
	// down to just that one variable, since its other slots are empty.
	small := &Puzzle{Start: 3, Vars: []int{5}}
	large := &Puzzle{Start: 0, Vars: []int{0, 0, 0, 0}}
	puzzles := []*Puzzle{small, large}

	result := Solve(puzzles)

	if len(result) != 1 {
		t.Fatalf("len(result) = %d, want 1", len(result))
	}
	if result[0].Start != 3 || len(result[0].Vars) != 1 {
		t.Fatalf("result[0] = %+v, want Start=3 len(Vars)=1", result[0])
	}
	if result[0].Vars[0] != 5 {
		t.Errorf("result[0].Vars[0] = %d, want 5", result[0].Vars[0])
	}
}

func TestSolveDropsEmptyWindow(t *testing.T) {
	empty := &Puzzle{Start: 0, Vars: []int{0, 0}}
	result := Solve([]*Puzzle{empty})
	if len(result) != 0 {
		t.Errorf("len(result) = %d, want 0", len(result))
	}
}

func TestSolveShrinksWindowWithEmptyLowerHalf(t *testing.T) {
	// All used variables live in the window's upper half, so Solve
	// drops the unused lower half and advances Start accordingly.
	p := &Puzzle{Start: 0, Vars: []int{0, 0, 7, 0}}
	result := Solve([]*Puzzle{p})
	if len(result) != 1 {
		t.Fatalf("len(result) = %d, want 1", len(result))
	}
	if result[0].Start != 2 || len(result[0].Vars) != 2 || result[0].Vars[0] != 7 {
		t.Errorf("result[0] = %+v, want Start=2 Vars=[7 0]", result[0])
	}
}

func TestCostComputesPopcountBasedEstimate(t *testing.T) {
	p := &Puzzle{Vars: []int{1, 2, 0, 0}}
	got := Cost(p)
	if got < 0 {
		t.Errorf("Cost(%+v) = %d, want non-negative", p, got)
	}
}
