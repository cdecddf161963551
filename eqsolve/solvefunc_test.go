package eqsolve

import "testing"

func identity(x uint32) uint32 { return x }

func TestSolveFuncReproducesXor(t *testing.T) {
	const size = 4
	terms, ok := SolveFunc(identity, identity, identity, size, OpXor)
	if !ok {
		t.Fatalf("SolveFunc failed to solve")
	}
	for a := uint32(0); a != size; a++ {
		for b := uint32(0); b != size; b++ {
			got := Func32(terms, size, a, b)
			want := (a ^ b) & (size - 1)
			if got != want {
				t.Errorf("Func32(%d,%d) = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestSolveFuncReproducesAnd(t *testing.T) {
	const size = 4
	terms, ok := SolveFunc(identity, identity, identity, size, OpAnd)
	if !ok {
		t.Fatalf("SolveFunc failed to solve")
	}
	for a := uint32(0); a != size; a++ {
		for b := uint32(0); b != size; b++ {
			got := Func32(terms, size, a, b)
			want := (a & b) & (size - 1)
			if got != want {
				t.Errorf("Func32(%d,%d) = %d, want %d", a, b, got, want)
			}
		}
	}
}
