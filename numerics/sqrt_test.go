package numerics

import (
	"testing"

	"github.com/hselasky/mbin/floats"
)

func TestSqrt64PerfectSquares(t *testing.T) {
	for n := uint64(0); n != 200; n++ {
		got := Sqrt64(n * n)
		if uint64(got) != n {
			t.Errorf("Sqrt64(%d) = %d, want %d", n*n, got, n)
		}
	}
}

func TestSqrt64FloorsNonSquares(t *testing.T) {
	for _, z := range []uint64{2, 10, 99, 1000, 123456789} {
		r := Sqrt64(z)
		if uint64(r)*uint64(r) > z {
			t.Errorf("Sqrt64(%d) = %d overshoots: %d*%d > %d", z, r, r, r, z)
		}
		next := uint64(r) + 1
		if next*next <= z {
			t.Errorf("Sqrt64(%d) = %d undershoots: (%d+1)^2 <= %d", z, r, r, z)
		}
	}
}

func TestSqrtGray64IsFloorInverseOfSquareGray64(t *testing.T) {
	for _, z := range []uint64{0, 1, 2, 3, 4, 15, 16, 17, 1000000, 1<<40 + 7} {
		got := SqrtGray64(z)
		// want is the largest n with SquareGray64(n) <= z.
		lo, hi := uint64(0), uint64(1)<<32
		for hi-lo > 1 {
			mid := (lo + hi) / 2
			if SquareGray64(uint32(mid)) <= z {
				lo = mid
			} else {
				hi = mid
			}
		}
		want := uint32(lo)
		if got != want {
			t.Errorf("SqrtGray64(%d) = %d, want %d (largest n with SquareGray64(n) <= %d)", z, got, want, z)
		}
	}
}

func TestSquareGray64InvertsSqrtGray64(t *testing.T) {
	for n := uint32(0); n != 300; n++ {
		sq := SquareGray64(n)
		back := SqrtGray64(sq)
		if back != n {
			t.Errorf("SqrtGray64(SquareGray64(%d)) = %d", n, back)
		}
	}
}

func TestSqrtOdd32RecoversRoot(t *testing.T) {
	for _, r := range []uint32{1, 3, 5, 7, 9, 11, 13} {
		sq := r * r
		if sq&7 != 1 {
			t.Fatalf("test fixture error: %d^2 & 7 != 1", r)
		}
		got := SqrtOdd32(sq)
		// the root returned is the one congruent to 1 mod 4.
		want := r
		if r&3 == 3 {
			want = -r
		}
		if got != want {
			t.Errorf("SqrtOdd32(%d) = %d, want %d", sq, got, want)
		}
	}
}

func TestSqrtAddMatchesDirectSum(t *testing.T) {
	a, b := uint64(9), uint64(16)
	got := SqrtAdd64(a, b)
	want := uint64(3+4) * uint64(3+4)
	if got != want {
		t.Errorf("SqrtAdd64(9,16) = %d, want %d", got, want)
	}
}

func TestSqrtMultiAddScalesRoot(t *testing.T) {
	base := uint64(25)
	got := SqrtMultiAdd64(base, 3)
	want := uint64(5*3) * uint64(5*3)
	if got != want {
		t.Errorf("SqrtMultiAdd64(25,3) = %d, want %d", got, want)
	}
}

func TestR2SqrtInvUndoesR2SqrtFwd(t *testing.T) {
	// R2SqrtFwd/R2SqrtInv only round-trip for values already in the
	// [0, 2] range R2SqrtInv clamps to.
	data := []float64{0.5, 1, 1.5, 2}
	orig := append([]float64(nil), data...)

	R2SqrtFwd(data, 2)
	R2SqrtInv(data, 2)

	for i := range data {
		if !floats.EqualWithinAbs(data[i], orig[i], 1e-9) {
			t.Errorf("data[%d] = %v, want %v", i, data[i], orig[i])
		}
	}
}
