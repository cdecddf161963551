package transform

import (
	"testing"

	"github.com/hselasky/mbin/floats"
)

func TestFwdInvHPTRoundTrips(t *testing.T) {
	data := []HPTPair{{1, 0}, {2, 1}, {-1, 3}, {0.5, -0.5}, {4, 2}, {-2, -1}, {1, 1}, {0, 0}}
	orig := append([]HPTPair(nil), data...)

	FwdHPT(data, 3)
	InvHPT(data, 3)

	for i := range data {
		if !floats.EqualWithinAbs(data[i].R0, orig[i].R0, 1e-6) || !floats.EqualWithinAbs(data[i].R1, orig[i].R1, 1e-6) {
			t.Errorf("data[%d] = %v, want %v", i, data[i], orig[i])
		}
	}
}

func TestMulHPTFwdMatchesRingFormula(t *testing.T) {
	a := HPTPair{2, 3}
	b := HPTPair{1, 4}
	got := MulHPTFwd(a, b)
	want := HPTPair{a.R0*b.R0 - 3*a.R1*b.R1, a.R0*b.R1 + a.R1*b.R0}
	if got != want {
		t.Errorf("MulHPTFwd(%v, %v) = %v, want %v", a, b, got, want)
	}
}
