package xorring

import "testing"

func TestAdd3RoundTrip(t *testing.T) {
	// every 2-bit slice is a trit 0, 1 or 2; 0b11 is not a trit.
	for _, a := range []uint64{0, 1, 2, 0b10_01, 0b10_10} {
		if got := Add3(a, 0); got != a {
			t.Errorf("Add3(%#b, 0) = %#b, want %#b", a, got, a)
		}
	}
}

func TestMul3DivRoundTrip(t *testing.T) {
	a := uint64(0b10_01) // trits [1,2]
	b := uint64(0b01)    // trit [1]
	prod := Mul3(a, b)
	if got := Div3(prod, b); got != a {
		t.Errorf("Div3(Mul3(a,b), b) = %#b, want %#b", got, a)
	}
}

func TestMod3BelowModulus(t *testing.T) {
	mod := uint64(0b1_01) // degree-2 modulus
	for _, v := range []uint64{0, 0b01, 0b10, 0b1_01, 0b10_10} {
		r := Mod3(v, mod)
		if r != 0 && degree3(r) >= degree3(mod) {
			t.Errorf("Mod3(%#b, %#b) = %#b not reduced below degree %d", v, mod, r, degree3(mod))
		}
	}
}

func TestQubic3ExpansesExponentsByThree(t *testing.T) {
	// a single trit at position 1 should land at position 3 (2*3=6 bits) after qubic
	in := uint64(1) << 2
	out := Qubic3(in)
	if out != (1 << 6) {
		t.Errorf("Qubic3(1<<2) = %#b, want %#b", out, uint64(1<<6))
	}
}

func TestExp3MatchesRepeatedMul(t *testing.T) {
	x := uint64(0b10_01)
	got := Exp3(x, 3)
	want := Mul3(Mul3(x, x), x)
	if got != want {
		t.Errorf("Exp3(x,3) = %#b, want %#b (matching repeated Mul3)", got, want)
	}
}

func TestExpSlow3MatchesExp3(t *testing.T) {
	x := uint64(0b01_10)
	for y := uint64(0); y < 6; y++ {
		a := ExpSlow3(x, y)
		b := Exp3(x, y)
		if a != b {
			t.Errorf("ExpSlow3(x,%d)=%#b but Exp3(x,%d)=%#b", y, a, y, b)
		}
	}
}

func TestFactorSlow3FindsDivisor(t *testing.T) {
	// a product of two odd-valued trit sequences should factor to one of them
	a := uint64(0b01_01) // [1,1]
	b := uint64(0b01)    // [1]
	x := Mul3(a, b)
	f := FactorSlow3(x)
	if f == 0 {
		t.Errorf("FactorSlow3(%#b) found no factor", x)
	}
	if Mod3(x, f) != 0 {
		t.Errorf("FactorSlow3 returned %#b which does not divide %#b", f, x)
	}
}
