package radix

import "testing"

func TestBase1999RoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, 2, 17, 12345, 0xFFFF} {
		packed := ConvertBinaryTo1999(v)
		if got := Convert1999ToBinary(packed); got != v {
			t.Errorf("round trip %d -> %#x -> %d", v, packed, got)
		}
	}
}

func TestTBaseMatchesBase1999Limit(t *testing.T) {
	// Base1999 (Tm=0, Tp=all-ones) must agree with the dedicated
	// Convert*1999* functions, since it is defined as their limit case.
	for _, v := range []uint32{0, 1, 42, 1000} {
		if got := Base1999.FromBinary(v); got != ConvertBinaryTo1999(v) {
			t.Errorf("Base1999.FromBinary(%d) = %#x, want %#x", v, got, ConvertBinaryTo1999(v))
		}
	}
}

func TestTBaseAddSubRoundTrip(t *testing.T) {
	tb := Base1999
	a := tb.FromBinary(10)
	b := tb.FromBinary(3)
	sum := tb.Add(a, b)
	if got := tb.ToBinary(sum); got != 13 {
		t.Errorf("10+3 in T-base decoded = %d, want 13", got)
	}
	diff := tb.Sub(sum, b)
	if got := tb.ToBinary(diff); got != 10 {
		t.Errorf("(10+3)-3 in T-base decoded = %d, want 10", got)
	}
}
