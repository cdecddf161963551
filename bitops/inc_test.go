package bitops

import "testing"

func TestMaskedInc32(t *testing.T) {
	cases := []struct {
		val, mask, want uint32
	}{
		{0, 0, 1},
		{0b0101, 0b1010, 0b11010},
		{0b1111, 0b0101, 0b10101},
	}
	for _, c := range cases {
		if got := MaskedInc32(c.val, c.mask); got != c.want {
			t.Errorf("MaskedInc32(%b, %b) = %b, want %b", c.val, c.mask, got, c.want)
		}
	}
}

func TestMaskedIncDecRoundTrip(t *testing.T) {
	mask := uint32(0b101010)
	val := uint32(0b010100)
	inc := MaskedInc32(val, mask)
	if got := MaskedDec32(inc, mask); got != val {
		t.Errorf("MaskedDec32(MaskedInc32(%b, mask), mask) = %b, want %b", val, got, val)
	}
}

func TestMaskedInc64(t *testing.T) {
	if got := MaskedInc64(0, 0); got != 1 {
		t.Errorf("MaskedInc64(0,0) = %d, want 1", got)
	}
}
