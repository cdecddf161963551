package bitops

import "testing"

func refPopCount64(val uint64) int {
	n := 0
	for val != 0 {
		n += int(val & 1)
		val >>= 1
	}
	return n
}

func TestPopCount(t *testing.T) {
	for _, v := range []uint64{0, 1, 2, 3, 0xFF, 0xAAAA, 0x12345678, 0xFFFFFFFFFFFFFFFF, 0x8000000000000001} {
		want := refPopCount64(v)
		if got := int(PopCount8(uint8(v))); got != refPopCount64(uint64(uint8(v))) {
			t.Errorf("PopCount8(%#x) = %d, want %d", uint8(v), got, refPopCount64(uint64(uint8(v))))
		}
		if got := int(PopCount16(uint16(v))); got != refPopCount64(uint64(uint16(v))) {
			t.Errorf("PopCount16(%#x) = %d, want %d", uint16(v), got, refPopCount64(uint64(uint16(v))))
		}
		if got := int(PopCount32(uint32(v))); got != refPopCount64(uint64(uint32(v))) {
			t.Errorf("PopCount32(%#x) = %d, want %d", uint32(v), got, refPopCount64(uint64(uint32(v))))
		}
		if got := int(PopCount64(v)); got != want {
			t.Errorf("PopCount64(%#x) = %d, want %d", v, got, want)
		}
	}
}

func TestFindLastDigit32(t *testing.T) {
	cases := []struct {
		y    uint32
		want uint8
	}{
		{0, 0},
		{1, 0},
		{0b10, 1},
		{0b1011, 0},
		{0b1111, 0},
	}
	for _, c := range cases {
		if got := FindLastDigit32(c.y); got != c.want {
			t.Errorf("FindLastDigit32(%b) = %d, want %d", c.y, got, c.want)
		}
	}
}

func TestFindLastDigit64(t *testing.T) {
	if got := FindLastDigit64(0); got != 0 {
		t.Errorf("FindLastDigit64(0) = %d, want 0", got)
	}
	if got := FindLastDigit64(0b10111); got != 0 {
		t.Errorf("FindLastDigit64(0b10111) = %d, want 0", got)
	}
}
