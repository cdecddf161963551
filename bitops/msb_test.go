package bitops

import "testing"

func TestMSB32(t *testing.T) {
	cases := []struct {
		val, want uint32
	}{
		{0, 0},
		{1, 1},
		{0b1011, 0b1000},
		{0xFFFFFFFF, 1 << 31},
		{0x00010000, 1 << 16},
	}
	for _, c := range cases {
		if got := MSB32(c.val); got != c.want {
			t.Errorf("MSB32(%#x) = %#x, want %#x", c.val, got, c.want)
		}
	}
}

func TestMSB64(t *testing.T) {
	if got := MSB64(0); got != 0 {
		t.Errorf("MSB64(0) = %#x, want 0", got)
	}
	if got := MSB64(1 << 40); got != 1<<40 {
		t.Errorf("MSB64(1<<40) = %#x, want %#x", got, uint64(1)<<40)
	}
	if got := MSB64(0xFFFFFFFFFFFFFFFF); got != 1<<63 {
		t.Errorf("MSB64(max) = %#x, want %#x", got, uint64(1)<<63)
	}
}

func TestLSB32(t *testing.T) {
	cases := []struct {
		val, want uint32
	}{
		{0, 0},
		{0b1100, 0b0100},
		{0b1000, 0b1000},
	}
	for _, c := range cases {
		if got := LSB32(c.val); got != c.want {
			t.Errorf("LSB32(%#b) = %#b, want %#b", c.val, got, c.want)
		}
	}
}
