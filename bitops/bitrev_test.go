package bitops

import "testing"

func TestBitRevInvolution(t *testing.T) {
	vals8 := []uint8{0, 1, 0xAA, 0x55, 0xFF}
	for _, v := range vals8 {
		if got := BitRev8(BitRev8(v)); got != v {
			t.Errorf("BitRev8(BitRev8(%#x)) = %#x, want %#x", v, got, v)
		}
	}
	if got := BitRev32(1); got != 1<<31 {
		t.Errorf("BitRev32(1) = %#x, want %#x", got, uint32(1)<<31)
	}
	if got := BitRev64(1); got != 1<<63 {
		t.Errorf("BitRev64(1) = %#x, want %#x", got, uint64(1)<<63)
	}
	for _, v := range []uint32{0, 1, 0x12345678, 0xFFFFFFFF} {
		if got := BitRev32(BitRev32(v)); got != v {
			t.Errorf("BitRev32(BitRev32(%#x)) = %#x, want %#x", v, got, v)
		}
	}
	for _, v := range []uint64{0, 1, 0x0123456789ABCDEF, 0xFFFFFFFFFFFFFFFF} {
		if got := BitRev64(BitRev64(v)); got != v {
			t.Errorf("BitRev64(BitRev64(%#x)) = %#x, want %#x", v, got, v)
		}
	}
}

func TestBitRev16(t *testing.T) {
	if got := BitRev16(1); got != 1<<15 {
		t.Errorf("BitRev16(1) = %#x, want %#x", got, uint16(1)<<15)
	}
}
