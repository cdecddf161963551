package bitops

import "testing"

func TestPutGetBits32RoundTrip(t *testing.T) {
	buf := make([]uint32, 4)
	var off uint32

	values := []uint32{0x5, 0x3FF, 0x1, 0xFFFFFFFF, 0x0}
	widths := []uint32{3, 10, 1, 32, 5}

	for i := range values {
		PutBits32(buf, &off, widths[i], values[i])
	}

	off = 0
	for i := range values {
		got := GetBits32(buf, &off, widths[i])
		want := values[i]
		if widths[i] != 32 {
			want &= (1 << widths[i]) - 1
		}
		if got != want {
			t.Errorf("field %d: got %#x, want %#x", i, got, want)
		}
	}
}

func TestPutGetRevBits32RoundTrip(t *testing.T) {
	buf := make([]uint32, 4)
	off := uint32(96)

	values := []uint32{0x7, 0x15, 0x1FF}
	widths := []uint32{3, 6, 9}

	for i := range values {
		PutRevBits32(buf, &off, widths[i], values[i])
	}

	// GetRevBits32 drains in the reverse order PutRevBits32 filled in.
	final := off
	for i := len(values) - 1; i >= 0; i-- {
		got := GetRevBits32(buf, &final, widths[i])
		want := values[i] & ((1 << widths[i]) - 1)
		if got != want {
			t.Errorf("field %d: got %#x, want %#x", i, got, want)
		}
	}
}
