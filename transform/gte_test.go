package transform

import "testing"

func TestForwardInverseGteRoundTrips(t *testing.T) {
	data := []int32{1, 2, 3, 4, 5, 6, 7, 8}
	orig := append([]int32(nil), data...)

	ForwardGte32(data, 3)
	InverseGte32(data, 3)

	for i := range data {
		if data[i] != orig[i] {
			t.Errorf("data[%d] = %d, want %d", i, data[i], orig[i])
		}
	}
}

func TestForwardGteIsPrefixSum(t *testing.T) {
	data := []int32{1, 1, 1, 1, 1, 1, 1, 1}
	ForwardGte32(data, 3)
	for i, v := range data {
		if int(v) != i+1 {
			t.Errorf("data[%d] = %d, want %d", i, v, i+1)
		}
	}
}

func TestForwardInverseGteMaskRoundTrips(t *testing.T) {
	data := []int32{1, 2, 3, 4, 5, 6, 7, 8}
	orig := append([]int32(nil), data...)

	ForwardGteMask32(data, 3)
	InverseGteMask32(data, 3)

	for i := range data {
		if data[i] != orig[i] {
			t.Errorf("data[%d] = %d, want %d", i, data[i], orig[i])
		}
	}
}
