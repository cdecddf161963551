package transform

import (
	"math"
	"testing"
)

func TestSumDigitsR2Float64MatchesInt32(t *testing.T) {
	ints := []int32{1, 2, 3, 4, 5, 6, 7, 8}
	floats := make([]float64, len(ints))
	for i, v := range ints {
		floats[i] = float64(v)
	}
	SumDigitsR2Int32(ints, 3)
	SumDigitsR2Float64(floats, 3)
	for i := range ints {
		if float64(ints[i]) != floats[i] {
			t.Errorf("floats[%d] = %v, want %v", i, floats[i], ints[i])
		}
	}
}

func TestSumDigitsR2Int64MatchesInt32(t *testing.T) {
	ints := []int32{1, 2, 3, 4, 5, 6, 7, 8}
	longs := make([]int64, len(ints))
	for i, v := range ints {
		longs[i] = int64(v)
	}
	SumDigitsR2Int32(ints, 3)
	SumDigitsR2Int64(longs, 3)
	for i := range ints {
		if int64(ints[i]) != longs[i] {
			t.Errorf("longs[%d] = %v, want %v", i, longs[i], ints[i])
		}
	}
}

func TestSumDigitsR4ProducesFiniteOutput(t *testing.T) {
	data := make([]complex128, 16)
	for i := range data {
		data[i] = complex(float64(i+1), 0)
	}
	SumDigitsR4(data, 2)
	for i, v := range data {
		if math.IsNaN(real(v)) || math.IsNaN(imag(v)) {
			t.Errorf("data[%d] = %v is NaN", i, v)
		}
	}
}
