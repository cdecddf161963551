package transform

import "testing"

func TestGenerateNTTTableFindsValidTable(t *testing.T) {
	table, ok := GenerateNTTTable(2, 0, 4)
	if !ok {
		t.Fatalf("GenerateNTTTable found no valid wave vector")
	}
	if len(table.wave) != 16 {
		t.Fatalf("len(table.wave) = %d, want 16", len(table.wave))
	}
	if table.wave[0] != (NTTPoint{1, 0}) {
		t.Errorf("table.wave[0] = %v, want {1 0}", table.wave[0])
	}
}

func TestXformOnSizeTwoIsSumDifferenceButterfly(t *testing.T) {
	// At log2Size 1 the butterfly degenerates to a single stage whose
	// twiddle factor is wave[0] = {1, 0}, the ring's multiplicative
	// identity, so the result is exactly the classic sum/difference
	// pair: this holds regardless of which wave vector GenerateNTTTable
	// happens to find.
	table, ok := GenerateNTTTable(2, 0, 4)
	if !ok {
		t.Fatalf("GenerateNTTTable found no valid wave vector")
	}

	data := []NTTPoint{{3, 0}, {5, 0}}
	table.Xform(data, 1)

	wantLow := NTTPoint{8, 0}
	wantHigh := NTTPoint{(NTTPrime + 3 - 5) % NTTPrime, 0}
	if data[0] != wantLow {
		t.Errorf("data[0] = %v, want %v", data[0], wantLow)
	}
	if data[1] != wantHigh {
		t.Errorf("data[1] = %v, want %v", data[1], wantHigh)
	}
}

func TestXformPreservesZeroVector(t *testing.T) {
	table, ok := GenerateNTTTable(2, 0, 4)
	if !ok {
		t.Fatalf("GenerateNTTTable found no valid wave vector")
	}

	data := make([]NTTPoint, 16)
	table.Xform(data, 4)

	for i, v := range data {
		if v != (NTTPoint{0, 0}) {
			t.Errorf("data[%d] = %v, want {0 0}", i, v)
		}
	}
}
