package filter

import "testing"

func TestSolveTableMod32RecoversScalarMultiply(t *testing.T) {
	const mod = 97
	table, ok := SolveTableMod32(1, mod, []uint32{1, 5})
	if !ok {
		t.Fatalf("SolveTableMod32 failed to find a solution")
	}
	if len(table) != 1 || table[0] != 1 {
		t.Fatalf("SolveTableMod32(n=1) = %v, want [1]", table)
	}
}

func TestMulMod32WithIdentityTableMultipliesDirectly(t *testing.T) {
	const mod = 97
	got := MulMod32([]uint32{6}, []uint32{7}, []uint32{1}, mod, 1)
	want := uint32(42 % mod)
	if len(got) != 1 || got[0] != want {
		t.Fatalf("MulMod32 = %v, want [%d]", got, want)
	}
}

func TestExpMod32WithIdentityTableComputesPower(t *testing.T) {
	const mod = 97
	identity := ImpulseMod32(1)
	got := ExpMod32([]uint32{3}, 4, []uint32{1}, identity, 1, mod)
	want := uint32(81 % mod)
	if len(got) != 1 || got[0] != want {
		t.Fatalf("ExpMod32(3,4) = %v, want [%d]", got, want)
	}
}
