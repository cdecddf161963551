package lucas

import "testing"

func TestStepCountModZeroOnMultipleOfThree(t *testing.T) {
	if got := StepCountMod32(9); got != 0 {
		t.Errorf("StepCountMod32(9) = %d, want 0", got)
	}
	if got := StepLengthSquaredMod32(9); got != 0 {
		t.Errorf("StepLengthSquaredMod32(9) = %d, want 0", got)
	}
}

func TestStepCountModTerminates(t *testing.T) {
	for _, mod := range []uint32{5, 7, 11, 13, 17, 100003} {
		got := StepCountMod32(mod)
		if got == 0 {
			t.Errorf("StepCountMod32(%d) = 0, want nonzero period", mod)
		}
	}
}

func TestPiSquaredModReduced(t *testing.T) {
	for _, mod := range []uint32{5, 7, 11, 13} {
		got := PiSquaredMod32(mod)
		if got >= mod {
			t.Errorf("PiSquaredMod32(%d) = %d, not reduced", mod, got)
		}
	}
}
