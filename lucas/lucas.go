package lucas

// StepCountMod32 computes the period of the modular Lucas sequence
// a(n) = (2/3)a(n-1) - a(n-2) starting from {1, 1/3}, returning 0 if
// mod is divisible by 3 (the sequence has no modular inverse of 3 in
// that case). Grounded on mbin_lucas_step_count_mod_32.
func StepCountMod32(mod uint32) uint32 {
	if mod%3 == 0 {
		return 0
	}

	var a [3]uint32
	var r uint32

	a[0] = 1
	a[1] = 1
	for a[1]%3 != 0 {
		a[1] += mod
	}
	a[1] /= 3

	o0, o1 := a[0], a[1]

	for {
		a[2] = (3*mod + 2*a[1] - 3*a[0]) % mod
		for a[2]%3 != 0 {
			a[2] += mod
		}
		a[2] /= 3
		a[0] = a[1]
		a[1] = a[2]
		r++
		if a[0] == o0 && a[1] == o1 {
			break
		}
	}
	return r
}

// StepLengthSquaredMod32 computes the squared length of one step
// around the sequence's circle under modulus mod, grounded on
// mbin_lucas_step_length_squared_mod_32.
func StepLengthSquaredMod32(mod uint32) uint32 {
	if mod%3 == 0 {
		return 0
	}

	val := mod
	for val%3 != 0 {
		val++
	}

	if mod%3 == 1 {
		val = (2 * val) / 3
	} else {
		val = (val / 3) + 1
	}
	return val
}

// PiSquaredMod32 computes pi^2 reduced modulo mod, as the product of
// the squared step count and the squared step length, grounded on
// mbin_lucas_pi_squared_mod_32.
func PiSquaredMod32(mod uint32) uint32 {
	steps := StepCountMod32(mod)
	length := StepLengthSquaredMod32(mod)

	return (length * steps * steps) % mod
}
