package numerics

import "math"

// Sin32 generates the sine of the angle x/2^32 quarter turns, so the
// uint32 range [0, 0xFFFFFFFF] spans 0 to 90 degrees, via the
// bit-recursive half-angle construction mbin_sin_32 uses: it Gray-
// decodes x into a run of "fold the angle in half" decisions and
// applies the corresponding sqrt((1 +/- prev) / 2) half-angle formula
// bit by bit, starting from sin(45 degrees) = sqrt(0.5).
func Sin32(x uint32) float64 {
	retval := math.Sqrt(0.5)

	if x == 0x80000000 {
		return retval
	} else if x&0x80000000 != 0 {
		x ^= 0x2AAAAAAA
	} else {
		x ^= 0x55555555
	}

	for mask := uint32(1) << 31; ; {
		mask /= 2
		if mask == 0 {
			break
		}
		if x&mask != 0 {
			x ^= mask - 1
		}
	}

	for num := uint8(32); num != 0; num-- {
		if x&1 != 0 {
			retval = math.Sqrt((1.0 + retval) / 2.0)
		} else {
			retval = math.Sqrt((1.0 - retval) / 2.0)
		}
		x /= 2
	}
	return retval
}

// Asin32 inverts Sin32: given a sine value, it recovers the uint32
// angle via mbin_asin_32's bit-by-bit doubling-map search (the
// "tent map" x -> 2x^2-1 used in reverse), ignoring the sign of input.
func Asin32(input float64) uint32 {
	retval := uint32(0x7FFFFFFF)

	for m := uint32(1) << 31; m != 0; m /= 2 {
		input = input*input*2.0 - 1.0

		if input > 0 {
			retval ^= m
		}
		if retval&m != 0 {
			retval ^= m / 2
		}
	}

	if retval&1 != 0 && retval != 0xFFFFFFFF {
		retval++
	}
	return retval
}
