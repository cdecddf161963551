package convolve

// x3LogComba is the log2 size below which the recursive split
// multiply drops to classical O(n^2) multiplication, because at that
// size the recursive overhead costs more than it saves. Grounded on
// MBIN_X3_LOG2_COMBA.
const x3LogComba = 6

type x3Input struct {
	a, b float64
}

// x3MultiplyAdd is the recursive core of the three-way split multiply:
// it accumulates the product of a length-stride slice of (a,b) pairs
// into ptrLow (the low half of the result) and ptrHigh (the
// wraparound/high half), using a toggle to decide whether this call
// is on the "forward" or "inverse" side of the balanced recursion, so
// that the caller never has to run a separate forward and inverse
// transform pass. Grounded on mbin_x3_multiply_add_double.
func x3MultiplyAdd(input []x3Input, ptrLow, ptrHigh []float64, toggle bool) {
	stride := len(input)
	if stride >= (1 << x3LogComba) {
		strideh := stride / 2

		if toggle {
			for x := 0; x != strideh; x++ {
				a := ptrLow[x] + ptrLow[x+strideh]
				c := ptrHigh[x] + ptrHigh[x+strideh]
				ptrLow[x+strideh] = a
				ptrHigh[x] = a + c
			}
			x3MultiplyAdd(input[:strideh], ptrLow[:strideh], ptrLow[strideh:], true)

			for x := 0; x != strideh; x++ {
				ptrLow[x+strideh] = -ptrLow[x+strideh]
			}
			x3MultiplyAdd(input[strideh:], ptrLow[strideh:], ptrHigh[strideh:], true)

			for x := 0; x != strideh; x++ {
				a := ptrLow[x]
				b := ptrLow[x+strideh]
				c := ptrHigh[x]
				d := ptrHigh[x+strideh]
				ptrLow[x+strideh] = -a - b
				ptrHigh[x] = c + b - d
				input[x+strideh].a += input[x].a
				input[x+strideh].b += input[x].b
			}
			x3MultiplyAdd(input[strideh:], ptrLow[strideh:], ptrHigh[:strideh], false)
		} else {
			x3MultiplyAdd(input[strideh:], ptrLow[strideh:], ptrHigh[:strideh], true)

			for x := 0; x != strideh; x++ {
				a := ptrLow[x] + ptrLow[x+strideh]
				c := ptrHigh[x] + ptrHigh[x+strideh]
				ptrLow[x+strideh] = -a
				ptrHigh[x] = a + c
				input[x+strideh].a -= input[x].a
				input[x+strideh].b -= input[x].b
			}
			x3MultiplyAdd(input[strideh:], ptrLow[strideh:], ptrHigh[strideh:], false)

			for x := 0; x != strideh; x++ {
				ptrLow[x+strideh] = -ptrLow[x+strideh]
			}
			x3MultiplyAdd(input[:strideh], ptrLow[:strideh], ptrLow[strideh:], false)

			for x := 0; x != strideh; x++ {
				a := ptrLow[x]
				b := ptrLow[x+strideh]
				c := ptrHigh[x]
				d := ptrHigh[x+strideh]
				ptrLow[x+strideh] = b - a
				ptrHigh[x] = c - b - d
			}
		}
		return
	}

	for x := 0; x != stride; x++ {
		value := input[x].a
		if value == 0 {
			continue
		}
		y := 0
		for ; y != stride-x; y++ {
			ptrLow[x+y] += input[y].b * value
		}
		for ; y != stride; y++ {
			ptrHigh[x+y-stride] += input[y].b * value
		}
	}
}

// MultiplyX3Float64 multiplies two length-max float64 arrays (max a
// power of two) via the three-way split recursion, returning the low
// and high halves of the product separately rather than carrying
// between them, leaving that choice to the caller (e.g. big-integer
// multiply normalizes the halves together; polynomial multiply keeps
// them apart). Returns (nil, nil) if max is not a power of two.
// Grounded on mbin_x3_multiply_double.
func MultiplyX3Float64(a, b []float64) (low, high []float64) {
	max := len(a)
	if max&(max-1) != 0 {
		return nil, nil
	}
	input := make([]x3Input, max)
	for x := range input {
		input[x] = x3Input{a[x], b[x]}
	}
	low = make([]float64, max)
	high = make([]float64, max)
	x3MultiplyAdd(input, low, high, true)
	return low, high
}
