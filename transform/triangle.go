package transform

import "math"

// Point is a two-dimensional vector used by the triangle-wave
// transform. Unlike a regular complex number, multiplication combines
// two points by adding their triangle-wave phase angles rather than
// their Fourier phase angles, so the result stays exact for rational
// inputs instead of drifting through sines and cosines. Grounded on
// mbin_cf_t in mbin_ftt.c.
type Point struct {
	X, Y float32
}

func triangleAcos(x float32) float32 {
	x = float32(math.Abs(float64(x)))
	switch x {
	case 1:
		return 0
	case 0:
		return 0.25
	default:
		return (float32(math.Ceil(float64(x))) - x) / 4
	}
}

func triangleCos(x float32) float32 {
	x -= float32(math.Floor(float64(x)))
	switch x {
	case 0:
		return 1
	case 0.5:
		return -1
	}
	x *= 4
	switch {
	case x < 1:
		x = float32(math.Ceil(float64(x))) - x
	case x < 2:
		x = float32(math.Floor(float64(x))) - x
	case x < 3:
		x = x - float32(math.Ceil(float64(x)))
	default:
		x = x - float32(math.Floor(float64(x)))
	}
	return x
}

func triangleSin(x float32) float32 {
	return triangleCos(x + 0.75)
}

// angleAdd rotates a by the triangle-wave phase "angle", grounded on
// mbin_ftt_angleadd_cf.
func angleAdd(a Point, angle float32) Point {
	ga := float32(math.Abs(float64(a.X))) + float32(math.Abs(float64(a.Y)))
	q := boolToUint8(a.X < 0) + 2*boolToUint8(a.Y < 0)
	if ga != 0 {
		a.X /= ga
	}
	switch q {
	case 0:
		angle += triangleAcos(a.X)
	case 1:
		angle += 0.5 - triangleAcos(a.X)
	case 2:
		angle += 1 - triangleAcos(a.X)
	case 3:
		angle += 0.5 + triangleAcos(a.X)
	}
	return Point{triangleCos(angle) * ga, triangleSin(angle) * ga}
}

func boolToUint8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// multiply combines two triangle-wave vectors by adding their phase
// angles and multiplying their gains. Grounded on
// mbin_ftt_multiply_cf.
func triangleMultiply(a, b Point) Point {
	ga := float32(math.Abs(float64(a.X))) + float32(math.Abs(float64(a.Y)))
	gb := float32(math.Abs(float64(b.X))) + float32(math.Abs(float64(b.Y)))
	qa := boolToUint8(a.X < 0) + 2*boolToUint8(a.Y < 0)
	qb := boolToUint8(b.X < 0) + 2*boolToUint8(b.Y < 0)
	if ga != 0 {
		a.X /= ga
	}
	if gb != 0 {
		b.X /= gb
	}
	gr := ga * gb

	var angle float32
	switch qa {
	case 0:
		angle = triangleAcos(a.X)
	case 1:
		angle = 0.5 - triangleAcos(a.X)
	case 2:
		angle = 1 - triangleAcos(a.X)
	case 3:
		angle = 0.5 + triangleAcos(a.X)
	}
	switch qb {
	case 0:
		angle += triangleAcos(b.X)
	case 1:
		angle += 0.5 - triangleAcos(b.X)
	case 2:
		angle += 1 - triangleAcos(b.X)
	case 3:
		angle += 0.5 + triangleAcos(b.X)
	}
	return Point{triangleCos(angle) * gr, triangleSin(angle) * gr}
}

// FwdTriangle computes the forward triangle-wave transform in place,
// then reorders ptr from bit-reversed to natural order. Grounded on
// mbin_ftt_fwd_cf.
func FwdTriangle(ptr []Point, log2Size uint8) {
	max := uint32(1) << log2Size
	for step := max; step/2 != 0; {
		step /= 2
		var z uint32
		for y := uint32(0); y != max; y += 2 * step {
			angle := float32(z) / float32(max)
			for x := uint32(0); x != step; x++ {
				t0 := ptr[x+y]
				t1 := angleAdd(ptr[x+y+step], angle)
				ptr[x+y] = Point{t0.X + t1.X, t0.Y + t1.Y}
				ptr[x+y+step] = Point{t0.X - t1.X, t0.Y - t1.Y}
			}
			z = addBitreversed(z, max/4)
		}
	}
	bitreverseIndices(max, func(i, j uint32) { ptr[i], ptr[j] = ptr[j], ptr[i] })
}

// InvTriangle undoes FwdTriangle. Grounded on mbin_ftt_inv_cf.
func InvTriangle(ptr []Point, log2Size uint8) {
	max := uint32(1) << log2Size
	bitreverseIndices(max, func(i, j uint32) { ptr[i], ptr[j] = ptr[j], ptr[i] })
	for step := uint32(1); step != max; step *= 2 {
		var z uint32
		for y := uint32(0); y != max; y += 2 * step {
			angle := float32(max-z) / float32(max)
			for x := uint32(0); x != step; x++ {
				t0 := Point{ptr[x+y].X + ptr[x+y+step].X, ptr[x+y].Y + ptr[x+y+step].Y}
				t1 := Point{ptr[x+y].X - ptr[x+y+step].X, ptr[x+y].Y - ptr[x+y+step].Y}
				ptr[x+y] = t0
				ptr[x+y+step] = angleAdd(t1, angle)
			}
			z = addBitreversed(z, max/4)
		}
	}
}

// MulTriangle multiplies two transformed arrays pointwise into pc.
// Grounded on mbin_ftt_mul_cf.
func MulTriangle(pa, pb, pc []Point) {
	for x := range pa {
		pc[x] = triangleMultiply(pa[x], pb[x])
	}
}

// DiffTriangle replaces pc with its discrete first difference,
// wrapping around the end of the array; the derivative of a triangle
// wave is a square wave. Grounded on mbin_ftt_diff_cf.
func DiffTriangle(pc []Point) {
	prev := pc[len(pc)-1]
	for x := range pc {
		old := pc[x]
		pc[x] = Point{pc[x].X - prev.X, pc[x].Y - prev.Y}
		prev = old
	}
}

// IntegTriangle replaces pc with its running sum; the integral of a
// square wave is a triangle wave. Grounded on mbin_ftt_integ_cf.
func IntegTriangle(pc []Point) {
	var sum Point
	for x := range pc {
		sum = Point{sum.X + pc[x].X, sum.Y + pc[x].Y}
		pc[x] = sum
	}
}
