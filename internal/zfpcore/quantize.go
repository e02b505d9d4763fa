package zfpcore

import "math"

// Exponent32 returns the base-2 exponent e such that x = m * 2^e, 1 <= m < 2,
// for a nonzero x, clamped below at the denormal floor 1-ebias (spec.md
// §4.2). For x <= 0 it returns -ebias, matching the reference behavior used
// only when called on a block's max-magnitude value. Behavior on NaN/Inf
// inputs is unspecified; callers must sanitize first (spec.md §7, §9).
func Exponent32(x float32) int {
	if x <= 0 {
		return -traitsTable[Float32].EBias
	}
	_, e := math.Frexp(float64(x))
	e-- // Frexp returns m in [0.5,1); shift to the [1,2) convention
	if e < traitsTable[Float32].MinExp {
		e = traitsTable[Float32].MinExp
	}
	return e
}

// Exponent64 is the float64 analogue of Exponent32.
func Exponent64(x float64) int {
	if x <= 0 {
		return -traitsTable[Float64].EBias
	}
	_, e := math.Frexp(x)
	e--
	if e < traitsTable[Float64].MinExp {
		e = traitsTable[Float64].MinExp
	}
	return e
}

// MaxExponent32 scans the block and returns Exponent32(max |x_i|).
func MaxExponent32(block []float32) int {
	var max float32
	for _, x := range block {
		a := x
		if a < 0 {
			a = -a
		}
		if a > max {
			max = a
		}
	}
	return Exponent32(max)
}

// MaxExponent64 is the float64 analogue of MaxExponent32.
func MaxExponent64(block []float64) int {
	var max float64
	for _, x := range block {
		a := x
		if a < 0 {
			a = -a
		}
		if a > max {
			max = a
		}
	}
	return Exponent64(max)
}

// QuantizeFactor32 returns 2^(precision-2-emax) as a bit-exact power of two.
// The factor is a float64: for emax below -97 it exceeds float32's range.
func QuantizeFactor32(emax int) float64 {
	return math.Ldexp(1, traitsTable[Float32].Precision-2-emax)
}

// QuantizeFactor64 is the float64 analogue of QuantizeFactor32.
func QuantizeFactor64(emax int) float64 {
	return math.Ldexp(1, traitsTable[Float64].Precision-2-emax)
}

// FwdCast32 quantizes fblock into iblock using the factor derived from emax,
// truncating toward zero. The factor guarantees the result fits within
// [-2^(precision-2), 2^(precision-2)), leaving two headroom bits for the
// lifting transform (spec.md §4.2, I4).
func FwdCast32(fblock []float32, emax int, iblock []int32) {
	factor := QuantizeFactor32(emax)
	for i, x := range fblock {
		iblock[i] = int32(float64(x) * float64(factor))
	}
}

// FwdCast64 is the float64 analogue of FwdCast32.
func FwdCast64(fblock []float64, emax int, iblock []int64) {
	factor := QuantizeFactor64(emax)
	for i, x := range fblock {
		iblock[i] = int64(x * factor)
	}
}
