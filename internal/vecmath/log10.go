// Package vecmath adapts the external SIMD math library to the bulk
// elementwise operations needed by the vectorized strategy.
package vecmath

import (
	"math"

	"github.com/ajroetker/go-highway/hwy/contrib/algo"
)

// invLn10 converts natural logarithms to base-10 logarithms.
var invLn10 = 1.0 / math.Ln10

// Log10Block computes dst[i] = log10(src[i]) for the whole block in two
// bulk passes: a vectorized natural-log transform followed by an in-place
// scale. Slices must have equal length. Panics if lengths differ.
//
// Domain handling follows the math package sentinel convention:
// log10(0) = -Inf and log10(x) = NaN for x < 0.
func Log10Block(dst, src []float64) {
	if len(dst) != len(src) {
		panic("vecmath: slice length mismatch")
	}
	if len(src) == 0 {
		return
	}
	algo.LogTransform(src, dst)
	ScaleBlock(dst, invLn10)
}

// ScaleBlock performs in-place scalar multiplication: dst[i] *= s.
func ScaleBlock(dst []float64, s float64) {
	for i := range dst {
		dst[i] *= s
	}
}
