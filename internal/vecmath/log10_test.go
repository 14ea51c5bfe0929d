package vecmath

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

const tolerance = 1e-9

func TestLog10Block_MatchesMathLog10(t *testing.T) {
	t.Parallel()
	src := []float64{1, 4, 10, 100, 50.5, 1e-3, 1e6}
	dst := make([]float64, len(src))

	Log10Block(dst, src)

	for i, v := range src {
		want := math.Log10(v)
		if math.Abs(dst[i]-want) > tolerance {
			t.Errorf("Log10Block(%v) = %v, want %v", v, dst[i], want)
		}
	}
}

func TestLog10Block_KnownValues(t *testing.T) {
	t.Parallel()
	src := []float64{4.0, 100.0}
	dst := make([]float64, 2)
	Log10Block(dst, src)

	if math.Abs(dst[0]-0.602059991) > 1e-8 {
		t.Errorf("log10(4) = %v, want ~0.602059991", dst[0])
	}
	if math.Abs(dst[1]-2.0) > tolerance {
		t.Errorf("log10(100) = %v, want 2.0", dst[1])
	}
}

func TestLog10Block_EmptyInput(t *testing.T) {
	t.Parallel()
	Log10Block([]float64{}, []float64{}) // must not panic
}

func TestLog10Block_LengthMismatchPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Error("expected panic on slice length mismatch")
		}
	}()
	Log10Block(make([]float64, 2), make([]float64, 3))
}

func TestLog10Block_SentinelSemantics(t *testing.T) {
	t.Parallel()
	src := []float64{0.0, -5.0}
	dst := make([]float64, 2)
	Log10Block(dst, src)

	if !math.IsInf(dst[0], -1) {
		t.Errorf("log10(0) = %v, want -Inf", dst[0])
	}
	if !math.IsNaN(dst[1]) {
		t.Errorf("log10(-5) = %v, want NaN", dst[1])
	}
}

func TestScaleBlock(t *testing.T) {
	t.Parallel()
	dst := []float64{1, 2, 4}
	ScaleBlock(dst, 0.5)
	want := []float64{0.5, 1, 2}
	for i := range dst {
		if dst[i] != want[i] {
			t.Errorf("ScaleBlock[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

// TestLog10Block_Monotonic verifies that log10 preserves ordering on
// positive inputs, a cheap sanity property for the bulk kernel.
func TestLog10Block_Monotonic(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("a < b implies log10(a) < log10(b)", prop.ForAll(
		func(a, b float64) bool {
			if a > b {
				a, b = b, a
			}
			if b-a < 1e-6 {
				// Too close to distinguish reliably in floating point.
				return true
			}
			dst := make([]float64, 2)
			Log10Block(dst, []float64{a, b})
			return dst[0] < dst[1]
		},
		gen.Float64Range(1, 1e6),
		gen.Float64Range(1, 1e6),
	))

	properties.TestingRun(t)
}
