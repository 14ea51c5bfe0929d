package strategy

import (
	"context"

	"github.com/abray/logbench/internal/vecmath"
)

// AppendLoop iterates the sample set in order and appends each transformed
// element to a growing output slice. The output is deliberately created
// with zero capacity so the measurement includes the incremental growth
// cost of naive accumulation.
type AppendLoop struct{}

// Name returns the strategy identifier.
func (AppendLoop) Name() string { return "append-loop" }

// Apply computes fn over samples by appending to an initially empty slice.
func (AppendLoop) Apply(ctx context.Context, samples []float64, fn Transform) ([]float64, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}
	out := []float64{}
	for _, v := range samples {
		out = append(out, fn(v))
	}
	return out, nil
}

// PreallocLoop constructs the output in a single pass over a preallocated,
// index-assigned slice. This is the closest Go analog of building the
// whole sequence in one expression.
type PreallocLoop struct{}

// Name returns the strategy identifier.
func (PreallocLoop) Name() string { return "prealloc-loop" }

// Apply computes fn over samples into a preallocated output slice.
func (PreallocLoop) Apply(ctx context.Context, samples []float64, fn Transform) ([]float64, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}
	out := make([]float64, len(samples))
	for i, v := range samples {
		out[i] = fn(v)
	}
	return out, nil
}

// MapFunc applies the transform through a generic higher-order Map helper,
// materializing the result eagerly.
type MapFunc struct{}

// Name returns the strategy identifier.
func (MapFunc) Name() string { return "map-func" }

// Apply computes fn over samples via the generic Map helper.
func (MapFunc) Apply(ctx context.Context, samples []float64, fn Transform) ([]float64, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}
	return Map(samples, fn), nil
}

// Map applies fn to every element of in and returns the materialized
// result. It is the generic mapping primitive used by the map-func
// strategy; the indirection through a function parameter is the point
// being measured.
func Map[T, U any](in []T, fn func(T) U) []U {
	out := make([]U, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

// Vectorized packs the sample set and invokes a single bulk elementwise
// logarithm over the whole array, delegating to the external SIMD kernel.
// The per-element transform parameter is intentionally unused: the bulk
// kernel computes the same mathematical mapping in one call, which is
// exactly the trade-off this strategy demonstrates.
type Vectorized struct{}

// Name returns the strategy identifier.
func (Vectorized) Name() string { return "vectorized" }

// Apply computes log10 over samples with one bulk kernel invocation.
func (Vectorized) Apply(ctx context.Context, samples []float64, _ Transform) ([]float64, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}
	out := make([]float64, len(samples))
	vecmath.Log10Block(out, samples)
	return out, nil
}
