// Package strategy defines the four interchangeable iteration mechanisms
// benchmarked by the tool. Every strategy applies the same elementwise
// transform to the same sample set; the iteration style is the only
// independent variable.
package strategy

import (
	"context"
	"math"
)

// Transform is the elementwise function applied by every strategy. It is
// passed explicitly rather than captured from ambient scope so that all
// strategies demonstrably compute the same mathematical mapping.
type Transform func(float64) float64

// Log10 is the transform benchmarked by the tool.
func Log10(x float64) float64 { return math.Log10(x) }

// Strategy applies a transform to every element of a sample set using a
// particular iteration mechanism.
//
// Implementations must be pure with respect to their input: the samples
// slice is never mutated, and each call returns a freshly allocated output
// slice. An empty sample set yields an empty result and no error. A context
// that is already canceled yields ctx.Err() before any work is done.
type Strategy interface {
	// Name returns the identifier of the strategy (e.g., "vectorized").
	Name() string
	// Apply computes fn over every element of samples, in order.
	Apply(ctx context.Context, samples []float64, fn Transform) ([]float64, error)
}

// checkCtx reports the context error, if any, before a strategy starts.
// Strategies run as single uninterrupted passes; cancellation is honored
// at strategy boundaries, not mid-pass, so timings stay undisturbed.
func checkCtx(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
