// Package dataset produces the random sample sets consumed by the
// benchmark strategies.
package dataset

import (
	"math/rand/v2"
	"time"

	apperrors "github.com/abray/logbench/internal/errors"
)

// Default generation parameters. The lower bound stays strictly above zero
// so every sample is a valid log10 input.
const (
	DefaultN   = 1_000_000
	DefaultMin = 1.0
	DefaultMax = 101.0
)

// Generate produces n independent float64 samples drawn uniformly from
// [min, max). The sequence is deterministic for a non-zero seed; seed 0
// selects a time-derived seed.
//
// Parameters:
//   - n: The number of samples to generate. Must be positive.
//   - min: The inclusive lower bound of the range.
//   - max: The exclusive upper bound of the range. Must exceed min.
//   - seed: The PRNG seed, or 0 for a time-derived seed.
//
// Returns:
//   - []float64: The generated sample set.
//   - error: A validation error if the parameters are out of range.
func Generate(n int, min, max float64, seed uint64) ([]float64, error) {
	if n <= 0 {
		return nil, apperrors.ValidationError{Field: "n", Message: "sample count must be positive"}
	}
	if max <= min {
		return nil, apperrors.ValidationError{Field: "max", Message: "upper bound must exceed lower bound"}
	}

	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed))

	samples := make([]float64, n)
	span := max - min
	for i := range samples {
		samples[i] = min + rng.Float64()*span
	}
	return samples, nil
}
