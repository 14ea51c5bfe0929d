package orchestration

import (
	"math"
	"sync"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/abray/logbench/internal/errors"
)

// DefaultTolerance is the absolute difference within which two result sets
// are considered elementwise equal. The four strategies compute the same
// mathematical mapping, so any larger divergence indicates a bug.
const DefaultTolerance = 1e-9

// VerifyConsistency validates the result sets of all successful strategies.
//
// Two classes of defect are detected, in priority order per strategy:
//   - domain violations: any non-finite output (NaN or ±Inf) means the
//     transform was applied outside its domain, which under sentinel-value
//     semantics would otherwise pass silently;
//   - mismatches: an elementwise difference beyond tolerance between a
//     strategy and the first successful one.
//
// Result sets are independent, so each strategy's scan runs concurrently.
// The error reported is the one from the earliest strategy in execution
// order, so repeated runs fail deterministically.
func VerifyConsistency(results []RunResult, tolerance float64) error {
	ok := make([]*RunResult, 0, len(results))
	for i := range results {
		if results[i].Err == nil {
			ok = append(ok, &results[i])
		}
	}
	if len(ok) == 0 {
		return nil
	}

	var mu sync.Mutex
	errAt := make(map[int]error) // index within ok -> first defect found

	var g errgroup.Group
	reference := ok[0]

	for idx, res := range ok {
		idx, res := idx, res
		g.Go(func() error {
			err := scanResult(res, reference, idx > 0, tolerance)
			if err != nil {
				mu.Lock()
				errAt[idx] = err
				mu.Unlock()
			}
			return nil
		})
	}

	g.Wait()

	for idx := range ok {
		if err, found := errAt[idx]; found {
			return err
		}
	}
	return nil
}

// scanResult checks one result set for domain violations and, when
// compareRef is set, for divergence from the reference result set.
func scanResult(res, reference *RunResult, compareRef bool, tolerance float64) error {
	for i, v := range res.Output {
		if !isFinite(v) {
			return apperrors.DomainError{Strategy: res.Name, Index: i, Value: v}
		}
	}
	if !compareRef {
		return nil
	}

	if len(res.Output) != len(reference.Output) {
		return apperrors.MismatchError{
			StrategyA: reference.Name, StrategyB: res.Name,
			Index: -1, Delta: math.Inf(1),
		}
	}
	for i := range res.Output {
		delta := math.Abs(res.Output[i] - reference.Output[i])
		if delta > tolerance || math.IsNaN(delta) {
			return apperrors.MismatchError{
				StrategyA: reference.Name, StrategyB: res.Name,
				Index: i, Delta: delta,
			}
		}
	}
	return nil
}

// isFinite reports whether v is neither NaN nor infinite.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
