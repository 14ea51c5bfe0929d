// Package timing provides the wall-clock measurement wrapper used to time
// each benchmark strategy.
package timing

import "time"

// Measure executes fn and reports how long it took. Timestamps are taken
// immediately before and after the call; time.Since uses the monotonic
// clock, so the elapsed duration is never negative. Any error from fn is
// returned unchanged, with the elapsed time still reported.
func Measure[T any](fn func() (T, error)) (T, time.Duration, error) {
	start := time.Now()
	value, err := fn()
	return value, time.Since(start), err
}
