package orchestration

import (
	"context"
	"io"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/abray/logbench/internal/errors"
	"github.com/abray/logbench/internal/metrics"
	"github.com/abray/logbench/internal/strategy"
	"github.com/abray/logbench/internal/timing"
)

// tracerName identifies this package's OpenTelemetry tracer.
const tracerName = "github.com/abray/logbench/internal/orchestration"

// ProgressBufferMultiplier defines the buffer size multiplier for the
// progress channel. Each strategy emits a start and a completion update;
// the buffer keeps strategy goroutine-free execution from blocking on a
// slow display.
const ProgressBufferMultiplier = 4

// ExecuteStrategies runs every strategy over the shared sample set,
// strictly sequentially and in the given order.
//
// Sequential execution is a correctness requirement, not a simplification:
// wall-clock comparison is only valid when each strategy has the machine
// to itself. Each strategy is wrapped by the timing harness and an
// OpenTelemetry span, and its heap allocation delta is captured.
//
// Cancellation is honored between strategies: once the context is done,
// remaining strategies record the context error without running.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - strategies: The strategies to execute, in execution order.
//   - samples: The shared, read-only sample set.
//   - fn: The elementwise transform passed to every strategy.
//   - progressReporter: The progress reporter for displaying updates
//     (use NullProgressReporter for quiet mode).
//   - out: The io.Writer for progress output.
//
// Returns:
//   - []RunResult: One result per strategy, in execution order.
func ExecuteStrategies(ctx context.Context, strategies []strategy.Strategy, samples []float64, fn strategy.Transform, progressReporter ProgressReporter, out io.Writer) []RunResult {
	results := make([]RunResult, len(strategies))
	progressChan := make(chan ProgressUpdate, len(strategies)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(strategies), out)

	tracer := otel.Tracer(tracerName)
	collector := metrics.NewMemoryCollector()

	for i, s := range strategies {
		progressChan <- ProgressUpdate{StrategyIndex: i, Name: s.Name(), Value: 0.0}

		results[i] = runOne(ctx, tracer, collector, s, samples, fn)

		progressChan <- ProgressUpdate{StrategyIndex: i, Name: s.Name(), Value: 1.0}
	}

	close(progressChan)
	displayWg.Wait()

	return results
}

// runOne executes a single strategy under a span and returns its result.
func runOne(ctx context.Context, tracer trace.Tracer, collector *metrics.MemoryCollector, s strategy.Strategy, samples []float64, fn strategy.Transform) RunResult {
	ctx, span := tracer.Start(ctx, "strategy.apply",
		trace.WithAttributes(
			attribute.String("strategy", s.Name()),
			attribute.Int("samples", len(samples)),
		))
	defer span.End()

	before := collector.Snapshot()
	output, elapsed, err := timing.Measure(func() ([]float64, error) {
		return s.Apply(ctx, samples, fn)
	})
	after := collector.Snapshot()

	if err != nil {
		span.RecordError(err)
		// Wrap so callers can recognize a strategy execution failure while
		// errors.Is/As still reach the cause.
		err = apperrors.BenchError{Cause: err}
	}
	span.SetAttributes(attribute.Float64("duration_seconds", elapsed.Seconds()))

	return RunResult{
		Name:       s.Name(),
		Output:     output,
		Duration:   elapsed,
		AllocBytes: metrics.AllocDelta(before, after),
		Err:        err,
	}
}
