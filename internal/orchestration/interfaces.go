package orchestration

import (
	"io"
	"sync"
	"time"
)

// RunResult encapsulates the outcome of a single strategy execution.
// It serves as the shared domain type between orchestration and
// presentation layers.
type RunResult struct {
	// Name is the identifier of the strategy used (e.g., "vectorized").
	Name string
	// Output is the transformed result set. It is nil if an error occurred.
	Output []float64
	// Duration is the wall-clock time taken to complete the strategy.
	Duration time.Duration
	// AllocBytes is the heap memory allocated while the strategy ran.
	AllocBytes uint64
	// Err contains any error that occurred during execution.
	Err error
}

// ProgressUpdate reports the state of one strategy to the progress display.
type ProgressUpdate struct {
	// StrategyIndex identifies the strategy in execution order.
	StrategyIndex int
	// Name is the strategy identifier, for display.
	Name string
	// Value is the progress fraction: 0.0 when the strategy starts,
	// 1.0 when it completes. Strategies run as single uninterrupted
	// passes, so there are no intermediate values.
	Value float64
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	// N is the sample count of the benchmarked data set.
	N int
	// Preview is the number of leading elements shown per result set.
	Preview int
	// Verbose enables additional per-strategy detail.
	Verbose bool
	// ShowChart enables the bar chart rendering.
	ShowChart bool
}

// ProgressReporter defines the interface for displaying execution progress.
// This interface decouples the orchestration layer from the presentation
// layer; implementations handle the visual representation (spinner, TUI
// messages) while the orchestration layer focuses on running strategies.
type ProgressReporter interface {
	// DisplayProgress starts displaying progress updates from the channel.
	// It should be called in a separate goroutine and will run until the
	// progressChan is closed.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numStrategies int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numStrategies int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numStrategies int, out io.Writer) {
	f(wg, progressChan, numStrategies, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything.
// Useful for quiet mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
		// Drain channel silently
	}
}

// ResultPresenter defines the interface for presenting benchmark results.
// This decouples the orchestration layer from presentation concerns,
// allowing different front ends (CLI, TUI) without modifying the
// orchestration logic.
type ResultPresenter interface {
	// PresentPreviews displays the leading elements of the sample set and
	// of each successful result set, for sanity-checking.
	PresentPreviews(samples []float64, results []RunResult, previewLen int, out io.Writer)

	// PresentComparisonTable displays the comparison summary table.
	PresentComparisonTable(results []RunResult, out io.Writer)

	// PresentChart renders the duration bar chart, one bar per strategy
	// in execution order.
	PresentChart(results []RunResult, out io.Writer)
}

// ErrorHandler handles run errors and returns exit codes.
type ErrorHandler interface {
	HandleError(err error, out io.Writer) int
}
