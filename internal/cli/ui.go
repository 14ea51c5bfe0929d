package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/abray/logbench/internal/orchestration"
	"github.com/abray/logbench/internal/ui"
)

const (
	// ProgressRefreshRate defines the refresh frequency of the progress bar.
	ProgressRefreshRate = 100 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 30
)

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// It decouples DisplayProgress from a specific spinner implementation, which
// keeps the progress loop testable without a real terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner wraps spinner.Spinner to satisfy the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }
func (rs *realSpinner) Stop()  { rs.s.Stop() }
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// ProgressState tracks the per-strategy progress of a benchmark run and
// computes the overall completion fraction. Strategies run one after another,
// so the aggregate advances in steps of 1/numStrategies.
type ProgressState struct {
	progresses    []float64
	numStrategies int
	current       string
}

// NewProgressState creates a ProgressState tracking numStrategies strategies.
func NewProgressState(numStrategies int) *ProgressState {
	return &ProgressState{
		progresses:    make([]float64, numStrategies),
		numStrategies: numStrategies,
	}
}

// Update records a progress value for the strategy at the given index and
// remembers the strategy name for display. Out-of-range indices are ignored.
func (ps *ProgressState) Update(index int, name string, value float64) {
	if index >= 0 && index < len(ps.progresses) {
		ps.progresses[index] = value
		ps.current = name
	}
}

// CalculateAverage computes the overall completion fraction across all
// tracked strategies.
func (ps *ProgressState) CalculateAverage() float64 {
	if ps.numStrategies == 0 {
		return 0.0
	}
	var total float64
	for _, p := range ps.progresses {
		total += p
	}
	return total / float64(ps.numStrategies)
}

// Completed returns the number of strategies that have finished.
func (ps *ProgressState) Completed() int {
	var done int
	for _, p := range ps.progresses {
		if p >= 1.0 {
			done++
		}
	}
	return done
}

// progressBar generates a textual progress bar of the given width for a
// normalized progress value.
func progressBar(progress float64, length int) string {
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0.0 {
		progress = 0.0
	}
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}

// DisplayProgress consumes progress updates from the benchmark run and drives
// a terminal spinner showing which strategy is running and the overall
// completion. It must run in its own goroutine; it signals wg when the
// progress channel is closed and the spinner has stopped.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numStrategies int, out io.Writer) {
	defer wg.Done()

	if numStrategies <= 0 {
		for range progressChan {
		}
		return
	}

	state := NewProgressState(numStrategies)
	sp := newSpinner(spinner.WithWriter(out))
	sp.UpdateSuffix(fmt.Sprintf(" Benchmarking... [%s] 0%%", progressBar(0, ProgressBarWidth)))
	sp.Start()
	defer sp.Stop()

	for update := range progressChan {
		state.Update(update.StrategyIndex, update.Name, update.Value)
		avg := state.CalculateAverage()
		sp.UpdateSuffix(fmt.Sprintf(" %s [%s] %3.0f%% (%d/%d)",
			update.Name, progressBar(avg, ProgressBarWidth), avg*100, state.Completed(), numStrategies))
	}
}

// CLIColorProvider supplies ANSI color codes from the active theme for error
// rendering.
type CLIColorProvider struct{}

// Red returns the ANSI code for error text.
func (CLIColorProvider) Red() string { return ui.ColorRed() }

// Yellow returns the ANSI code for warning text.
func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }

// Reset returns the ANSI reset code.
func (CLIColorProvider) Reset() string { return ui.ColorReset() }
