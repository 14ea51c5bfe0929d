package tui

import (
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/abray/logbench/internal/errors"
	"github.com/abray/logbench/internal/orchestration"
)

// programRef is a shared reference to the tea.Program.
// Because bubbletea copies the model on every Update, we need a pointer
// that survives copies so the bridge goroutines can send messages.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram sets the tea.Program reference (thread-safe).
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send sends a message to the bubbletea program (thread-safe).
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// TUIProgressReporter implements orchestration.ProgressReporter.
// It drains the progress channel and forwards updates as bubbletea messages.
type TUIProgressReporter struct {
	ref *programRef
}

var _ orchestration.ProgressReporter = (*TUIProgressReporter)(nil)

// DisplayProgress drains the progress channel and sends ProgressMsg to the TUI.
func (t *TUIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numStrategies int, _ io.Writer) {
	defer wg.Done()

	if numStrategies <= 0 {
		for range progressChan {
		}
		return
	}

	progresses := make([]float64, numStrategies)
	for update := range progressChan {
		if update.StrategyIndex >= 0 && update.StrategyIndex < numStrategies {
			progresses[update.StrategyIndex] = update.Value
		}
		var total float64
		for _, p := range progresses {
			total += p
		}
		t.ref.Send(ProgressMsg{
			StrategyIndex: update.StrategyIndex,
			Name:          update.Name,
			Value:         update.Value,
			Average:       total / float64(numStrategies),
		})
	}
	t.ref.Send(ProgressDoneMsg{})
}

// TUIResultPresenter implements orchestration.ResultPresenter and
// orchestration.ErrorHandler. It sends result messages to the TUI instead of
// writing to stdout.
type TUIResultPresenter struct {
	ref *programRef
}

var (
	_ orchestration.ResultPresenter = (*TUIResultPresenter)(nil)
	_ orchestration.ErrorHandler    = (*TUIResultPresenter)(nil)
)

// PresentPreviews is a no-op: the dashboard renders results from ResultsMsg.
func (t *TUIResultPresenter) PresentPreviews(_ []float64, _ []orchestration.RunResult, _ int, _ io.Writer) {
}

// PresentComparisonTable sends the run results to the TUI.
func (t *TUIResultPresenter) PresentComparisonTable(results []orchestration.RunResult, _ io.Writer) {
	t.ref.Send(ResultsMsg{Results: results})
}

// PresentChart is a no-op: the dashboard renders its own chart from ResultsMsg.
func (t *TUIResultPresenter) PresentChart(_ []orchestration.RunResult, _ io.Writer) {
}

// HandleError sends an error message to the TUI and returns the exit code.
func (t *TUIResultPresenter) HandleError(err error, _ io.Writer) int {
	t.ref.Send(ErrorMsg{Err: err})
	return apperrors.HandleBenchmarkError(err, io.Discard, noColors{})
}

// noColors is a ColorProvider that emits no escape codes; error text reaches
// the dashboard through ErrorMsg, not the writer.
type noColors struct{}

func (noColors) Red() string    { return "" }
func (noColors) Yellow() string { return "" }
func (noColors) Reset() string  { return "" }
