package tui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abray/logbench/internal/config"
	apperrors "github.com/abray/logbench/internal/errors"
	"github.com/abray/logbench/internal/orchestration"
	"github.com/abray/logbench/internal/strategy"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.AppConfig{N: 100, Min: 1, Max: 101, Timeout: time.Minute}
	m := NewModel(context.Background(), strategy.NewDefaultFactory().GetAll(), []float64{10, 100}, cfg, "test")
	t.Cleanup(m.cancel)
	// Simulate the initial window size message.
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model)
}

func TestModel_ProgressUpdates(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(ProgressMsg{StrategyIndex: 0, Name: "append-loop", Value: 1.0, Average: 0.25})
	m = updated.(Model)

	if m.progresses[0] != 1.0 {
		t.Errorf("progresses[0] = %g, want 1.0", m.progresses[0])
	}
	if m.average != 0.25 {
		t.Errorf("average = %g, want 0.25", m.average)
	}
	if !strings.Contains(m.View(), "append-loop") {
		t.Error("view missing current strategy name")
	}
}

func TestModel_ResultsAndChart(t *testing.T) {
	m := newTestModel(t)

	results := []orchestration.RunResult{
		{Name: "append-loop", Duration: 40 * time.Millisecond},
		{Name: "vectorized", Duration: 10 * time.Millisecond},
	}
	updated, _ := m.Update(ResultsMsg{Results: results})
	m = updated.(Model)

	view := m.View()
	for _, want := range []string{"Results", "Execution Time", "append-loop", "vectorized", "1.00x", "4.00x"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModel_BenchComplete(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(BenchCompleteMsg{ExitCode: apperrors.ExitErrorMismatch, Generation: 0})
	m = updated.(Model)

	if !m.done {
		t.Error("model not marked done")
	}
	if m.exitCode != apperrors.ExitErrorMismatch {
		t.Errorf("exitCode = %d, want %d", m.exitCode, apperrors.ExitErrorMismatch)
	}
	if m.endTime.IsZero() {
		t.Error("endTime not frozen")
	}
}

func TestModel_StaleCompleteIgnored(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(BenchCompleteMsg{ExitCode: apperrors.ExitErrorGeneric, Generation: 5})
	m = updated.(Model)

	if m.done {
		t.Error("stale completion message must be ignored")
	}
}

func TestModel_ErrorDisplayed(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(ErrorMsg{Err: errors.New("boom")})
	m = updated.(Model)

	if !strings.Contains(m.View(), "boom") {
		t.Error("view missing error text")
	}
}

func TestModel_QuitKey(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("expected tea.Quit, got %v", msg)
	}
}

func TestModel_RestartOnlyWhenDone(t *testing.T) {
	m := newTestModel(t)

	// Restart is ignored while a run is in flight.
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = updated.(Model)
	if cmd != nil || m.generation != 0 {
		t.Error("restart must be ignored while running")
	}

	updated, _ = m.Update(BenchCompleteMsg{Generation: 0})
	m = updated.(Model)

	updated, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = updated.(Model)
	if m.generation != 1 {
		t.Errorf("generation = %d, want 1 after restart", m.generation)
	}
	if m.done {
		t.Error("restart must clear done state")
	}
	if cmd == nil {
		t.Error("restart must schedule new commands")
	}
}

func TestModel_UninitializedView(t *testing.T) {
	cfg := config.AppConfig{N: 10, Min: 1, Max: 101}
	m := NewModel(context.Background(), nil, nil, cfg, "dev")
	defer m.cancel()

	if m.View() != "Initializing..." {
		t.Errorf("View() before sizing = %q", m.View())
	}
}

func TestRenderBar(t *testing.T) {
	cases := []struct {
		fraction float64
		want     string
	}{
		{0.0, "░░░░"},
		{0.5, "██░░"},
		{1.0, "████"},
		{2.0, "████"},
		{-1.0, "░░░░"},
	}
	for _, tc := range cases {
		if got := renderBar(tc.fraction, 4); got != tc.want {
			t.Errorf("renderBar(%g, 4) = %q, want %q", tc.fraction, got, tc.want)
		}
	}
}

func TestTUIProgressReporter_DrainsChannel(t *testing.T) {
	// With no program attached, Send is a no-op; the reporter must still
	// drain the channel and release the wait group.
	reporter := &TUIProgressReporter{ref: &programRef{}}

	var wg sync.WaitGroup
	wg.Add(1)

	ch := make(chan orchestration.ProgressUpdate, 4)
	ch <- orchestration.ProgressUpdate{StrategyIndex: 0, Name: "append-loop", Value: 1.0}
	ch <- orchestration.ProgressUpdate{StrategyIndex: 1, Name: "map-func", Value: 0.5}
	close(ch)

	done := make(chan struct{})
	go func() {
		reporter.DisplayProgress(&wg, ch, 2, nil)
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("DisplayProgress did not drain the channel")
	}
}

func TestTUIProgressReporter_ZeroStrategies(t *testing.T) {
	reporter := &TUIProgressReporter{ref: &programRef{}}

	var wg sync.WaitGroup
	wg.Add(1)

	ch := make(chan orchestration.ProgressUpdate)
	close(ch)

	reporter.DisplayProgress(&wg, ch, 0, nil)
	wg.Wait()
}

func TestTUIResultPresenter_HandleError(t *testing.T) {
	presenter := &TUIResultPresenter{ref: &programRef{}}

	code := presenter.HandleError(apperrors.MismatchError{StrategyA: "a", StrategyB: "b"}, nil)
	if code != apperrors.ExitErrorMismatch {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorMismatch)
	}
}
