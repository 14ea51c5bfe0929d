package tui

import (
	"time"

	"github.com/abray/logbench/internal/orchestration"
)

// ProgressMsg carries a per-strategy progress update plus the aggregated
// completion fraction across all strategies.
type ProgressMsg struct {
	StrategyIndex int
	Name          string
	Value         float64
	Average       float64
}

// ProgressDoneMsg signals that the progress channel has been closed.
type ProgressDoneMsg struct{}

// ResultsMsg carries the per-strategy run results once the benchmark has
// finished executing.
type ResultsMsg struct {
	Results []orchestration.RunResult
}

// ErrorMsg carries a benchmark-level error for display.
type ErrorMsg struct {
	Err error
}

// BenchCompleteMsg signals that the benchmark run and analysis are done.
// Generation guards against stale messages after a restart.
type BenchCompleteMsg struct {
	ExitCode   int
	Generation uint64
}

// ContextCancelledMsg signals that the run context was cancelled.
type ContextCancelledMsg struct {
	Err        error
	Generation uint64
}

// TickMsg drives periodic refresh of the elapsed timer and system stats.
type TickMsg time.Time

// SysStatsMsg carries a system-wide CPU and memory sample.
type SysStatsMsg struct {
	CPUPercent float64
	MemPercent float64
}
