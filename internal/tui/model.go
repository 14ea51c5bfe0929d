package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/abray/logbench/internal/config"
	apperrors "github.com/abray/logbench/internal/errors"
	"github.com/abray/logbench/internal/format"
	"github.com/abray/logbench/internal/orchestration"
	"github.com/abray/logbench/internal/strategy"
	"github.com/abray/logbench/internal/sysmon"
)

// chartWidth is the width in characters of the longest dashboard chart bar.
const chartWidth = 30

// Model is the root bubbletea model for the benchmark dashboard.
type Model struct {
	parentCtx  context.Context
	ctx        context.Context
	cancel     context.CancelFunc
	strategies []strategy.Strategy
	samples    []float64
	config     config.AppConfig
	version    string
	ref        *programRef
	keymap     KeyMap

	generation uint64
	startTime  time.Time
	endTime    time.Time
	width      int
	height     int

	progresses []float64
	current    string
	average    float64
	results    []orchestration.RunResult
	runErr     error
	sys        sysmon.Stats
	done       bool
	exitCode   int
}

// NewModel creates a new dashboard model.
func NewModel(parentCtx context.Context, strategies []strategy.Strategy, samples []float64, cfg config.AppConfig, version string) Model {
	ctx, cancel := context.WithCancel(parentCtx)
	return Model{
		parentCtx:  parentCtx,
		ctx:        ctx,
		cancel:     cancel,
		strategies: strategies,
		samples:    samples,
		config:     cfg,
		version:    version,
		ref:        &programRef{},
		keymap:     DefaultKeyMap(),
		startTime:  time.Now(),
		progresses: make([]float64, len(strategies)),
		exitCode:   apperrors.ExitSuccess,
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		startBenchCmd(m.ref, m.ctx, m.strategies, m.samples, m.config, m.generation),
		watchContextCmd(m.ctx, m.generation),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ProgressMsg:
		if msg.StrategyIndex >= 0 && msg.StrategyIndex < len(m.progresses) {
			m.progresses[msg.StrategyIndex] = msg.Value
		}
		m.current = msg.Name
		m.average = msg.Average
		return m, nil

	case ProgressDoneMsg:
		return m, nil

	case ResultsMsg:
		m.results = msg.Results
		return m, nil

	case ErrorMsg:
		m.runErr = msg.Err
		return m, nil

	case BenchCompleteMsg:
		if msg.Generation != m.generation {
			return m, nil // stale message from a previous run
		}
		m.done = true
		m.exitCode = msg.ExitCode
		m.endTime = time.Now()
		return m, nil

	case ContextCancelledMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		m.done = true
		m.endTime = time.Now()
		return m, tea.Quit

	case TickMsg:
		if m.done {
			return m, nil
		}
		return m, tea.Batch(sampleSysStatsCmd(), tickCmd())

	case SysStatsMsg:
		m.sys = sysmon.Stats{CPUPercent: msg.CPUPercent, MemPercent: msg.MemPercent}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Restart):
		if !m.done {
			return m, nil
		}
		if m.cancel != nil {
			m.cancel()
		}

		m.generation++
		ctx, cancel := context.WithCancel(m.parentCtx)
		m.ctx = ctx
		m.cancel = cancel

		m.progresses = make([]float64, len(m.strategies))
		m.current = ""
		m.average = 0
		m.results = nil
		m.runErr = nil
		m.done = false
		m.exitCode = apperrors.ExitSuccess
		m.startTime = time.Now()
		m.endTime = time.Time{}

		return m, tea.Batch(
			tickCmd(),
			startBenchCmd(m.ref, m.ctx, m.strategies, m.samples, m.config, m.generation),
			watchContextCmd(m.ctx, m.generation),
		)
	}

	return m, nil
}

// View renders the entire dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	sections := []string{
		m.viewHeader(),
		"",
		m.viewProgress(),
	}
	if len(m.results) > 0 {
		sections = append(sections, "", m.viewResults(), "", m.viewChart())
	}
	if m.runErr != nil {
		sections = append(sections, "", errorStyle.Render(fmt.Sprintf("Error: %v", m.runErr)))
	}
	sections = append(sections, "", m.viewFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewHeader() string {
	titleText := "logbench Monitor"
	if m.version != "" && m.version != "dev" {
		titleText += " " + m.version
	}

	var duration time.Duration
	if !m.endTime.IsZero() {
		duration = m.endTime.Sub(m.startTime)
	} else {
		duration = time.Since(m.startTime)
	}

	return titleStyle.Render(titleText) +
		versionStyle.Render(" | ") +
		elapsedStyle.Render(fmt.Sprintf("Elapsed: %s", format.FormatExecutionDuration(duration))) +
		versionStyle.Render(" | ") +
		dimStyle.Render(fmt.Sprintf("%s samples, CPU %.0f%%, mem %.0f%%",
			format.FormatNumber(m.config.N), m.sys.CPUPercent, m.sys.MemPercent))
}

func (m Model) viewProgress() string {
	status := fmt.Sprintf("running %s", m.current)
	if m.done {
		status = "done"
	} else if m.current == "" {
		status = "starting"
	}
	bar := renderBar(m.average, chartWidth)
	return sectionStyle.Render("Progress ") +
		chartBarStyle.Render(bar) +
		valueStyle.Render(fmt.Sprintf(" %3.0f%% ", m.average*100)) +
		dimStyle.Render(status)
}

func (m Model) viewResults() string {
	var fastest time.Duration
	nameWidth := 0
	for _, res := range m.results {
		if len(res.Name) > nameWidth {
			nameWidth = len(res.Name)
		}
		if res.Err == nil && (fastest == 0 || res.Duration < fastest) {
			fastest = res.Duration
		}
	}

	lines := []string{sectionStyle.Render("Results")}
	for _, res := range m.results {
		name := strategyStyle.Render(res.Name + strings.Repeat(" ", nameWidth-len(res.Name)))
		if res.Err != nil {
			lines = append(lines, fmt.Sprintf("%s  %s", name, errorStyle.Render(fmt.Sprintf("failed: %v", res.Err))))
			continue
		}
		relative := ""
		if fastest > 0 {
			relative = fmt.Sprintf("  %.2fx", float64(res.Duration)/float64(fastest))
		}
		lines = append(lines, fmt.Sprintf("%s  %s%s", name,
			successStyle.Render(format.FormatExecutionDuration(res.Duration)),
			dimStyle.Render(relative)))
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewChart() string {
	var slowest time.Duration
	nameWidth := 0
	for _, res := range m.results {
		if len(res.Name) > nameWidth {
			nameWidth = len(res.Name)
		}
		if res.Err == nil && res.Duration > slowest {
			slowest = res.Duration
		}
	}

	lines := []string{sectionStyle.Render("Execution Time")}
	for _, res := range m.results {
		name := strategyStyle.Render(res.Name + strings.Repeat(" ", nameWidth-len(res.Name)))
		if res.Err != nil || slowest == 0 {
			lines = append(lines, fmt.Sprintf("%s  %s", name, chartEmptyStyle.Render(strings.Repeat("░", chartWidth))))
			continue
		}
		fraction := float64(res.Duration) / float64(slowest)
		lines = append(lines, fmt.Sprintf("%s  %s %s", name,
			renderStyledBar(fraction, chartWidth),
			valueStyle.Render(format.FormatSeconds(res.Duration))))
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewFooter() string {
	return footerKeyStyle.Render("q") + footerDescStyle.Render(" quit  ") +
		footerKeyStyle.Render("r") + footerDescStyle.Render(" restart")
}

// renderBar renders an unstyled progress bar of the given width.
func renderBar(fraction float64, width int) string {
	if fraction > 1.0 {
		fraction = 1.0
	}
	if fraction < 0.0 {
		fraction = 0.0
	}
	filled := int(fraction * float64(width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// renderStyledBar renders a chart bar with filled and empty segments styled
// separately. A nonzero fraction always shows at least one filled cell.
func renderStyledBar(fraction float64, width int) string {
	if fraction > 1.0 {
		fraction = 1.0
	}
	if fraction < 0.0 {
		fraction = 0.0
	}
	filled := int(fraction * float64(width))
	if fraction > 0 && filled < 1 {
		filled = 1
	}
	return chartBarStyle.Render(strings.Repeat("█", filled)) +
		chartEmptyStyle.Render(strings.Repeat("░", width-filled))
}

// Run is the public entry point for the TUI mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, strategies []strategy.Strategy, samples []float64, cfg config.AppConfig, version string) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, strategies, samples, cfg, version)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	// Inject the program reference before running so bridge goroutines can Send.
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}

	if m, ok := finalModel.(Model); ok {
		m.cancel()
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// startBenchCmd returns a tea.Cmd that launches the benchmark orchestration.
func startBenchCmd(ref *programRef, ctx context.Context, strategies []strategy.Strategy, samples []float64, cfg config.AppConfig, gen uint64) tea.Cmd {
	return func() tea.Msg {
		progressReporter := &TUIProgressReporter{ref: ref}
		presenter := &TUIResultPresenter{ref: ref}

		results := orchestration.ExecuteStrategies(ctx, strategies, samples, strategy.Log10, progressReporter, io.Discard)
		opts := orchestration.PresentationOptions{
			N:       cfg.N,
			Preview: cfg.Preview,
		}
		exitCode := orchestration.AnalyzeResults(samples, results, opts, presenter, presenter, io.Discard)

		return BenchCompleteMsg{ExitCode: exitCode, Generation: gen}
	}
}

// tickCmd returns a command that sends a TickMsg after 500ms.
func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleSysStatsCmd reads system-wide CPU and memory stats and returns a SysStatsMsg.
func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		s := sysmon.Sample()
		return SysStatsMsg{
			CPUPercent: s.CPUPercent,
			MemPercent: s.MemPercent,
		}
	}
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context, gen uint64) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err(), Generation: gen}
	}
}
