package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	apperrors "github.com/abray/logbench/internal/errors"
	"github.com/abray/logbench/internal/format"
	"github.com/abray/logbench/internal/orchestration"
	"github.com/abray/logbench/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter for CLI
// output. It wraps DisplayProgress to provide a spinner and progress bar
// during the benchmark run.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner and progress bar for the running
// strategies.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numStrategies int, out io.Writer) {
	DisplayProgress(wg, progressChan, numStrategies, out)
}

// CLIResultPresenter implements orchestration.ResultPresenter for CLI output.
// It provides formatted, colorized output for benchmark results in the
// command-line interface.
type CLIResultPresenter struct{}

var (
	_ orchestration.ResultPresenter = CLIResultPresenter{}
	_ orchestration.ErrorHandler    = CLIResultPresenter{}
)

// PresentPreviews displays the head of the sample set alongside the head of
// each strategy's output so results can be eyeballed before the summary.
func (CLIResultPresenter) PresentPreviews(samples []float64, results []orchestration.RunResult, previewLen int, out io.Writer) {
	if previewLen <= 0 {
		return
	}
	nameWidth := len("input")
	for _, res := range results {
		if len(res.Name) > nameWidth {
			nameWidth = len(res.Name)
		}
	}

	fmt.Fprintf(out, "\n--- Result Preview (first %d elements) ---\n", previewLen)
	fmt.Fprintf(out, "%sinput%s%s  %s\n",
		ui.ColorCyan(), ui.ColorReset(), padRight("", nameWidth-len("input")),
		formatPreview(samples, previewLen))
	for _, res := range results {
		pad := padRight("", nameWidth-len(res.Name))
		if res.Err != nil {
			fmt.Fprintf(out, "%s%s%s%s  %s(no output: %v)%s\n",
				ui.ColorPrimary(), res.Name, ui.ColorReset(), pad,
				ui.ColorRed(), res.Err, ui.ColorReset())
			continue
		}
		fmt.Fprintf(out, "%s%s%s%s  %s\n",
			ui.ColorPrimary(), res.Name, ui.ColorReset(), pad,
			formatPreview(res.Output, previewLen))
	}
}

// formatPreview renders up to limit elements of values as a bracketed list,
// with an ellipsis when values is longer.
func formatPreview(values []float64, limit int) string {
	n := len(values)
	if n > limit {
		n = limit
	}
	parts := make([]string, 0, n+1)
	for _, v := range values[:n] {
		parts = append(parts, fmt.Sprintf("%.6f", v))
	}
	suffix := "]"
	if len(values) > limit {
		suffix = " ...]"
	}
	return "[" + strings.Join(parts, " ") + suffix
}


// PresentComparisonTable displays the comparison summary table with strategy
// names, durations, slowdown relative to the fastest strategy, allocation
// deltas, and status. Uses manual padding to correctly handle ANSI color
// codes.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.RunResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	fastest := fastestDuration(results)

	maxNameLen := len("Strategy")
	maxDurationLen := len("Duration")
	for _, res := range results {
		if len(res.Name) > maxNameLen {
			maxNameLen = len(res.Name)
		}
		if d := len(durationCell(res)); d > maxDurationLen {
			maxDurationLen = d
		}
	}

	fmt.Fprintf(out, "%sStrategy%s%s   %sDuration%s%s   %sRelative%s   %sAllocated%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxNameLen-len("Strategy")),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxDurationLen-len("Duration")),
		ui.ColorUnderline(), ui.ColorReset(),
		ui.ColorUnderline(), ui.ColorReset(),
		ui.ColorUnderline(), ui.ColorReset())

	for _, res := range results {
		var status string
		if res.Err != nil {
			status = fmt.Sprintf("%s❌ Failure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
		} else {
			status = fmt.Sprintf("%s✅ Success%s", ui.ColorGreen(), ui.ColorReset())
		}

		relative := "-"
		if res.Err == nil && fastest > 0 {
			relative = fmt.Sprintf("%.2fx", float64(res.Duration)/float64(fastest))
		}

		allocated := "-"
		if res.Err == nil {
			allocated = format.FormatBytes(res.AllocBytes)
		}

		duration := durationCell(res)
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %-8s   %-9s   %s\n",
			ui.ColorPrimary(), res.Name, ui.ColorReset(), padRight("", maxNameLen-len(res.Name)),
			ui.ColorYellow(), duration, ui.ColorReset(), padRight("", maxDurationLen-len(duration)),
			relative, allocated, status)
	}
}

// durationCell formats a result's duration for the comparison table.
func durationCell(res orchestration.RunResult) string {
	if res.Duration == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(res.Duration)
}

// fastestDuration returns the shortest successful duration, or 0 when no
// strategy succeeded.
func fastestDuration(results []orchestration.RunResult) (fastest time.Duration) {
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		if fastest == 0 || res.Duration < fastest {
			fastest = res.Duration
		}
	}
	return fastest
}

// PresentChart renders a horizontal bar chart of strategy durations, one bar
// per strategy in execution order, scaled so the slowest strategy fills the
// chart width.
func (CLIResultPresenter) PresentChart(results []orchestration.RunResult, out io.Writer) {
	RenderChart(results, out)
}

// padRight returns s followed by length spaces.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// HandleError handles benchmark errors and returns an appropriate exit code.
func (CLIResultPresenter) HandleError(err error, out io.Writer) int {
	return apperrors.HandleBenchmarkError(err, out, CLIColorProvider{})
}

// DisplayMemoryStats shows process memory statistics after a benchmark run.
func DisplayMemoryStats(heapAlloc, totalAlloc uint64, numGC uint32, pauseTotalNs uint64, out io.Writer) {
	fmt.Fprintf(out, "\n%sMemory Stats:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "  Peak heap:       %s\n", format.FormatBytes(heapAlloc))
	fmt.Fprintf(out, "  Total allocated: %s\n", format.FormatBytes(totalAlloc))
	fmt.Fprintf(out, "  GC cycles:       %d\n", numGC)
	fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(pauseTotalNs)/1e6)
}
