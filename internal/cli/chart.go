package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/abray/logbench/internal/format"
	"github.com/abray/logbench/internal/orchestration"
	"github.com/abray/logbench/internal/ui"
)

// ChartBarWidth is the width in characters of the longest chart bar.
const ChartBarWidth = 40

// RenderChart writes a horizontal bar chart of strategy durations, one bar
// per strategy in execution order. Bars are scaled so the slowest successful
// strategy fills ChartBarWidth characters; each bar is labeled with the
// elapsed time in seconds. Failed strategies get an empty bar.
func RenderChart(results []orchestration.RunResult, out io.Writer) {
	if len(results) == 0 {
		return
	}

	var slowest time.Duration
	nameWidth := 0
	for _, res := range results {
		if len(res.Name) > nameWidth {
			nameWidth = len(res.Name)
		}
		if res.Err == nil && res.Duration > slowest {
			slowest = res.Duration
		}
	}

	fmt.Fprintf(out, "\n%s--- Execution Time by Strategy ---%s\n", ui.ColorBold(), ui.ColorReset())
	for _, res := range results {
		pad := padRight("", nameWidth-len(res.Name))
		if res.Err != nil {
			fmt.Fprintf(out, "%s%s%s%s  %s  %sfailed%s\n",
				ui.ColorPrimary(), res.Name, ui.ColorReset(), pad,
				chartBar(0, slowest), ui.ColorRed(), ui.ColorReset())
			continue
		}
		fmt.Fprintf(out, "%s%s%s%s  %s  %s%s%s\n",
			ui.ColorPrimary(), res.Name, ui.ColorReset(), pad,
			chartBar(res.Duration, slowest),
			ui.ColorYellow(), format.FormatSeconds(res.Duration), ui.ColorReset())
	}
	fmt.Fprintf(out, "%s(bar length proportional to wall-clock time)%s\n",
		ui.ColorSecondary(), ui.ColorReset())
}

// chartBar renders a single bar scaled against the slowest duration. A
// successful run always shows at least one filled cell so fast strategies
// remain visible.
func chartBar(d, slowest time.Duration) string {
	filled := 0
	if slowest > 0 && d > 0 {
		filled = int(float64(d) / float64(slowest) * float64(ChartBarWidth))
		if filled < 1 {
			filled = 1
		}
		if filled > ChartBarWidth {
			filled = ChartBarWidth
		}
	}
	bar := make([]rune, ChartBarWidth)
	for i := range bar {
		if i < filled {
			bar[i] = '█'
		} else {
			bar[i] = '░'
		}
	}
	return string(bar)
}
