// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayQuietResults], [DisplayProgress].
//
//   - Print* functions write informational sections to an [io.Writer].
//     Examples: [PrintExecutionConfig], [PrintExecutionMode].
//
//   - Write* functions write data to files on the filesystem.
//     Examples: [WriteReportToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/abray/logbench/internal/config"
	"github.com/abray/logbench/internal/format"
	"github.com/abray/logbench/internal/orchestration"
	"github.com/abray/logbench/internal/strategy"
	"github.com/abray/logbench/internal/sysmon"
	"github.com/abray/logbench/internal/ui"
)

// PrintExecutionConfig displays the current execution configuration to the
// user: sample count and range, seed, timeout, and environment details.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "%s--- Execution Configuration ---%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "Computing log10 over %s%s%s samples in [%s%g%s, %s%g%s) with a timeout of %s%s%s.\n",
		ui.ColorPrimary(), format.FormatNumber(cfg.N), ui.ColorReset(),
		ui.ColorCyan(), cfg.Min, ui.ColorReset(),
		ui.ColorCyan(), cfg.Max, ui.ColorReset(),
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	if cfg.Seed != 0 {
		fmt.Fprintf(out, "Generator seed: %s%d%s.\n", ui.ColorCyan(), cfg.Seed, ui.ColorReset())
	}
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(),
		ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "System load: %s%s%s.\n", ui.ColorCyan(), sysmon.Sample(), ui.ColorReset())
}

// PrintExecutionMode displays the execution mode (single strategy vs
// comparison of all strategies).
func PrintExecutionMode(strategies []strategy.Strategy, out io.Writer) {
	var modeDesc string
	if len(strategies) > 1 {
		modeDesc = fmt.Sprintf("Sequential comparison of %d strategies", len(strategies))
	} else {
		modeDesc = fmt.Sprintf("Single run with the %s%s%s strategy",
			ui.ColorGreen(), strategies[0].Name(), ui.ColorReset())
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n%s--- Starting Execution ---%s\n", ui.ColorBold(), ui.ColorReset())
}

// FormatQuietResult formats one result as a single machine-readable line:
// the strategy name and the elapsed seconds, tab-separated. Failed strategies
// report the error in place of the duration.
func FormatQuietResult(res orchestration.RunResult) string {
	if res.Err != nil {
		return fmt.Sprintf("%s\terror: %v", res.Name, res.Err)
	}
	return fmt.Sprintf("%s\t%.6f", res.Name, res.Duration.Seconds())
}

// DisplayQuietResults outputs one line per strategy, suitable for scripting.
func DisplayQuietResults(results []orchestration.RunResult, out io.Writer) {
	for _, res := range results {
		fmt.Fprintln(out, FormatQuietResult(res))
	}
}

// WriteReportToFile writes a benchmark run report to a file: a commented
// header describing the run followed by one line per strategy in quiet
// format.
//
// Parameters:
//   - results: The per-strategy run results.
//   - cfg: The run configuration, used for the header and the target path.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteReportToFile(results []orchestration.RunResult, cfg config.AppConfig) error {
	if cfg.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(cfg.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# log10 Benchmark Report\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Samples: %d in [%g, %g)\n", cfg.N, cfg.Min, cfg.Max)
	if cfg.Seed != 0 {
		fmt.Fprintf(file, "# Seed: %d\n", cfg.Seed)
	}
	fmt.Fprintf(file, "# Go: %s, CPUs: %d\n", runtime.Version(), runtime.NumCPU())
	fmt.Fprintf(file, "\n")

	for _, res := range results {
		fmt.Fprintln(file, FormatQuietResult(res))
	}
	return nil
}

// ConfirmReportSaved prints a confirmation after a successful file write.
func ConfirmReportSaved(path string, out io.Writer) {
	fmt.Fprintf(out, "\n%s✓ Report saved to: %s%s%s\n",
		ui.ColorGreen(), ui.ColorCyan(), path, ui.ColorReset())
}
