package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/abray/logbench/internal/cli"
	"github.com/abray/logbench/internal/dataset"
	apperrors "github.com/abray/logbench/internal/errors"
	"github.com/abray/logbench/internal/logging"
	"github.com/abray/logbench/internal/metrics"
	"github.com/abray/logbench/internal/orchestration"
	"github.com/abray/logbench/internal/strategy"
)

// runBench orchestrates the execution of the CLI benchmark command.
func (a *Application) runBench(ctx context.Context, out io.Writer) int {
	// Setup lifecycle (timeout + signals)
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	samples, err := a.generateSamples()
	if err != nil {
		return a.handleGenerateError(err)
	}

	strategiesToRun := orchestration.GetStrategiesToRun(a.Config, a.Factory)
	if len(strategiesToRun) == 0 {
		fmt.Fprintf(a.ErrWriter, "No strategy matches %q.\n", a.Config.Strategy)
		return apperrors.ExitErrorConfig
	}

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(strategiesToRun, out)
	}

	// Choose progress reporter based on quiet mode
	var progressReporter orchestration.ProgressReporter
	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
		progressReporter = orchestration.NullProgressReporter{}
	} else {
		progressReporter = cli.CLIProgressReporter{}
	}

	results := orchestration.ExecuteStrategies(ctx, strategiesToRun, samples, strategy.Log10, progressReporter, progressOut)

	a.observeMetrics(results, out)

	if a.Config.Quiet {
		cli.DisplayQuietResults(results, out)
		if code := a.verifyQuiet(results); code != apperrors.ExitSuccess {
			return code
		}
		if err := cli.WriteReportToFile(results, a.Config); err != nil {
			a.Logger.Error("failed to write report", err, logging.String("path", a.Config.OutputFile))
			return apperrors.ExitErrorGeneric
		}
		return apperrors.ExitSuccess
	}

	presOpts := orchestration.PresentationOptions{
		N:         a.Config.N,
		Preview:   a.Config.Preview,
		Verbose:   a.Config.Verbose,
		ShowChart: !a.Config.NoChart,
	}
	exitCode := orchestration.AnalyzeResults(samples, results, presOpts, cli.CLIResultPresenter{}, cli.CLIResultPresenter{}, out)

	if a.Config.Verbose {
		snap := metrics.NewMemoryCollector().Snapshot()
		cli.DisplayMemoryStats(snap.HeapAlloc, snap.TotalAlloc, snap.NumGC, snap.PauseTotalNs, out)
	}

	if a.Config.OutputFile != "" && exitCode == apperrors.ExitSuccess {
		if err := cli.WriteReportToFile(results, a.Config); err != nil {
			a.Logger.Error("failed to write report", err, logging.String("path", a.Config.OutputFile))
			return apperrors.ExitErrorGeneric
		}
		cli.ConfirmReportSaved(a.Config.OutputFile, out)
	}

	return exitCode
}

// generateSamples builds the benchmark input according to the configuration.
func (a *Application) generateSamples() ([]float64, error) {
	a.Logger.Debug("generating samples",
		logging.Int("n", a.Config.N),
		logging.Float64("min", a.Config.Min),
		logging.Float64("max", a.Config.Max),
		logging.Uint64("seed", a.Config.Seed))
	return dataset.Generate(a.Config.N, a.Config.Min, a.Config.Max, a.Config.Seed)
}

// handleGenerateError reports a sample generation failure and maps it to an
// exit code.
func (a *Application) handleGenerateError(err error) int {
	a.Logger.Error("sample generation failed", err)
	return apperrors.HandleBenchmarkError(err, a.ErrWriter, cli.CLIColorProvider{})
}

// verifyQuiet runs consistency verification without any presentation, for
// quiet mode where AnalyzeResults' sections would pollute the output.
func (a *Application) verifyQuiet(results []orchestration.RunResult) int {
	for _, res := range results {
		if res.Err != nil {
			return apperrors.HandleBenchmarkError(res.Err, a.ErrWriter, cli.CLIColorProvider{})
		}
	}
	if err := orchestration.VerifyConsistency(results, orchestration.DefaultTolerance); err != nil {
		return apperrors.HandleBenchmarkError(err, a.ErrWriter, cli.CLIColorProvider{})
	}
	return apperrors.ExitSuccess
}

// observeMetrics records the run in the Prometheus registry and, when
// requested, prints the text exposition.
func (a *Application) observeMetrics(results []orchestration.RunResult, out io.Writer) {
	reg := metrics.NewRegistry()
	reg.ObserveRun(a.Config.N)
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		reg.ObserveStrategy(res.Name, res.Duration, res.AllocBytes)
		a.Logger.Debug("strategy finished",
			logging.String("strategy", res.Name),
			logging.Dur("duration", res.Duration),
			logging.Uint64("alloc_bytes", res.AllocBytes))
	}
	if a.Config.Metrics {
		fmt.Fprintf(out, "\n--- Metrics ---\n")
		if err := reg.WriteText(out); err != nil {
			a.Logger.Error("failed to write metrics", err)
		}
	}
}
