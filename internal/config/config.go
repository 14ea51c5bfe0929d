package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/abray/logbench/internal/dataset"
	apperrors "github.com/abray/logbench/internal/errors"
)

// EnvPrefix is the prefix for all environment variable overrides.
const EnvPrefix = "LOGBENCH_"

// Default configuration values.
const (
	// DefaultTimeout bounds the whole benchmark run.
	DefaultTimeout = 1 * time.Minute
	// DefaultPreview is the number of leading elements shown per result set.
	DefaultPreview = 5
	// StrategyAll selects every registered strategy for comparison.
	StrategyAll = "all"
)

// AppConfig holds the complete runtime configuration of the benchmark,
// resolved from CLI flags, environment variables, and defaults (in that
// priority order).
type AppConfig struct {
	// N is the number of samples to generate.
	N int
	// Min is the inclusive lower bound of the sample range.
	Min float64
	// Max is the exclusive upper bound of the sample range.
	Max float64
	// Seed seeds the sample generator; 0 selects a time-derived seed.
	Seed uint64
	// Strategy selects a single strategy by name, or StrategyAll for a
	// comparison run of every registered strategy.
	Strategy string
	// Timeout bounds the total benchmark duration.
	Timeout time.Duration
	// Preview is the number of leading result elements to display (0 hides
	// the preview).
	Preview int
	// OutputFile is a path to save the run report to (empty for no file).
	OutputFile string
	// Quiet reduces output to one machine-readable line per strategy.
	Quiet bool
	// Verbose enables debug logging.
	Verbose bool
	// NoChart suppresses the duration bar chart.
	NoChart bool
	// TUI enables the interactive terminal interface.
	TUI bool
	// Metrics prints Prometheus-format metrics after the run.
	Metrics bool
	// NoColor disables ANSI colors in output.
	NoColor bool
	// Version requests printing version information and exiting.
	Version bool
}

// ParseConfig parses command-line arguments into an AppConfig, applies
// environment variable overrides for flags not explicitly set, and validates
// the result.
//
// Parameters:
//   - programName: The program name used in usage output.
//   - args: The command-line arguments (without the program name).
//   - errWriter: The writer for flag parsing errors and usage text.
//   - availableStrategies: The registered strategy names, for -strategy
//     validation and usage output.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: A ConfigError or ValidationError if parsing or validation fails.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableStrategies []string) (AppConfig, error) {
	cfg := AppConfig{}
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.IntVar(&cfg.N, "n", dataset.DefaultN, "number of samples to generate")
	fs.Float64Var(&cfg.Min, "min", dataset.DefaultMin, "inclusive lower bound of the sample range")
	fs.Float64Var(&cfg.Max, "max", dataset.DefaultMax, "exclusive upper bound of the sample range")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "generator seed (0 = time-derived)")
	fs.StringVar(&cfg.Strategy, "strategy", StrategyAll,
		fmt.Sprintf("strategy to run: %q or one of %s", StrategyAll, strings.Join(availableStrategies, ", ")))
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "maximum total benchmark duration")
	fs.IntVar(&cfg.Preview, "preview", DefaultPreview, "number of leading result elements to display (0 = none)")
	fs.StringVar(&cfg.OutputFile, "output", "", "file to save the run report to")
	fs.StringVar(&cfg.OutputFile, "o", "", "file to save the run report to (shorthand)")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "one machine-readable line per strategy")
	fs.BoolVar(&cfg.Quiet, "q", false, "quiet mode (shorthand)")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "enable debug logging")
	fs.BoolVar(&cfg.Verbose, "v", false, "enable debug logging (shorthand)")
	fs.BoolVar(&cfg.NoChart, "no-chart", false, "suppress the duration bar chart")
	fs.BoolVar(&cfg.TUI, "tui", false, "run the interactive terminal interface")
	fs.BoolVar(&cfg.Metrics, "metrics", false, "print Prometheus-format metrics after the run")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable ANSI colors")
	fs.BoolVar(&cfg.Version, "version", false, "print version information and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, err
		}
		return cfg, apperrors.NewConfigError("invalid arguments: %v", err)
	}

	applyEnvOverrides(&cfg, fs)

	if err := validate(cfg, availableStrategies); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// validate checks configuration invariants that the flag package cannot
// express.
func validate(cfg AppConfig, availableStrategies []string) error {
	if cfg.N <= 0 {
		return apperrors.ValidationError{Field: "n", Message: fmt.Sprintf("must be positive, got %d", cfg.N)}
	}
	if cfg.Max <= cfg.Min {
		return apperrors.ValidationError{Field: "max", Message: fmt.Sprintf("must exceed min (%g), got %g", cfg.Min, cfg.Max)}
	}
	if cfg.Timeout <= 0 {
		return apperrors.ValidationError{Field: "timeout", Message: fmt.Sprintf("must be positive, got %s", cfg.Timeout)}
	}
	if cfg.Preview < 0 {
		return apperrors.ValidationError{Field: "preview", Message: fmt.Sprintf("must not be negative, got %d", cfg.Preview)}
	}
	if cfg.Strategy != StrategyAll {
		found := false
		for _, name := range availableStrategies {
			if name == cfg.Strategy {
				found = true
				break
			}
		}
		if !found {
			return apperrors.ValidationError{
				Field:   "strategy",
				Message: fmt.Sprintf("unknown strategy %q (available: %s, %s)", cfg.Strategy, StrategyAll, strings.Join(availableStrategies, ", ")),
			}
		}
	}
	return nil
}
