package orchestration

import (
	"fmt"
	"io"

	apperrors "github.com/abray/logbench/internal/errors"
)

// AnalyzeResults processes the results of a benchmark run and generates
// the summary report.
//
// It presents previews and the comparison table, validates that all
// successful strategies produced consistent result sets, and renders the
// duration bar chart. Any strategy failure makes the whole run a failure:
// partial timing comparisons are meaningless when the strategies did not
// all complete over the same data.
//
// Parameters:
//   - samples: The shared sample set, for the generated-data preview.
//   - results: The run results in execution order.
//   - opts: Presentation options.
//   - presenter: The result presenter for display formatting.
//   - errHandler: The handler mapping errors to exit codes.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeResults(samples []float64, results []RunResult, opts PresentationOptions, presenter ResultPresenter, errHandler ErrorHandler, out io.Writer) int {
	var firstErr error
	successCount := 0
	for i := range results {
		if results[i].Err != nil {
			if firstErr == nil {
				firstErr = results[i].Err
			}
		} else {
			successCount++
		}
	}

	if opts.Preview > 0 {
		presenter.PresentPreviews(samples, results, opts.Preview, out)
	}
	presenter.PresentComparisonTable(results, out)

	if successCount < len(results) {
		fmt.Fprintf(out, "\nGlobal Status: Failure. %d of %d strategies did not complete.\n",
			len(results)-successCount, len(results))
		return errHandler.HandleError(firstErr, out)
	}

	if err := VerifyConsistency(results, DefaultTolerance); err != nil {
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! An inconsistency was detected between the results of the strategies.\n")
		return errHandler.HandleError(err, out)
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All result sets are consistent within %.0e.\n", DefaultTolerance)

	if opts.ShowChart {
		presenter.PresentChart(results, out)
	}
	return apperrors.ExitSuccess
}
