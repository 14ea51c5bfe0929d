package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// ColorProvider supplies ANSI color codes for error messages. It decouples
// error presentation from the ui package so this package stays free of
// presentation dependencies.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

// ExitCode maps an error to the process exit code for its category without
// writing any diagnostic. A nil error yields ExitSuccess.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	}

	var mismatchErr MismatchError
	var domainErr DomainError
	var configErr ConfigError
	var validationErr ValidationError

	switch {
	case errors.As(err, &mismatchErr), errors.As(err, &domainErr):
		return ExitErrorMismatch
	case errors.As(err, &configErr), errors.As(err, &validationErr):
		return ExitErrorConfig
	default:
		return ExitErrorGeneric
	}
}

// HandleBenchmarkError writes a human-readable diagnostic for a failed
// benchmark run and maps the error to a process exit code.
//
// Parameters:
//   - err: The error to handle. A nil error yields ExitSuccess.
//   - out: The writer for the diagnostic message.
//   - colors: Provider of ANSI color codes for the message.
//
// Returns:
//   - int: The exit code corresponding to the error category.
func HandleBenchmarkError(err error, out io.Writer, colors ColorProvider) int {
	code := ExitCode(err)

	switch code {
	case ExitSuccess:

	case ExitErrorTimeout:
		fmt.Fprintf(out, "%sError: the benchmark timed out before all strategies completed.%s\n",
			colors.Red(), colors.Reset())

	case ExitErrorCanceled:
		fmt.Fprintf(out, "%sBenchmark canceled.%s\n", colors.Yellow(), colors.Reset())

	default:
		fmt.Fprintf(out, "%sError: %v%s\n", colors.Red(), err, colors.Reset())
	}

	return code
}
