package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorMismatch = 3   // Indicates a result mismatch between strategies.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect
// user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// MismatchError reports that two strategies produced results that differ
// beyond the accepted floating-point tolerance. It identifies the pair of
// strategies, the offending element index, and the observed difference.
type MismatchError struct {
	// StrategyA is the name of the reference strategy.
	StrategyA string
	// StrategyB is the name of the strategy that disagrees with the reference.
	StrategyB string
	// Index is the position of the first element that differs.
	Index int
	// Delta is the absolute difference observed at Index.
	Delta float64
}

// Error returns a formatted message describing the mismatch.
func (e MismatchError) Error() string {
	return fmt.Sprintf("result mismatch between %q and %q at index %d (|delta| = %g)",
		e.StrategyA, e.StrategyB, e.Index, e.Delta)
}

// DomainError reports that a strategy produced a non-finite output, which
// under the sentinel-value convention of the math package means the transform
// was applied to an input outside its domain (log10 of a non-positive value).
type DomainError struct {
	// Strategy is the name of the strategy whose output is non-finite.
	Strategy string
	// Index is the position of the first non-finite output element.
	Index int
	// Value is the non-finite output value (NaN or ±Inf).
	Value float64
}

// Error returns a formatted message describing the domain violation.
func (e DomainError) Error() string {
	return fmt.Sprintf("domain error in %q: non-finite output %v at index %d (input outside (0, +Inf))",
		e.Strategy, e.Value, e.Index)
}

// BenchError encapsulates a strategy execution error while preserving the
// original cause. This allows for structured error handling and inspection
// of what went wrong during a benchmark run.
type BenchError struct {
	// Cause is the underlying error that triggered this benchmark error.
	Cause error
}

// Error returns the error message from the underlying cause.
func (e BenchError) Error() string { return e.Cause.Error() }

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e BenchError) Unwrap() error { return e.Cause }

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline
// exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
