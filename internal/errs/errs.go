// Package errs defines the error taxonomy shared by the planning pipeline.
// All categories except ExecutionError are detected before any external
// process runs; callers classify with errors.As to pick an exit code.
package errs

import "fmt"

// ValidationError reports malformed or contradictory request input:
// bad duration/segment text, empty segment lists, collapsed segments,
// non-positive target durations.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a missing input file, an unresolvable external tool,
// or a missing output directory during dry-run.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

// NotFoundf builds a NotFoundError from a format string.
func NotFoundf(format string, args ...interface{}) error {
	return &NotFoundError{Msg: fmt.Sprintf(format, args...)}
}

// ConflictError reports that the output file exists and overwrite was not
// requested.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

// Conflictf builds a ConflictError from a format string.
func Conflictf(format string, args ...interface{}) error {
	return &ConflictError{Msg: fmt.Sprintf(format, args...)}
}

// ExecutionError reports that an external process (probe or engine) failed,
// exited non-zero, or could not be launched. It wraps the underlying error
// when one exists.
type ExecutionError struct {
	Msg string
	Err error
}

func (e *ExecutionError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *ExecutionError) Unwrap() error { return e.Err }

// Executionf builds an ExecutionError wrapping err (err may be nil).
func Executionf(err error, format string, args ...interface{}) error {
	return &ExecutionError{Msg: fmt.Sprintf(format, args...), Err: err}
}
