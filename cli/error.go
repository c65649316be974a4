package cli

import (
	"errors"

	"github.com/snail-lang/snail/pkg"
)

// Exit codes for the snail process.
const (
	ExitSuccess = 0
	ExitInput   = 1
	ExitUsage   = 2
)

// UsageError reports a malformed command line: unknown flag, missing flag
// argument, or an invalid flag combination. It maps to exit code 2, and the
// usage synopsis is printed alongside the message.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// usage wraps an error chain as a UsageError.
func usage(err error) error {
	return &UsageError{Err: err}
}

// usagef builds a UsageError from a format string.
func usagef(format string, args ...any) error {
	return usage(pkg.MakeErrorf(format, args...))
}

// InputError reports that program source could not be obtained: missing
// input, an unreadable file, or an interactive stdin with nothing to read.
// It maps to exit code 1.
type InputError struct {
	Err error
}

func (e *InputError) Error() string { return e.Err.Error() }

func (e *InputError) Unwrap() error { return e.Err }

// input wraps an error chain as an InputError.
func input(err error) error {
	return &InputError{Err: err}
}

// exitCode classifies an error into the process exit code it demands.
func exitCode(err error) int {
	var ue *UsageError
	if errors.As(err, &ue) {
		return ExitUsage
	}

	return ExitInput
}
