// internal/cmdutil/run.go
package cmdutil

import (
	"context"
	"errors"
	"fmt"
)

// Exit codes shared by every command.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitUsage    = 2 // bad arguments or unreadable input
	ExitOutput   = 3 // writing results failed
	ExitCanceled = 130
)

// ExitError carries the process exit code for err.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }
func (e *ExitError) Unwrap() error { return e.Err }

// UsageError marks err as a usage/input problem (exit 2).
func UsageError(err error) error {
	if err == nil {
		return nil
	}
	return &ExitError{Code: ExitUsage, Err: err}
}

// Usagef is UsageError(fmt.Errorf(...)).
func Usagef(format string, a ...any) error {
	return UsageError(fmt.Errorf(format, a...))
}

// OutputError marks err as an output failure (exit 3).
func OutputError(err error) error {
	if err == nil {
		return nil
	}
	return &ExitError{Code: ExitOutput, Err: err}
}

// Code maps err to an exit code. Cancellation wins over any wrapped code;
// unclassified errors come from flag/argument parsing and map to ExitUsage.
func Code(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, context.Canceled) {
		return ExitCanceled
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return ExitUsage
}
