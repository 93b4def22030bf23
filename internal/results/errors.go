// internal/results/errors.go
// Package: results
package results

import "fmt"

// LogReadError reports an existing log file that could not be read or
// parsed. Callers recover by treating the log as empty and surfacing the
// error as a warning.
type LogReadError struct {
	Path string
	Err  error
}

func (e *LogReadError) Error() string {
	return fmt.Sprintf("could not read results log %s: %v", e.Path, e.Err)
}

func (e *LogReadError) Unwrap() error { return e.Err }

// LogWriteError reports a failed rewrite of the log file. The run's result
// is lost; the error is surfaced to the user.
type LogWriteError struct {
	Path string
	Err  error
}

func (e *LogWriteError) Error() string {
	return fmt.Sprintf("could not write results log %s: %v", e.Path, e.Err)
}

func (e *LogWriteError) Unwrap() error { return e.Err }
