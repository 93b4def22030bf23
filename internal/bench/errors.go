// internal/bench/errors.go
// Package: bench
package bench

import "fmt"

// ConnectionError indicates the Ollama daemon could not be reached at all.
// The run aborts before any query is sent.
type ConnectionError struct {
	Host string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("could not connect to Ollama at %s: %v", e.Host, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// ModelNotFoundError indicates the requested model is not installed on the
// daemon. Available carries the installed models for the user-facing hint.
type ModelNotFoundError struct {
	Model     string
	Available []string
}

func (e *ModelNotFoundError) Error() string {
	return fmt.Sprintf("model %q is not available on the Ollama host", e.Model)
}

// StreamError indicates the response stream was interrupted before the
// daemon signalled completion. The partial response is discarded.
type StreamError struct {
	Err error
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("response stream interrupted: %v", e.Err)
}

func (e *StreamError) Unwrap() error { return e.Err }
