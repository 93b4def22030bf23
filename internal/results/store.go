// internal/results/store.go
// Package: results
package results

import (
	"encoding/json"
	"errors"
	"os"
)

// Store reads and rewrites the JSON results log. The whole document is
// loaded into memory, modified, and written back on every append; there is
// no locking, so concurrent writers race (last writer wins).
type Store struct {
	Path string
}

// NewStore returns a store backed by the log file at path. The file is
// created on first append.
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Load returns all logged results in insertion order. A missing file yields
// an empty log and no error. An unreadable or malformed file also yields an
// empty log, along with a *LogReadError the caller should report as a
// warning rather than a failure.
func (s *Store) Load() ([]TestResult, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, &LogReadError{Path: s.Path, Err: err}
	}

	var doc resultLog
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, &LogReadError{Path: s.Path, Err: err}
	}
	return doc.TestResults, nil
}

// Write replaces the log file with the given results, pretty-printed.
func (s *Store) Write(results []TestResult) error {
	doc := resultLog{TestResults: results}
	if doc.TestResults == nil {
		doc.TestResults = []TestResult{}
	}

	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &LogWriteError{Path: s.Path, Err: err}
	}
	b = append(b, '\n')

	if err := os.WriteFile(s.Path, b, 0o644); err != nil {
		return &LogWriteError{Path: s.Path, Err: err}
	}
	return nil
}

// Append loads the existing log, appends r, and rewrites the file. When an
// existing log was unreadable it is replaced by a fresh one; the returned
// warn error describes what was discarded. err is non-nil only when the
// rewrite itself failed, in which case r was not persisted.
func (s *Store) Append(r TestResult) (warn, err error) {
	existing, readErr := s.Load()
	if readErr != nil {
		warn = readErr
		existing = nil
	}
	return warn, s.Write(append(existing, r))
}
