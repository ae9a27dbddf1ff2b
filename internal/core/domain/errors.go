package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no dataset rows match an artist.
var ErrNotFound = errors.New("domain: not found")

// LoadError reports a dataset source that could not be read or parsed.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("dataset load failed: %v", e.Err)
	}
	return fmt.Sprintf("dataset load failed (%s): %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError wraps err as a LoadError for source.
func NewLoadError(source string, err error) error {
	return &LoadError{Source: source, Err: err}
}
