package entity

import (
	"errors"
	"fmt"
)

// ErrAllSourcesExhausted is returned when every balance source (all RPC
// endpoints and the explorer fallback) failed. It is the only fetch error
// that is fatal to a request.
var ErrAllSourcesExhausted = errors.New("all balance sources exhausted")

// ValidationError reports an input that does not have the shape of a
// Solana address. It is recovered locally by re-prompting the user.
type ValidationError struct {
	Input string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid solana address: %q", e.Input)
}

// NewValidationError builds a ValidationError for the rejected input.
func NewValidationError(input string) *ValidationError {
	return &ValidationError{Input: input}
}

// SourceError reports that a single upstream failed. It is never surfaced
// raw to the user; callers recover with a fallback source or a default.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source %s: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// NewSourceError wraps err with the source identifier it came from.
func NewSourceError(source string, err error) *SourceError {
	return &SourceError{Source: source, Err: err}
}
