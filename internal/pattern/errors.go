package pattern

import (
	"fmt"

	"github.com/gruntwork-io/artifact-search/internal/errors"
)

// InvalidPatternError is returned when a search path is malformed or contains no inclusion pattern.
type InvalidPatternError struct {
	SearchPath string
	Reason     string
	Err        error
}

func (err InvalidPatternError) Error() string {
	if err.Err != nil {
		return fmt.Sprintf("invalid search path %q: %s: %v", err.SearchPath, err.Reason, err.Err)
	}

	return fmt.Sprintf("invalid search path %q: %s", err.SearchPath, err.Reason)
}

func (err InvalidPatternError) Unwrap() error {
	return err.Err
}

// MalformedPatternError describes a single entry of a search path that is not a valid glob expression.
type MalformedPatternError struct {
	Pattern string
	Err     error
}

func (err MalformedPatternError) Error() string {
	if err.Err != nil {
		return fmt.Sprintf("malformed pattern %q: %v", err.Pattern, err.Err)
	}

	return fmt.Sprintf("malformed pattern %q", err.Pattern)
}

func (err MalformedPatternError) Unwrap() error {
	return err.Err
}

// NewInvalidPatternError creates a new InvalidPatternError carrying a stack trace.
func NewInvalidPatternError(searchPath, reason string, cause error) error {
	return errors.New(InvalidPatternError{SearchPath: searchPath, Reason: reason, Err: cause})
}
