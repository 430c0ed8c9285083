package search

import (
	"fmt"

	"github.com/gruntwork-io/artifact-search/internal/errors"
)

// NotAFileError is returned when a literal inclusion pattern does not name an existing regular file or directory.
type NotAFileError struct {
	Path   string
	Reason string
}

func (err NotAFileError) Error() string {
	return fmt.Sprintf("%s %s", err.Path, err.Reason)
}

// NewNotAFileError creates a new NotAFileError.
func NewNotAFileError(path, reason string) error {
	return errors.New(NotAFileError{
		Path:   path,
		Reason: reason,
	})
}

// FilesystemAccessError is returned when the filesystem cannot be read while expanding a pattern.
type FilesystemAccessError struct {
	Err  error
	Path string
}

func (err FilesystemAccessError) Error() string {
	return fmt.Sprintf("failed to access %s: %v", err.Path, err.Err)
}

func (err FilesystemAccessError) Unwrap() error {
	return err.Err
}

// NewFilesystemAccessError creates a new FilesystemAccessError.
func NewFilesystemAccessError(path string, err error) error {
	return errors.New(FilesystemAccessError{
		Path: path,
		Err:  err,
	})
}
