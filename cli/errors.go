package cli

import (
	"fmt"
	"strings"

	"github.com/gruntwork-io/artifact-search/internal/errors"
	"github.com/gruntwork-io/artifact-search/options"
)

// NoFilesFoundError is returned when the search resolves to no files and the policy is `error`.
type NoFilesFoundError struct {
	SearchPath string
}

func (err NoFilesFoundError) Error() string {
	return fmt.Sprintf("No files were found with the provided path: %s. No artifacts will be uploaded.", err.SearchPath)
}

// NewNoFilesFoundError creates a new NoFilesFoundError.
func NewNoFilesFoundError(searchPath string) error {
	return errors.New(NoFilesFoundError{SearchPath: searchPath})
}

// InvalidOutputFormatError is returned for an unsupported output format.
type InvalidOutputFormatError struct {
	Format string
}

func (err InvalidOutputFormatError) Error() string {
	return fmt.Sprintf("invalid output format %q, supported formats: %s", err.Format, strings.Join(options.OutputFormats, ", "))
}
