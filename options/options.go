// Package options provides the set of options that configure a search run of the artifact-search program.
package options

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gruntwork-io/artifact-search/internal/errors"
	"github.com/gruntwork-io/artifact-search/pkg/log"
)

const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	LogFormatText = "text"
	LogFormatJSON = "json"

	defaultLogLevel = log.InfoLevel
)

// OutputFormats are the supported formats of the search result.
var OutputFormats = []string{OutputFormatText, OutputFormatJSON, OutputFormatYAML}

// LogFormats are the supported log formats.
var LogFormats = []string{LogFormatText, LogFormatJSON}

// NoFilesPolicy is the behavior when a search resolves to no files.
type NoFilesPolicy string

const (
	// NoFilesWarn logs a warning and succeeds.
	NoFilesWarn NoFilesPolicy = "warn"
	// NoFilesError fails the run.
	NoFilesError NoFilesPolicy = "error"
	// NoFilesIgnore logs an informational message and succeeds.
	NoFilesIgnore NoFilesPolicy = "ignore"

	DefaultNoFilesPolicy = NoFilesWarn
)

// NoFilesPolicies lists every supported policy.
var NoFilesPolicies = []NoFilesPolicy{NoFilesWarn, NoFilesError, NoFilesIgnore}

// ParseNoFilesPolicy returns the policy with the given name, ignoring case and surrounding whitespace.
func ParseNoFilesPolicy(str string) (NoFilesPolicy, error) {
	name := strings.ToLower(strings.TrimSpace(str))

	for _, policy := range NoFilesPolicies {
		if string(policy) == name {
			return policy, nil
		}
	}

	return "", errors.New(InvalidNoFilesPolicyError{Value: str})
}

func (policy NoFilesPolicy) String() string {
	return string(policy)
}

// InvalidNoFilesPolicyError is returned for an unknown no-files policy.
type InvalidNoFilesPolicyError struct {
	Value string
}

func (err InvalidNoFilesPolicyError) Error() string {
	names := make([]string, len(NoFilesPolicies))
	for i, policy := range NoFilesPolicies {
		names[i] = string(policy)
	}

	return fmt.Sprintf("invalid value %q for if-no-files-found, supported values: %s", err.Value, strings.Join(names, ", "))
}

// SearchOptions represents options that configure the behavior of a search run.
type SearchOptions struct {
	// Writer is where the search result is printed.
	Writer io.Writer

	// ErrWriter is where logs are written.
	ErrWriter io.Writer

	// Logger is the logger configured from the log options.
	Logger log.Logger

	// SearchPath is the raw, newline separated, list of patterns.
	SearchPath string

	// WorkingDir is the base of relative patterns.
	WorkingDir string

	// IfNoFilesFound is the behavior when no files are resolved.
	IfNoFilesFound NoFilesPolicy

	// OutputFormat is the format of the printed result.
	OutputFormat string

	// LogLevelStr is the log level as given on the command line.
	LogLevelStr string

	// LogLevel is the minimum level of printed logs.
	LogLevel log.Level

	// LogFormat is the format of printed logs.
	LogFormat string

	// Parallelism is the number of concurrent pattern expansions, 0 selects the default.
	Parallelism int

	// IncludeHiddenFiles keeps files below hidden directories in wildcard and directory expansions.
	IncludeHiddenFiles bool

	// Relative prints files relative to the root directory.
	Relative bool

	// DisableLogColors disables colors of the text log format.
	DisableLogColors bool
}

// NewSearchOptions creates a new SearchOptions object with reasonable defaults for real usage.
func NewSearchOptions() *SearchOptions {
	return &SearchOptions{
		Writer:         os.Stdout,
		ErrWriter:      os.Stderr,
		Logger:         log.New(log.WithOutput(os.Stderr)),
		IfNoFilesFound: DefaultNoFilesPolicy,
		OutputFormat:   OutputFormatText,
		LogLevelStr:    defaultLogLevel.String(),
		LogLevel:       defaultLogLevel,
		LogFormat:      LogFormatText,
	}
}

// NewSearchOptionsForTest creates a new SearchOptions object writing to the given buffers.
func NewSearchOptionsForTest(writer, errWriter io.Writer) *SearchOptions {
	opts := NewSearchOptions()
	opts.Writer = writer
	opts.ErrWriter = errWriter
	opts.Logger = log.New(log.WithOutput(errWriter), log.WithLevel(log.DebugLevel))

	return opts
}
