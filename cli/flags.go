package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/gruntwork-io/artifact-search/options"
	"github.com/gruntwork-io/artifact-search/pkg/log"
)

const (
	FlagNamePath               = "path"
	FlagNameIfNoFilesFound     = "if-no-files-found"
	FlagNameIncludeHiddenFiles = "include-hidden-files"
	FlagNameWorkingDir         = "working-dir"
	FlagNameParallelism        = "parallelism"
	FlagNameOutputFormat       = "output-format"
	FlagNameRelative           = "relative"
	FlagNameLogLevel           = "log-level"
	FlagNameLogFormat          = "log-format"
	FlagNameNoColor            = "no-color"

	envVarPrefix = "ARTIFACT_SEARCH_"

	// actionInputPrefix is the prefix of the environment variables a workflow runner sets for action inputs.
	actionInputPrefix = "INPUT_"
)

// NewFlags returns the flags of the app, bound to the given options.
func NewFlags(opts *options.SearchOptions) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        FlagNamePath,
			Aliases:     []string{"p"},
			EnvVars:     envVars(FlagNamePath, true),
			Usage:       "Newline or comma separated glob patterns of the files to search for. Patterns prefixed with '!' exclude files.",
			Destination: &opts.SearchPath,
		},
		&cli.StringFlag{
			Name:        FlagNameIfNoFilesFound,
			EnvVars:     envVars(FlagNameIfNoFilesFound, true),
			Usage:       fmt.Sprintf("Behavior if no files are found: %s.", joinPolicies(options.NoFilesPolicies)),
			Value:       string(options.DefaultNoFilesPolicy),
			Destination: (*string)(&opts.IfNoFilesFound),
		},
		&cli.BoolFlag{
			Name:        FlagNameIncludeHiddenFiles,
			EnvVars:     envVars(FlagNameIncludeHiddenFiles, true),
			Usage:       "Include files below hidden directories and hidden files matched by wildcards.",
			Destination: &opts.IncludeHiddenFiles,
		},
		&cli.StringFlag{
			Name:        FlagNameWorkingDir,
			EnvVars:     append(envVars(FlagNameWorkingDir, false), "GITHUB_WORKSPACE"),
			Usage:       "The directory relative patterns are resolved against. Default is the current directory.",
			Destination: &opts.WorkingDir,
		},
		&cli.IntFlag{
			Name:        FlagNameParallelism,
			EnvVars:     envVars(FlagNameParallelism, false),
			Usage:       "Number of patterns expanded concurrently. Default is the number of CPUs.",
			Destination: &opts.Parallelism,
		},
		&cli.StringFlag{
			Name:        FlagNameOutputFormat,
			EnvVars:     envVars(FlagNameOutputFormat, false),
			Usage:       fmt.Sprintf("Format of the search result: %s.", strings.Join(options.OutputFormats, ", ")),
			Value:       options.OutputFormatText,
			Destination: &opts.OutputFormat,
		},
		&cli.BoolFlag{
			Name:        FlagNameRelative,
			EnvVars:     envVars(FlagNameRelative, false),
			Usage:       "Print the files relative to the root directory.",
			Destination: &opts.Relative,
		},
		&cli.StringFlag{
			Name:        FlagNameLogLevel,
			EnvVars:     envVars(FlagNameLogLevel, false),
			Usage:       fmt.Sprintf("Sets the logging level: %s.", log.AllLevels.String()),
			Value:       opts.LogLevelStr,
			Destination: &opts.LogLevelStr,
		},
		&cli.StringFlag{
			Name:        FlagNameLogFormat,
			EnvVars:     envVars(FlagNameLogFormat, false),
			Usage:       fmt.Sprintf("Sets the logging format: %s.", strings.Join(options.LogFormats, ", ")),
			Value:       options.LogFormatText,
			Destination: &opts.LogFormat,
		},
		&cli.BoolFlag{
			Name:        FlagNameNoColor,
			EnvVars:     envVars(FlagNameNoColor, false),
			Usage:       "Disable color output.",
			Destination: &opts.DisableLogColors,
		},
	}
}

// envVars returns the environment variable names of the given flag, e.g. `ARTIFACT_SEARCH_IF_NO_FILES_FOUND`,
// followed by the action input name, e.g. `INPUT_IF-NO-FILES-FOUND`, if withInput is set.
func envVars(flagName string, withInput bool) []string {
	name := strings.ToUpper(flagName)
	names := []string{envVarPrefix + strings.ReplaceAll(name, "-", "_")}

	if withInput {
		names = append(names, actionInputPrefix+name)
	}

	return names
}

func joinPolicies(policies []options.NoFilesPolicy) string {
	names := make([]string, len(policies))
	for i, policy := range policies {
		names[i] = policy.String()
	}

	return strings.Join(names, ", ")
}
