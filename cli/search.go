package cli

import (
	"context"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/gruntwork-io/artifact-search/internal/pattern"
	"github.com/gruntwork-io/artifact-search/internal/search"
	"github.com/gruntwork-io/artifact-search/options"
	"github.com/gruntwork-io/artifact-search/pkg/log"
)

func searchAction(opts *options.SearchOptions) cli.ActionFunc {
	return func(cliCtx *cli.Context) error {
		return Run(cliCtx.Context, opts)
	}
}

// Run resolves the search path of the given options, applies the no-files policy and prints the result.
func Run(ctx context.Context, opts *options.SearchOptions) error {
	l := opts.Logger

	patterns, err := pattern.Parse(opts.SearchPath)
	if err != nil {
		return err
	}

	l.Debugf("Searching with %d pattern(s), %d of them exclusions", len(patterns), len(patterns.Excludes()))

	resolver := search.NewResolver(opts.WorkingDir).WithNumWorkers(opts.Parallelism)

	if !opts.IncludeHiddenFiles {
		resolver = resolver.WithExcludeHidden()
	}

	result, err := resolver.Resolve(log.ContextWithLogger(ctx, l), patterns)
	if err != nil {
		return err
	}

	if result.IsEmpty() {
		switch opts.IfNoFilesFound {
		case options.NoFilesError:
			return NewNoFilesFoundError(opts.SearchPath)
		case options.NoFilesIgnore:
			l.Infof("No files were found with the provided path: %s. No artifacts will be uploaded.", opts.SearchPath)
		case options.NoFilesWarn:
			l.Warnf("No files were found with the provided path: %s. No artifacts will be uploaded.", opts.SearchPath)
		}
	} else {
		suffix := ""
		if result.Len() > 1 {
			suffix = "s"
		}

		l.Infof("With the provided path, there will be %d file%s uploaded", result.Len(), suffix)
		l.Debugf("Root artifact directory is %s", result.RootDirectory)
	}

	return writeResult(opts.Writer, opts.OutputFormat, result, opts.Relative)
}

// joinSearchPath appends the positional patterns to the search path, one per line.
func joinSearchPath(searchPath string, args []string) string {
	lines := make([]string, 0, len(args)+1)

	if strings.TrimSpace(searchPath) != "" {
		lines = append(lines, searchPath)
	}

	lines = append(lines, args...)

	return strings.Join(lines, "\n")
}
