// Package cli implements the artifact-search command line application.
package cli

import (
	"github.com/gruntwork-io/go-commons/version"
	"github.com/urfave/cli/v2"

	"github.com/gruntwork-io/artifact-search/options"
	"github.com/gruntwork-io/artifact-search/pkg/env"
	"github.com/gruntwork-io/artifact-search/pkg/log"
)

const (
	AppName = "artifact-search"

	noColorEnvName = "NO_COLOR"
)

// NewApp creates the artifact-search CLI App.
func NewApp(opts *options.SearchOptions) *cli.App {
	app := cli.NewApp()
	app.Name = AppName
	app.Usage = "Resolves a newline separated list of glob patterns into the files to upload as an artifact\nand the root directory their paths are relative to."
	app.UsageText = AppName + " [options] [PATTERN...]"
	app.Authors = []*cli.Author{{Name: "Gruntwork", Email: "www.gruntwork.io"}}
	app.Version = version.GetVersion()
	app.Writer = opts.Writer
	app.ErrWriter = opts.ErrWriter
	app.Flags = NewFlags(opts)
	app.Before = beforeAction(opts)
	app.Action = searchAction(opts)
	app.HideHelpCommand = true
	// errors are reported by the caller of RunContext, which also decides the exit code.
	app.ExitErrHandler = func(*cli.Context, error) {}

	return app
}

func beforeAction(opts *options.SearchOptions) cli.BeforeFunc {
	return func(cliCtx *cli.Context) error {
		if err := setupLogger(opts); err != nil {
			return err
		}

		policy, err := options.ParseNoFilesPolicy(string(opts.IfNoFilesFound))
		if err != nil {
			return err
		}

		opts.IfNoFilesFound = policy

		if err := validateOutputFormat(opts.OutputFormat); err != nil {
			return err
		}

		opts.SearchPath = joinSearchPath(opts.SearchPath, cliCtx.Args().Slice())

		return nil
	}
}

func setupLogger(opts *options.SearchOptions) error {
	level, err := log.ParseLevel(opts.LogLevelStr)
	if err != nil {
		return err
	}

	opts.LogLevel = level

	disableColors := opts.DisableLogColors || env.IsSet(noColorEnvName) || !log.IsTerminal(opts.ErrWriter)

	formatter, err := log.ParseFormatter(opts.LogFormat, disableColors)
	if err != nil {
		return err
	}

	opts.Logger = log.New(
		log.WithOutput(opts.ErrWriter),
		log.WithLevel(opts.LogLevel),
		log.WithFormatter(formatter),
	)

	return nil
}
