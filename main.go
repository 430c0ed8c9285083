package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gruntwork-io/artifact-search/cli"
	"github.com/gruntwork-io/artifact-search/internal/errors"
	"github.com/gruntwork-io/artifact-search/options"
)

// The main entrypoint for artifact-search
func main() {
	opts := options.NewSearchOptions()

	defer errors.Recover(checkForErrorsAndExit(opts))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.NewApp(opts)
	err := app.RunContext(ctx, os.Args)

	checkForErrorsAndExit(opts)(err)
}

// If there is an error, display it in the console and exit with a non-zero exit code. Otherwise, exit 0.
func checkForErrorsAndExit(opts *options.SearchOptions) func(error) {
	return func(err error) {
		if err == nil {
			os.Exit(0)
		}

		// the logger is replaced once the log flags are parsed
		logger := opts.Logger

		logger.Error(err.Error())

		if errStack := errors.ErrorStack(err); errStack != "" {
			logger.Trace(errStack)
		}

		os.Exit(errors.ExitCode(err))
	}
}
