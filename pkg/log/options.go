package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Option configures a logger.
type Option func(logger *logger)

// WithLevel sets the minimum level of messages to output.
func WithLevel(level Level) Option {
	return func(logger *logger) {
		logger.Logger.SetLevel(level.ToLogrusLevel())
	}
}

// WithOutput sets the writer messages are written to.
func WithOutput(output io.Writer) Option {
	return func(logger *logger) {
		logger.Logger.SetOutput(output)
	}
}

// WithFormatter sets the formatter, e.g. `NewPrettyFormatter()` or `NewJSONFormatter()`.
func WithFormatter(formatter logrus.Formatter) Option {
	return func(logger *logger) {
		logger.Logger.SetFormatter(formatter)
	}
}
