// Package log provides a leveled logger with structured logging support.
package log

import "context"

type ctxKey byte

const loggerContextKey ctxKey = iota

var (
	// std is the name of the default logger.
	std = New()
)

// Default returns the standard logger, used when no logger is given explicitly or carried by the context.
// It is highly recommended not to use it to avoid conflicts in tests.
func Default() Logger {
	return std
}

// ContextWithLogger returns a new context that carries the given logger.
func ContextWithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

// LoggerFromContext returns the logger stored in the context, or the standard logger if there is none.
func LoggerFromContext(ctx context.Context) Logger {
	if logger, ok := ctx.Value(loggerContextKey).(Logger); ok && logger != nil {
		return logger
	}

	return std
}
