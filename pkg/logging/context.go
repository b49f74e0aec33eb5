package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// loggerKey is unexported so only this package can place loggers in a
// context.
type loggerKey struct{}

// WithLogger returns a context carrying the given logger. A nil logger
// falls back to the package default, so callers can pass through
// unconditionally.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	if logger == nil {
		logger = Default()
	}
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger carried by ctx, or the package default
// when none was attached.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerKey{}).(*zerolog.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}

// Ctx is a shorter alias for FromContext.
func Ctx(ctx context.Context) *zerolog.Logger {
	return FromContext(ctx)
}
