// Package ctxlog carries the per-run crossgrid logger (the one holding the
// run_id) from the CLI down to command handlers.
package ctxlog

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// WithLogger attaches l to ctx.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the logger attached by WithLogger, or slog.Default()
// for a nil context, a context without one, or a nil logger.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	if l, _ := ctx.Value(ctxKey{}).(*slog.Logger); l != nil {
		return l
	}
	return slog.Default()
}
