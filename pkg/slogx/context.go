package slogx

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

func FromContext(ctx context.Context) *slog.Logger {
	l, ok := ctx.Value(ctxKey{}).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return l
}

// WithCorrelationID annotates the context logger with the outbound request's
// correlation ID so SDK log lines can be matched to provider-side logs.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	l := FromContext(ctx)
	return WithContext(ctx, l.With("correlation_id", id))
}
