package logger

import (
	"context"
	"log/slog"
)

type ctxKey int

const (
	providerKey ctxKey = iota
	attemptKey
)

// WithProvider returns a context annotated with the provider id of the
// login being processed.
func WithProvider(ctx context.Context, providerID string) context.Context {
	return context.WithValue(ctx, providerKey, providerID)
}

// WithAttemptHandle returns a context annotated with the opaque handle of
// the login attempt being processed.
func WithAttemptHandle(ctx context.Context, handle string) context.Context {
	return context.WithValue(ctx, attemptKey, handle)
}

// ProviderExtractor emits the provider id stored by WithProvider.
func ProviderExtractor(ctx context.Context) (slog.Attr, bool) {
	if id, ok := ctx.Value(providerKey).(string); ok && id != "" {
		return slog.String("provider", id), true
	}
	return slog.Attr{}, false
}

// AttemptExtractor emits the attempt handle stored by WithAttemptHandle.
func AttemptExtractor(ctx context.Context) (slog.Attr, bool) {
	if h, ok := ctx.Value(attemptKey).(string); ok && h != "" {
		return slog.String("attempt", h), true
	}
	return slog.Attr{}, false
}
