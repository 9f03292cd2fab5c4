// Package logger provides structured logging with context extraction and Sentry integration.
//
// This package extends the standard library's log/slog with automatic
// context-based attribute injection and optional Sentry error reporting.
// Login-flow code annotates its contexts with the provider id and attempt
// handle, and every log record emitted under that context carries them.
//
// # Basic Usage
//
// Create a logger with the built-in extractors:
//
//	log := logger.New(logger.ProviderExtractor, logger.AttemptExtractor)
//
//	ctx := logger.WithProvider(context.Background(), "google")
//	log.InfoContext(ctx, "callback received")
//	// Output: {"level":"INFO","msg":"callback received","provider":"google"}
//
// Custom extractors are plain functions:
//
//	requestIDExtractor := func(ctx context.Context) (slog.Attr, bool) {
//		if reqID, ok := ctx.Value(requestIDKey).(string); ok && reqID != "" {
//			return slog.String("request_id", reqID), true
//		}
//		return slog.Attr{}, false
//	}
//
//	log := logger.New(requestIDExtractor, logger.ProviderExtractor)
//
// # Sentry Integration
//
// For production error tracking, use NewWithSentry:
//
//	cfg := logger.SentryConfig{
//		DSN:         os.Getenv("SENTRY_DSN"),
//		Environment: "production",
//		MinLevel:    slog.LevelWarn,
//	}
//
//	log := logger.NewWithSentry(cfg, logger.ProviderExtractor)
//
// Errors create Issues in Sentry; warnings are stored as searchable logs.
// If the DSN is empty the logger falls back to stdout only, so the same
// code path works in development without a Sentry account.
//
// # Handler Decoration
//
// LogHandlerDecorator wraps any slog.Handler to add context extraction:
//
//	jsonHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
//	decorated := logger.NewLogHandlerDecorator(jsonHandler, extractors...)
//	log := slog.New(decorated)
//
// Extractors run on every log call, so request-scoped values stay fresh,
// and an extractor that reports false simply adds nothing for that record.
package logger
