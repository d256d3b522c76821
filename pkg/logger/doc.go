// Package logger provides structured logging helpers for grid instances.
//
// The grid never fails a request over bad query input; it drops the
// offending value and logs a warning instead, so every grid carries a
// logger. This package extends log/slog with context extraction and a
// silent default for hosts that do not configure logging.
//
// # Basic Usage
//
// Create a logger with context extractors:
//
//	requestIDExtractor := func(ctx context.Context) (slog.Attr, bool) {
//		if reqID, ok := ctx.Value("request_id").(string); ok && reqID != "" {
//			return slog.String("request_id", reqID), true
//		}
//		return slog.Attr{}, false
//	}
//
//	log := logger.New(requestIDExtractor)
//	ctx := context.WithValue(context.Background(), "request_id", "abc-123")
//	log.InfoContext(ctx, "grid loaded", slog.Int("rows", 42))
//
// Extractors run on every log call, so request-scoped values stay fresh.
//
// # Silent Default
//
// NewNope returns a logger that discards everything. Grids use it when
// no logger is supplied, which keeps dropped-value warnings from
// panicking on a nil logger while staying quiet in tests.
package logger
