// Package logger provides structured logging utilities built on Go's standard slog package.
// It offers a logger factory with environment presets, context-aware attribute
// extraction, and a set of attribute helpers for consistent key naming.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/commandhttp/core/logger"
//
//	// Development: text format, debug level, stdout
//	log := logger.New(logger.WithDevelopment("commandserver"))
//
//	// Production: JSON format, info level, stdout
//	log := logger.New(logger.WithProduction("commandserver"))
//
//	log.Info("Server starting",
//		logger.Component("server"),
//		logger.Event("startup"),
//	)
//
// # Context-Aware Logging
//
// Extractors pull request-scoped values out of the context passed to the
// *Context logging methods:
//
//	func requestIDExtractor(ctx context.Context) (slog.Attr, bool) {
//		if id, ok := middleware.RequestIDFromContext(ctx); ok {
//			return logger.RequestID(id), true
//		}
//		return slog.Attr{}, false
//	}
//
//	log := logger.New(
//		logger.WithProduction("commandserver"),
//		logger.WithContextExtractors(requestIDExtractor),
//	)
//
//	log.InfoContext(ctx, "Processing request")
//	// {"level":"INFO","msg":"Processing request","request_id":"..."}
//
// # Attribute Helpers
//
// Helpers return an empty slog.Attr for empty input, so they can be passed
// unconditionally:
//
//	log.Error("Command failed",
//		logger.Command("CreateUser"),
//		logger.CommandID(id),
//		logger.Error(err), // no-op when err is nil
//		logger.Duration(time.Since(start)),
//	)
//
// # Testing with Custom Output
//
//	var buf bytes.Buffer
//	log := logger.New(logger.WithJSONFormatter(), logger.WithOutput(&buf))
//	log.Info("Test message", logger.Component("test"))
//	assert.Contains(t, buf.String(), `"component":"test"`)
package logger
