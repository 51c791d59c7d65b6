package telemetry

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/dmitrymomot/commandhttp/core/logger"
)

// TraceIDExtractor adds the trace ID of the active span to log records.
// Use with logger.WithContextExtractors.
func TraceIDExtractor(ctx context.Context) (slog.Attr, bool) {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.HasTraceID() {
		return slog.Attr{}, false
	}
	return logger.TraceID(sc.TraceID().String()), true
}
