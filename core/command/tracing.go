package command

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracingMiddleware returns a middleware that wraps every command execution in a span.
// Failed commands record the error and mark the span as failed.
//
// Example:
//
//	registry := m.Build(command.WithMiddleware(
//	    command.TracingMiddleware(otel.Tracer("commands")),
//	))
func TracingMiddleware(tracer trace.Tracer) Middleware {
	return func(next Handler) Handler {
		spanName := "command " + next.Name()
		return &middlewareHandler{
			name: next.Name(),
			fn: func(ctx context.Context, payload any) error {
				attrs := []attribute.KeyValue{attribute.String("command.name", next.Name())}
				if id := CommandID(ctx); id != "" {
					attrs = append(attrs, attribute.String("command.id", id))
				}

				ctx, span := tracer.Start(ctx, spanName,
					trace.WithSpanKind(trace.SpanKindInternal),
					trace.WithAttributes(attrs...),
				)
				defer span.End()

				err := next.Handle(ctx, payload)
				if err != nil {
					span.RecordError(err)
					span.SetStatus(codes.Error, err.Error())
					return err
				}

				span.SetStatus(codes.Ok, "")
				return nil
			},
		}
	}
}
