package command

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/commandhttp/core/logger"
)

// Middleware wraps a Handler to add cross-cutting functionality.
// Middleware can be used for logging, metrics, tracing, validation, etc.
type Middleware func(next Handler) Handler

// middlewareHandler wraps a Handler with middleware functionality.
type middlewareHandler struct {
	name string
	fn   func(ctx context.Context, payload any) error
}

func (h *middlewareHandler) Name() string {
	return h.name
}

func (h *middlewareHandler) Handle(ctx context.Context, payload any) error {
	return h.fn(ctx, payload)
}

// LoggingMiddleware returns a middleware that logs command execution.
// It logs the command name, execution duration, and any errors.
//
// Example:
//
//	registry := m.Build(command.WithMiddleware(command.LoggingMiddleware(log)))
func LoggingMiddleware(log *slog.Logger) Middleware {
	return func(next Handler) Handler {
		return &middlewareHandler{
			name: next.Name(),
			fn: func(ctx context.Context, payload any) error {
				start := time.Now()
				cmdName := next.Name()

				log.DebugContext(ctx, "command started",
					logger.Command(cmdName),
					logger.CommandID(CommandID(ctx)))

				err := next.Handle(WithStartProcessingTime(ctx, start), payload)
				duration := time.Since(start)

				if err != nil {
					log.WarnContext(ctx, "command failed",
						logger.Command(cmdName),
						logger.CommandID(CommandID(ctx)),
						logger.Duration(duration),
						logger.Error(err))
					return err
				}

				log.InfoContext(ctx, "command completed",
					logger.Command(cmdName),
					logger.CommandID(CommandID(ctx)),
					logger.Duration(duration))

				return nil
			},
		}
	}
}
