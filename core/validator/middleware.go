package validator

import (
	"context"
	"errors"

	"github.com/dmitrymomot/commandhttp/core/command"
)

// Middleware validates struct command payloads before the handler runs.
// Invalid commands fail with ValidationErrors and never reach the handler.
// Payloads that are not structs are passed through unchanged.
//
// Example:
//
//	registry := m.Build(command.WithMiddleware(
//	    command.LoggingMiddleware(log),
//	    validator.Middleware(),
//	))
func Middleware() command.Middleware {
	return func(next command.Handler) command.Handler {
		return &validatingHandler{next: next}
	}
}

type validatingHandler struct {
	next command.Handler
}

func (h *validatingHandler) Name() string {
	return h.next.Name()
}

func (h *validatingHandler) Handle(ctx context.Context, payload any) error {
	if err := ValidateStruct(payload); err != nil && !errors.Is(err, ErrNotStruct) {
		return err
	}
	return h.next.Handle(ctx, payload)
}
