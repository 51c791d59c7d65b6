package health

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/commandhttp/core/logger"
	"github.com/dmitrymomot/commandhttp/core/problem"
)

// Check verifies a single dependency.
type Check func(context.Context) error

// Readiness returns a handler that runs every check in order.
// The first failing check yields a 503 problem document; its error is only logged.
func Readiness(log *slog.Logger, checks ...Check) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		for _, check := range checks {
			if err := check(ctx); err != nil {
				log.ErrorContext(ctx, "readiness check failed", logger.Error(err))
				_ = problem.Write(w, problem.New(http.StatusServiceUnavailable))
				return
			}
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "READY")
	}
}
