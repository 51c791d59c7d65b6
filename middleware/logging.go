package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/dmitrymomot/commandhttp/core/logger"
)

// LoggingConfig configures the access logging middleware.
type LoggingConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *http.Request) bool

	// Logger is the slog logger to use (default: slog.Default())
	Logger *slog.Logger

	// LogLevel for completed requests (default: slog.LevelInfo)
	LogLevel slog.Level

	// LogHeaders enables logging of request headers (default: false for security)
	LogHeaders bool

	// SensitiveHeaders is a list of header names to redact (default: common auth headers)
	SensitiveHeaders []string

	// SlowRequestThreshold logs slow requests at warning level (default: 5s)
	SlowRequestThreshold time.Duration

	// Component name for structured logging
	Component string
}

// Logging creates an access logging middleware with default configuration.
func Logging(log *slog.Logger) func(http.Handler) http.Handler {
	return LoggingWithConfig(LoggingConfig{Logger: log})
}

// LoggingWithConfig creates an access logging middleware with custom configuration.
// One record is written per request after the response is complete.
// Server errors are logged at error level, client errors and slow requests at warning level.
func LoggingWithConfig(cfg LoggingConfig) func(http.Handler) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	if cfg.LogLevel == 0 {
		cfg.LogLevel = slog.LevelInfo
	}

	if cfg.SensitiveHeaders == nil {
		cfg.SensitiveHeaders = []string{
			"Authorization",
			"Cookie",
			"Set-Cookie",
			"X-Api-Key",
			"X-Auth-Token",
			"X-Csrf-Token",
		}
	}

	if cfg.SlowRequestThreshold <= 0 {
		cfg.SlowRequestThreshold = 5 * time.Second
	}

	if cfg.Component == "" {
		cfg.Component = "http"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			rw := &statusWriter{ResponseWriter: w}

			next.ServeHTTP(rw, r)

			latency := time.Since(start)
			status := rw.Status()

			attrs := []slog.Attr{
				logger.Component(cfg.Component),
				logger.Event("request"),
				logger.Method(r.Method),
				logger.Path(r.URL.Path),
				logger.ClientIP(r.RemoteAddr),
				logger.StatusCode(status),
				logger.BytesOut(rw.bytes),
				logger.Latency(latency),
			}

			if id, ok := RequestIDFromContext(r.Context()); ok {
				attrs = append(attrs, logger.RequestID(id))
			}

			if r.URL.RawQuery != "" {
				attrs = append(attrs, slog.String("query", r.URL.RawQuery))
			}

			if cfg.LogHeaders {
				attrs = append(attrs, headerAttrs(r.Header, cfg.SensitiveHeaders))
			}

			level := cfg.LogLevel
			switch {
			case status >= http.StatusInternalServerError:
				level = slog.LevelError
			case status >= http.StatusBadRequest, latency >= cfg.SlowRequestThreshold:
				level = slog.LevelWarn
			}

			cfg.Logger.LogAttrs(r.Context(), level, "request completed", attrs...)
		})
	}
}

func headerAttrs(h http.Header, sensitive []string) slog.Attr {
	attrs := make([]slog.Attr, 0, len(h))
	for name, values := range h {
		value := strings.Join(values, ", ")
		if slices.ContainsFunc(sensitive, func(s string) bool { return strings.EqualFold(s, name) }) {
			value = "[REDACTED]"
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return logger.Group("headers", attrs...)
}

// statusWriter captures the status code and body size written by the handler.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int64
}

func (w *statusWriter) WriteHeader(status int) {
	if w.status == 0 {
		w.status = status
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += int64(n)
	return n, err
}

// Status returns the written status, 200 if the handler wrote nothing.
func (w *statusWriter) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
