package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/commandhttp/core/binder"
	"github.com/dmitrymomot/commandhttp/core/command"
	"github.com/dmitrymomot/commandhttp/core/dispatch"
	"github.com/dmitrymomot/commandhttp/core/health"
	"github.com/dmitrymomot/commandhttp/core/logger"
	"github.com/dmitrymomot/commandhttp/core/telemetry"
	"github.com/dmitrymomot/commandhttp/core/validator"
	"github.com/dmitrymomot/commandhttp/middleware"
)

// newHandler wires the command endpoint, health probes and HTTP middleware.
func newHandler(cfg Config, log *slog.Logger, store *accounts) (http.Handler, error) {
	m, err := store.module()
	if err != nil {
		return nil, err
	}

	registry := m.Build(command.WithMiddleware(
		command.TracingMiddleware(telemetry.Tracer("commandserver")),
		command.LoggingMiddleware(log),
		validator.Middleware(),
	))
	log.Info("Command handlers registered",
		logger.Component("dispatch"),
		logger.Count("commands", registry.Len()),
		slog.Any("names", registry.Names()),
	)

	settings, err := dispatch.NewSettings(registry,
		dispatch.WithConverters(converters()...),
		dispatch.WithDefaultStatus(cfg.DefaultStatus),
		dispatch.WithSuccessStatus(cfg.SuccessStatus),
		dispatch.WithInstance(requestInstance),
		dispatch.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}

	d, err := dispatch.New(settings)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("PUT /commands/{id}", d.Handler(binder.Command(registry, binder.WithMaxBodyBytes(cfg.MaxBodyBytes))))
	mux.HandleFunc("GET /live", health.Liveness)
	mux.HandleFunc("GET /ready", health.Readiness(log, func(context.Context) error {
		if registry.Len() == 0 {
			return errors.New("no command handlers registered")
		}
		return nil
	}))

	return middleware.RequestID()(
		middleware.LoggingWithConfig(middleware.LoggingConfig{
			Logger: log,
			Skip: func(r *http.Request) bool {
				return r.URL.Path == "/live" || r.URL.Path == "/ready"
			},
		})(mux),
	), nil
}

// requestInstance identifies failed requests by their request ID.
func requestInstance(r *http.Request) string {
	if id, ok := middleware.RequestIDFromContext(r.Context()); ok {
		return "urn:request:" + id
	}
	return ""
}
