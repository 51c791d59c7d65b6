package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/commandhttp/core/config"
	"github.com/dmitrymomot/commandhttp/core/logger"
	"github.com/dmitrymomot/commandhttp/core/server"
	"github.com/dmitrymomot/commandhttp/core/telemetry"
	"github.com/dmitrymomot/commandhttp/middleware"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg Config
	config.MustLoad(&cfg) // panic on error

	mode := logger.WithDevelopment(cfg.AppName)
	if cfg.IsProduction() {
		mode = logger.WithProduction(cfg.AppName)
	}
	log := logger.New(
		mode,
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithAttr(logger.Version(version)),
		logger.WithContextExtractors(middleware.RequestIDExtractor, telemetry.TraceIDExtractor),
	)
	logger.SetAsDefault(log)

	if cfg.Telemetry.ServiceName == "" {
		cfg.Telemetry.ServiceName = cfg.AppName
	}
	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		log.Error("Failed to setup tracing", logger.Component("telemetry"), logger.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Error("Failed to flush traces", logger.Component("telemetry"), logger.Error(err))
		}
	}()

	h, err := newHandler(cfg, log, newAccounts())
	if err != nil {
		log.Error("Failed to build command handler", logger.Component("dispatch"), logger.Error(err))
		os.Exit(1)
	}

	s, err := server.NewFromConfig(cfg.Server, server.WithLogger(log.With(logger.Component("server"))))
	if err != nil {
		log.Error("Failed to create server", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(s.Run(ctx, h))

	if err := eg.Wait(); err != nil {
		log.Error("Failed to run server", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}

	log.Info("Application stopped")
}
