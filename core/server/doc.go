// Package server provides an HTTP server with graceful shutdown, configurable
// timeouts and errgroup-friendly lifecycle management. It wraps the standard
// http.Server.
//
// # Basic Usage
//
//	srv := server.New(":8080",
//		server.WithLogger(log),
//		server.WithShutdownTimeout(10*time.Second),
//	)
//
//	eg, ctx := errgroup.WithContext(ctx)
//	eg.Go(srv.Run(ctx, handler))
//	if err := eg.Wait(); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// # Configuration
//
// Config is loaded from the environment with config.Load:
//
//	SERVER_ADDR              listen address (default :8080)
//	SERVER_READ_TIMEOUT      request read timeout (default 15s)
//	SERVER_WRITE_TIMEOUT     response write timeout (default 15s)
//	SERVER_IDLE_TIMEOUT      keep-alive idle timeout (default 60s)
//	SERVER_SHUTDOWN_TIMEOUT  graceful shutdown timeout (default 30s)
//	SERVER_MAX_HEADER_BYTES  request header limit (default 1MB)
//	SERVER_TLS_CERT_FILE     optional TLS certificate
//	SERVER_TLS_KEY_FILE      optional TLS key
//
//	var cfg server.Config
//	config.MustLoad(&cfg)
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//
// The server binds its listener in Start. Ready reports when it is accepting
// connections and Addr returns the bound address, which makes ":0" usable in
// tests.
package server
