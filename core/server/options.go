package server

import (
	"crypto/tls"
	"log/slog"
	"time"
)

// Option configures server behavior.
type Option func(*Server)

// WithTLS configures TLS settings for HTTPS.
// The config must carry the server certificates.
func WithTLS(config *tls.Config) Option {
	return func(s *Server) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.tlsConfig = config
	}
}

// WithLogger sets a custom logger for server operations.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger == nil {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		s.logger = logger
	}
}

// WithShutdownTimeout sets the maximum time to wait for graceful shutdown.
func WithShutdownTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.shutdown = timeout
	}
}

// WithReadTimeout sets the maximum duration for reading the entire request.
func WithReadTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.readTimeout = timeout
	}
}

// WithWriteTimeout sets the maximum duration before timing out writes of the response.
func WithWriteTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.writeTimeout = timeout
	}
}

// WithIdleTimeout sets the maximum time to wait for the next request on keep-alive connections.
func WithIdleTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.idleTimeout = timeout
	}
}

// WithMaxHeaderBytes sets the maximum size of request headers.
func WithMaxHeaderBytes(n int) Option {
	return func(s *Server) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.maxHeaderBytes = n
	}
}
