package server

import (
	"context"
	"crypto/tls"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/dmitrymomot/commandhttp/core/logger"
)

// Server wraps http.Server with graceful shutdown and configuration options.
// Safe for concurrent use.
type Server struct {
	mu             sync.RWMutex
	addr           string
	listenAddr     net.Addr
	server         *http.Server
	logger         *slog.Logger
	shutdown       time.Duration
	readTimeout    time.Duration
	writeTimeout   time.Duration
	idleTimeout    time.Duration
	maxHeaderBytes int
	tlsConfig      *tls.Config
	running        bool
	ready          chan struct{}
	readyOnce      sync.Once
}

// New creates a new Server with the given address and options.
// Defaults to 30-second graceful shutdown timeout and a no-op logger.
func New(addr string, opts ...Option) *Server {
	s := &Server{
		addr:           addr,
		logger:         slog.New(slog.DiscardHandler),
		shutdown:       DefaultShutdownTimeout,
		readTimeout:    DefaultReadTimeout,
		writeTimeout:   DefaultWriteTimeout,
		idleTimeout:    DefaultIdleTimeout,
		maxHeaderBytes: DefaultMaxHeaderBytes,
		ready:          make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start starts the server and blocks until the context is canceled or an error occurs.
// Returns context.Err() when the context is canceled.
// Use Stop() for graceful shutdown.
func (s *Server) Start(ctx context.Context, handler http.Handler) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return ErrServerAlreadyRunning
	}
	if err := ctx.Err(); err != nil {
		s.mu.Unlock()
		return err
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		s.mu.Unlock()
		return errors.Join(ErrListen, err)
	}
	if s.tlsConfig != nil {
		ln = tls.NewListener(ln, s.tlsConfig)
	}

	s.running = true
	s.listenAddr = ln.Addr()
	s.server = &http.Server{
		Handler:        handler,
		ReadTimeout:    s.readTimeout,
		WriteTimeout:   s.writeTimeout,
		IdleTimeout:    s.idleTimeout,
		MaxHeaderBytes: s.maxHeaderBytes,
		TLSConfig:      s.tlsConfig,
		ErrorLog:       slog.NewLogLogger(s.logger.Handler(), slog.LevelWarn),
	}
	srv := s.server
	s.readyOnce.Do(func() { close(s.ready) })
	s.mu.Unlock()

	errCh := make(chan error, 1)
	go func() {
		s.logger.InfoContext(ctx, "starting server",
			slog.String("addr", ln.Addr().String()),
			slog.Bool("tls", s.tlsConfig != nil),
		)

		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop gracefully shuts down the server using the configured timeout.
// Returns immediately if the server is not running.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running || s.server == nil {
		return nil
	}

	s.logger.Info("shutting down server gracefully", logger.Duration(s.shutdown))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdown)
	defer cancel()

	err := s.server.Shutdown(shutdownCtx)
	s.running = false

	if err != nil {
		s.logger.Error("server shutdown error", logger.Error(err))
		return errors.Join(ErrShutdown, err)
	}

	s.logger.Info("server shutdown complete")
	return nil
}

// Run provides errgroup compatibility for coordinated lifecycle management.
// Returns a function that starts the server, monitors context cancellation,
// and performs graceful shutdown when the context is cancelled.
//
// Example:
//
//	eg, ctx := errgroup.WithContext(ctx)
//	eg.Go(srv.Run(ctx, handler))
//	return eg.Wait()
func (s *Server) Run(ctx context.Context, handler http.Handler) func() error {
	return func() error {
		errCh := make(chan error, 1)
		go func() {
			errCh <- s.Start(ctx, handler)
		}()

		select {
		case <-ctx.Done():
			if stopErr := s.Stop(); stopErr != nil {
				s.logger.Error("failed to stop server during context cancellation", logger.Error(stopErr))
			}
			<-errCh
			return nil
		case err := <-errCh:
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}
	}
}

// Ready returns a channel closed once the server is listening.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Addr returns the address the server listens on.
// Before the server starts it returns the configured address.
func (s *Server) Addr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.listenAddr != nil {
		return s.listenAddr.String()
	}
	return s.addr
}

// Run is a convenience function that creates and runs a server with default settings.
func Run(ctx context.Context, addr string, handler http.Handler) error {
	server := New(addr)
	return server.Start(ctx, handler)
}
