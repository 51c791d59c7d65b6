package server

import (
	"crypto/tls"
	"fmt"
	"time"
)

// Defaults applied by New and DefaultConfig.
const (
	DefaultAddr            = ":8080"
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
	DefaultMaxHeaderBytes  = 1 << 20
)

// Config is the environment-driven server configuration.
// Zero durations and sizes fall back to the package defaults.
type Config struct {
	Addr string `env:"SERVER_ADDR" envDefault:":8080"`

	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	MaxHeaderBytes  int           `env:"SERVER_MAX_HEADER_BYTES" envDefault:"1048576"`

	// TLS is enabled only when both files are set.
	TLSCertFile string `env:"SERVER_TLS_CERT_FILE"`
	TLSKeyFile  string `env:"SERVER_TLS_KEY_FILE"`
}

// DefaultConfig returns a plain HTTP configuration using the package defaults.
func DefaultConfig() Config {
	return Config{
		Addr:            DefaultAddr,
		ReadTimeout:     DefaultReadTimeout,
		WriteTimeout:    DefaultWriteTimeout,
		IdleTimeout:     DefaultIdleTimeout,
		ShutdownTimeout: DefaultShutdownTimeout,
		MaxHeaderBytes:  DefaultMaxHeaderBytes,
	}
}

// NewFromConfig creates a Server from cfg. Options in opts are applied after
// the configuration and take precedence.
func NewFromConfig(cfg Config, opts ...Option) (*Server, error) {
	if cfg.Addr == "" {
		return nil, ErrMissingAddress
	}

	var all []Option
	for _, d := range []struct {
		value time.Duration
		opt   func(time.Duration) Option
	}{
		{cfg.ReadTimeout, WithReadTimeout},
		{cfg.WriteTimeout, WithWriteTimeout},
		{cfg.IdleTimeout, WithIdleTimeout},
		{cfg.ShutdownTimeout, WithShutdownTimeout},
	} {
		if d.value > 0 {
			all = append(all, d.opt(d.value))
		}
	}
	if cfg.MaxHeaderBytes > 0 {
		all = append(all, WithMaxHeaderBytes(cfg.MaxHeaderBytes))
	}

	if cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		tlsConfig, err := loadKeyPair(cfg.TLSCertFile, cfg.TLSKeyFile)
		if err != nil {
			return nil, err
		}
		all = append(all, WithTLS(tlsConfig))
	}

	return New(cfg.Addr, append(all, opts...)...), nil
}

func loadKeyPair(certFile, keyFile string) (*tls.Config, error) {
	cert, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %s, %s: %v", ErrFailedLoadCert, certFile, keyFile, err)
	}
	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}, nil
}
