package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ContextExtractor extracts a log attribute from a context.
// It returns false when the context carries nothing to log.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

type config struct {
	level      slog.Level
	json       bool
	output     io.Writer
	attrs      []slog.Attr
	extractors []ContextExtractor
	handlerOpt *slog.HandlerOptions
}

// Option configures a logger created with New.
type Option func(*config)

// New creates a structured logger.
// Defaults: text format, info level, stdout.
//
// Example:
//
//	log := logger.New(
//		logger.WithProduction("commandserver"),
//		logger.WithContextExtractors(requestIDExtractor),
//	)
func New(opts ...Option) *slog.Logger {
	cfg := &config{
		level:  slog.LevelInfo,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level}
	if cfg.handlerOpt != nil {
		handlerOpts = cfg.handlerOpt
	}

	var h slog.Handler
	if cfg.json {
		h = slog.NewJSONHandler(cfg.output, handlerOpts)
	} else {
		h = slog.NewTextHandler(cfg.output, handlerOpts)
	}

	if len(cfg.attrs) > 0 {
		h = h.WithAttrs(cfg.attrs)
	}
	if len(cfg.extractors) > 0 {
		h = &contextHandler{Handler: h, extractors: cfg.extractors}
	}

	return slog.New(h)
}

// WithDevelopment configures text output at debug level tagged with the service name.
func WithDevelopment(service string) Option {
	return func(c *config) {
		c.level = slog.LevelDebug
		c.json = false
		c.attrs = append(c.attrs, slog.String("service", service), slog.String("env", "development"))
	}
}

// WithProduction configures JSON output at info level tagged with the service name.
func WithProduction(service string) Option {
	return func(c *config) {
		c.level = slog.LevelInfo
		c.json = true
		c.attrs = append(c.attrs, slog.String("service", service), slog.String("env", "production"))
	}
}

// WithLevel sets the minimum log level.
func WithLevel(level slog.Level) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithJSONFormatter switches output to JSON.
func WithJSONFormatter() Option {
	return func(c *config) {
		c.json = true
	}
}

// WithTextFormatter switches output to logfmt-style text.
func WithTextFormatter() Option {
	return func(c *config) {
		c.json = false
	}
}

// WithOutput sets the log destination.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr adds attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) {
		c.attrs = append(c.attrs, attrs...)
	}
}

// WithContextExtractors adds extractors that inject attributes from the record's context.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		c.extractors = append(c.extractors, extractors...)
	}
}

// WithHandlerOptions overrides the slog handler options entirely.
func WithHandlerOptions(opts *slog.HandlerOptions) Option {
	return func(c *config) {
		c.handlerOpt = opts
	}
}

// SetAsDefault makes the logger the process-wide slog default.
func SetAsDefault(log *slog.Logger) {
	slog.SetDefault(log)
}

// ParseLevel converts a level name (debug, info, warn, error) to slog.Level.
// Unknown names fall back to info.
func ParseLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// contextHandler decorates a handler with attributes extracted from the context.
type contextHandler struct {
	slog.Handler
	extractors []ContextExtractor
}

func (h *contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if ctx != nil {
		for _, extract := range h.extractors {
			if attr, ok := extract(ctx); ok {
				r.AddAttrs(attr)
			}
		}
	}
	return h.Handler.Handle(ctx, r)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithAttrs(attrs), extractors: h.extractors}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithGroup(name), extractors: h.extractors}
}
