package dispatch

import (
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"slices"

	"github.com/dmitrymomot/commandhttp/core/command"
	"github.com/dmitrymomot/commandhttp/core/problem"
)

// Default status codes.
const (
	DefaultStatus        = http.StatusInternalServerError
	DefaultSuccessStatus = http.StatusOK
)

// Settings is the immutable configuration shared by every dispatched request.
type Settings struct {
	resolver      command.Resolver
	converters    []problem.Converter
	defaultStatus int
	successStatus int
	notFound      http.Handler
	instance      func(r *http.Request) string
	logger        *slog.Logger
}

// Option configures Settings.
type Option func(*Settings)

// NewSettings creates dispatch settings around a handler resolver.
//
// Example:
//
//	settings, err := dispatch.NewSettings(registry,
//	    dispatch.WithConverters(
//	        problem.Match(func(e *ValidationError) problem.Details {
//	            return problem.New(http.StatusBadRequest).WithDetail(e.Error())
//	        }),
//	    ),
//	    dispatch.WithLogger(log),
//	)
func NewSettings(resolver command.Resolver, opts ...Option) (*Settings, error) {
	s := &Settings{
		resolver:      resolver,
		defaultStatus: DefaultStatus,
		successStatus: DefaultSuccessStatus,
		logger:        slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// MustNewSettings is like NewSettings but panics on error.
func MustNewSettings(resolver command.Resolver, opts ...Option) *Settings {
	s, err := NewSettings(resolver, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Validate checks the settings for consistency.
func (s *Settings) Validate() error {
	if isNil(s.resolver) {
		return ErrNilResolver
	}
	if !problem.ValidStatus(s.defaultStatus) {
		return fmt.Errorf("default status: %w: %d", problem.ErrInvalidStatus, s.defaultStatus)
	}
	if s.successStatus < 200 || s.successStatus > 299 {
		return fmt.Errorf("%w: %d", ErrInvalidSuccessStatus, s.successStatus)
	}
	return nil
}

// Resolver returns the configured handler resolver.
func (s *Settings) Resolver() command.Resolver {
	return s.resolver
}

// DefaultStatus returns the status used for unclassified failures.
func (s *Settings) DefaultStatus() int {
	return s.defaultStatus
}

// SuccessStatus returns the status written when a command succeeds.
func (s *Settings) SuccessStatus() int {
	return s.successStatus
}

// Converters returns a copy of the configured converter chain.
func (s *Settings) Converters() []problem.Converter {
	return slices.Clone(s.converters)
}

// WithConverters appends converters to the chain.
// Converters run in the order they were added; the first match wins.
func WithConverters(converters ...problem.Converter) Option {
	return func(s *Settings) {
		s.converters = append(slices.Clone(s.converters), converters...)
	}
}

// WithDefaultStatus sets the status used when no converter claims an error.
func WithDefaultStatus(status int) Option {
	return func(s *Settings) {
		s.defaultStatus = status
	}
}

// WithSuccessStatus sets the status written when a command succeeds.
func WithSuccessStatus(status int) Option {
	return func(s *Settings) {
		s.successStatus = status
	}
}

// WithNotFoundHandler sets the next stage for commands without a handler.
// By default a 404 problem document is written.
func WithNotFoundHandler(h http.Handler) Option {
	return func(s *Settings) {
		s.notFound = h
	}
}

// WithInstance sets a function that derives the problem instance URI from the request.
// It is only used when the converted problem has no instance of its own.
//
// Example:
//
//	dispatch.WithInstance(func(r *http.Request) string {
//	    if id, ok := middleware.RequestIDFromContext(r.Context()); ok {
//	        return "urn:uuid:" + id
//	    }
//	    return ""
//	})
func WithInstance(fn func(r *http.Request) string) Option {
	return func(s *Settings) {
		s.instance = fn
	}
}

// WithLogger sets the logger for dispatch diagnostics.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// isNil reports whether the resolver is nil, including a typed nil pointer
// stored in the interface.
func isNil(resolver command.Resolver) bool {
	if resolver == nil {
		return true
	}
	v := reflect.ValueOf(resolver)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Slice, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
