package command

import (
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"sort"
)

// Resolver looks up the handler for a command name.
// Implementations must be safe for concurrent use and must not panic;
// a missing handler is reported with false.
type Resolver interface {
	Resolve(name string) (Handler, bool)
}

// RegistryOption configures a Registry at build time.
type RegistryOption func(*registryOptions)

type registryOptions struct {
	middleware []Middleware
}

// WithMiddleware sets middleware applied to every handler in the registry.
// Middleware is applied once at build time in the order provided.
//
// Example:
//
//	registry := m.Build(command.WithMiddleware(
//	    command.LoggingMiddleware(logger),
//	    metricsMiddleware,
//	))
func WithMiddleware(middleware ...Middleware) RegistryOption {
	return func(o *registryOptions) {
		o.middleware = append(o.middleware, middleware...)
	}
}

// Registry is an immutable mapping from command name to handler.
// It is safe for concurrent use.
type Registry struct {
	handlers map[string]Handler
	types    map[string]reflect.Type
	names    []string
}

func newRegistry(handlers map[string]Handler, opts ...RegistryOption) *Registry {
	var o registryOptions
	for _, opt := range opts {
		opt(&o)
	}

	r := &Registry{
		handlers: make(map[string]Handler, len(handlers)),
		types:    make(map[string]reflect.Type, len(handlers)),
		names:    make([]string, 0, len(handlers)),
	}

	for name, h := range handlers {
		// Record the payload type before middleware hides it
		if th, ok := h.(typedHandler); ok {
			r.types[name] = th.PayloadType()
		}
		if len(o.middleware) > 0 {
			h = chainMiddleware(h, o.middleware)
		}
		r.handlers[name] = h
		r.names = append(r.names, name)
	}
	sort.Strings(r.names)

	return r
}

// NewResolver merges the modules into a single registry.
// Returns ErrHandlerAlreadyRegistered if two modules handle the same command.
func NewResolver(modules ...*Module) (*Registry, error) {
	merged := NewModule()
	for _, m := range modules {
		if m == nil {
			continue
		}
		m.mu.Lock()
		handlers := make([]Handler, 0, len(m.handlers))
		for _, h := range m.handlers {
			handlers = append(handlers, h)
		}
		m.mu.Unlock()

		for _, h := range handlers {
			if err := merged.Register(h); err != nil {
				return nil, err
			}
		}
	}
	return merged.Build(), nil
}

// Resolve returns the handler registered for the command name.
// A nil registry resolves nothing.
func (r *Registry) Resolve(name string) (Handler, bool) {
	if r == nil {
		return nil, false
	}
	h, ok := r.handlers[name]
	return h, ok
}

// Has reports whether a handler is registered for the command name.
func (r *Registry) Has(name string) bool {
	if r == nil {
		return false
	}
	_, ok := r.handlers[name]
	return ok
}

// Names returns the registered command names in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	return slices.Clone(r.names)
}

// Len returns the number of registered handlers.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.handlers)
}

// Unmarshal deserializes a command payload from JSON using the registered type.
// Returns ErrUnknownCommand if the name is not registered.
func (r *Registry) Unmarshal(name string, data []byte) (any, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	cmdType, exists := r.types[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	// Create a new instance of the type
	ptr := reflect.New(cmdType)
	if err := json.Unmarshal(data, ptr.Interface()); err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrDecodeCommand, name, err)
	}

	// Return the value (not pointer)
	return ptr.Elem().Interface(), nil
}
