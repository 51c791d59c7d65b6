package command

import (
	"context"
	"fmt"
	"maps"
	"sync"
)

// Module collects handler registrations before they are built into a Registry.
// A command name can be registered only once.
type Module struct {
	mu       sync.Mutex
	handlers map[string]Handler
}

// NewModule creates an empty module.
func NewModule() *Module {
	return &Module{handlers: make(map[string]Handler)}
}

// Register registers a handler for its command type.
// Returns ErrHandlerAlreadyRegistered if the command already has a handler.
func (m *Module) Register(handler Handler) error {
	if handler == nil {
		return ErrNilHandler
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	cmdName := handler.Name()
	if _, exists := m.handlers[cmdName]; exists {
		return fmt.Errorf("%w: %s", ErrHandlerAlreadyRegistered, cmdName)
	}

	m.handlers[cmdName] = handler
	return nil
}

// MustRegister is like Register but panics on error.
// Useful for wiring handlers at startup.
func (m *Module) MustRegister(handlers ...Handler) {
	for _, h := range handlers {
		if err := m.Register(h); err != nil {
			panic(err)
		}
	}
}

// Build finalizes the module into an immutable registry.
// The registry holds a snapshot: registrations made afterwards are not visible to it.
func (m *Module) Build(opts ...RegistryOption) *Registry {
	m.mu.Lock()
	handlers := maps.Clone(m.handlers)
	m.mu.Unlock()

	return newRegistry(handlers, opts...)
}

// Registration registers handlers for commands of type T.
// Obtain one with For.
type Registration[T any] struct {
	module *Module
}

// For starts a registration for commands of type T on the module.
//
// Example:
//
//	command.For[CreateUser](m).Handle(func(cmd CreateUser) error {
//	    return nil
//	})
func For[T any](m *Module) Registration[T] {
	return Registration[T]{module: m}
}

// Handle registers a handler that only receives the command.
func (r Registration[T]) Handle(fn func(T) error) error {
	return r.module.Register(NewSimpleHandlerFunc(fn))
}

// HandleContext registers a handler that receives the invocation context and the command.
func (r Registration[T]) HandleContext(fn func(context.Context, T) error) error {
	return r.module.Register(NewHandlerFunc(fn))
}
