package command

import (
	"context"
	"fmt"
	"reflect"
)

// Handler defines the interface for command handlers.
// Each handler processes a specific command type.
type Handler interface {
	// Name returns the unique command name this handler processes.
	Name() string

	// Handle executes the handler with the given command payload.
	// The payload must be of the type expected by this handler.
	Handle(ctx context.Context, payload any) error
}

// typedHandler is implemented by handlers that know their payload type.
// The registry uses it to decode payloads by command name.
type typedHandler interface {
	PayloadType() reflect.Type
}

// HandlerFunc is a type-safe handler for commands of type T.
// The command name is derived from T.
type HandlerFunc[T any] struct {
	name    string
	cmdType reflect.Type
	fn      func(context.Context, T) error
}

// NewHandlerFunc creates a handler that receives the invocation context and the command.
//
// Example:
//
//	handler := command.NewHandlerFunc(func(ctx context.Context, cmd CreateUser) error {
//	    return db.Insert(ctx, cmd.Email, cmd.Name)
//	})
func NewHandlerFunc[T any](fn func(context.Context, T) error) Handler {
	if fn == nil {
		return nil
	}
	cmdType := reflect.TypeFor[T]()
	return &HandlerFunc[T]{
		name:    getCommandName(cmdType),
		cmdType: cmdType,
		fn:      fn,
	}
}

// NewSimpleHandlerFunc creates a handler that only receives the command.
//
// Example:
//
//	handler := command.NewSimpleHandlerFunc(func(cmd CreateUser) error {
//	    received = append(received, cmd)
//	    return nil
//	})
func NewSimpleHandlerFunc[T any](fn func(T) error) Handler {
	if fn == nil {
		return nil
	}
	return NewHandlerFunc(func(_ context.Context, cmd T) error {
		return fn(cmd)
	})
}

// Name returns the command name this handler processes.
func (h *HandlerFunc[T]) Name() string {
	return h.name
}

// PayloadType returns the command type this handler accepts.
func (h *HandlerFunc[T]) PayloadType() reflect.Type {
	return h.cmdType
}

// Handle executes the handler with the given payload.
// A command and a pointer to it share a name, so both forms are accepted:
// a non-nil pointer is dereferenced for value handlers and a value is
// copied behind a pointer for pointer handlers.
// Returns ErrInvalidPayload for any other payload, including a nil pointer.
func (h *HandlerFunc[T]) Handle(ctx context.Context, payload any) error {
	cmd, ok := coerce[T](payload)
	if !ok {
		return fmt.Errorf("%w: expected %s, got %T", ErrInvalidPayload, h.cmdType, payload)
	}
	return h.fn(ctx, cmd)
}

func coerce[T any](payload any) (T, bool) {
	if cmd, ok := payload.(T); ok {
		return cmd, true
	}
	if p, ok := payload.(*T); ok && p != nil {
		return *p, true
	}

	var zero T
	target := reflect.TypeFor[T]()
	v := reflect.ValueOf(payload)
	if target.Kind() == reflect.Pointer && v.IsValid() && v.Type() == target.Elem() {
		ptr := reflect.New(v.Type())
		ptr.Elem().Set(v)
		return ptr.Interface().(T), true
	}
	return zero, false
}

// Execute runs the handler with panic recovery.
// If the handler panics, the panic is returned as an error wrapping ErrHandlerPanicked.
func Execute(ctx context.Context, handler Handler, payload any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s: %v", ErrHandlerPanicked, handler.Name(), r)
		}
	}()
	return handler.Handle(ctx, payload)
}

// NameOf returns the command name for a given command instance.
func NameOf(cmd any) string {
	if cmd == nil {
		return ""
	}
	return getCommandName(reflect.TypeOf(cmd))
}
