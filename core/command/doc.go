// Package command provides a type-safe, write-once command handler registry.
//
// Commands represent intent with a one-to-one handler relationship: each
// command type is handled by exactly one handler. Handlers are registered on a
// Module at startup, the module is built into an immutable Registry, and the
// registry is then shared by every request without locking.
//
// # Quick Start
//
//	type CreateUser struct {
//	    Email string
//	    Name  string
//	}
//
//	m := command.NewModule()
//
//	// Handler that only needs the command
//	command.For[CreateUser](m).Handle(func(cmd CreateUser) error {
//	    return users.Insert(cmd.Email, cmd.Name)
//	})
//
//	// Handler that also needs the invocation context
//	command.For[DeleteUser](m).HandleContext(func(ctx context.Context, cmd DeleteUser) error {
//	    return users.Delete(ctx, cmd.ID)
//	})
//
//	registry := m.Build(command.WithMiddleware(command.LoggingMiddleware(logger)))
//
//	h, ok := registry.Resolve("CreateUser")
//	if ok {
//	    err := command.Execute(ctx, h, CreateUser{Email: "user@example.com"})
//	}
//
// # Command Names
//
// The registry key is the command name: the Go type name with pointers
// dereferenced, so CreateUser and *CreateUser share the name "CreateUser".
// Use NameOf to get the name of a command value.
//
// # Registration
//
// Registering a second handler for the same command name returns
// ErrHandlerAlreadyRegistered. Build takes a snapshot, so later changes to the
// module do not affect registries that were already built.
//
// # Invocation Context
//
// Handlers receive the caller's context. Request-scoped data is available
// through CommandID, CommandName, Headers and StartProcessingTime.
// Cancellation is the caller's responsibility; the registry imposes no timeout.
//
// # Panic Recovery
//
// Execute recovers handler panics and returns them as errors wrapping
// ErrHandlerPanicked, so a misbehaving handler never crashes the process.
//
// # Middleware
//
// Middleware wraps every handler at build time to add cross-cutting behavior:
//
//	registry := m.Build(command.WithMiddleware(
//	    command.LoggingMiddleware(logger),
//	    command.TracingMiddleware(otel.Tracer("commands")),
//	))
//
// The first middleware is the outermost one.
package command
