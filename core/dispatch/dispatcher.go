package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/commandhttp/core/command"
	"github.com/dmitrymomot/commandhttp/core/logger"
	"github.com/dmitrymomot/commandhttp/core/problem"
)

// Decoder extracts a command from an HTTP request.
// Returning ErrNotCommand marks the request as not carrying a command.
// Any other error is converted into a problem response.
type Decoder func(r *http.Request) (command.Command, error)

// Dispatcher routes decoded commands to their handlers and translates
// handler failures into problem details responses.
// It is safe for concurrent use.
type Dispatcher struct {
	settings *Settings
}

// New creates a dispatcher from validated settings.
func New(settings *Settings) (*Dispatcher, error) {
	if settings == nil {
		return nil, ErrNilResolver
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &Dispatcher{settings: settings}, nil
}

// Dispatch resolves the handler for the command name and invokes it with the payload.
// Returns ErrUnroutable if no handler is registered.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, payload any) error {
	h, ok := d.settings.resolver.Resolve(name)
	if !ok || h == nil {
		return fmt.Errorf("%w: %s", ErrUnroutable, name)
	}
	return command.Execute(command.WithCommandName(ctx, name), h, payload)
}

// ServeCommand invokes the handler for the command and writes the outcome.
// A successful command yields the configured success status with an empty body.
// A failed command yields a problem details document.
// Every path ends in a response; handler errors never propagate to the caller.
func (d *Dispatcher) ServeCommand(w http.ResponseWriter, r *http.Request, name string, payload any) {
	ctx := command.WithCommandName(r.Context(), name)
	ctx = command.WithHeaders(ctx, r.Header)
	r = r.WithContext(ctx)

	h, ok := d.settings.resolver.Resolve(name)
	if !ok || h == nil {
		d.unroutable(w, r, name)
		return
	}

	err := command.Execute(ctx, h, payload)
	if err == nil {
		w.WriteHeader(d.settings.successStatus)
		return
	}

	d.fail(w, r, err)
}

// Middleware returns HTTP middleware that dispatches requests carrying a command.
// Requests for which decode returns ErrNotCommand are passed to next.
//
// Example:
//
//	mux.Handle("PUT /commands/{id}", d.Middleware(binder.Command(registry))(http.NotFoundHandler()))
func (d *Dispatcher) Middleware(decode Decoder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cmd, err := decode(r)
			if errors.Is(err, ErrNotCommand) {
				next.ServeHTTP(w, r)
				return
			}
			if err != nil {
				d.fail(w, r, err)
				return
			}

			if cmd.ID != "" {
				r = r.WithContext(command.WithCommandID(r.Context(), cmd.ID))
			}
			d.ServeCommand(w, r, cmd.Name, cmd.Payload)
		})
	}
}

// Handler returns an HTTP handler that dispatches every request as a command.
// Requests that do not carry a command are answered by the not-found stage.
func (d *Dispatcher) Handler(decode Decoder) http.Handler {
	next := d.settings.notFound
	if next == nil {
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			problem.Write(w, problem.New(http.StatusNotFound))
		})
	}
	return d.Middleware(decode)(next)
}

func (d *Dispatcher) unroutable(w http.ResponseWriter, r *http.Request, name string) {
	d.settings.logger.WarnContext(r.Context(), "no handler registered for command",
		logger.Command(name),
		logger.Method(r.Method),
		logger.Path(r.URL.Path),
	)

	if d.settings.notFound != nil {
		d.settings.notFound.ServeHTTP(w, r)
		return
	}

	details := problem.New(http.StatusNotFound).
		WithDetail(fmt.Sprintf("no handler registered for command %s", name))
	d.write(w, r, details)
}

func (d *Dispatcher) fail(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	name := command.CommandName(ctx)

	details, ok := problem.Convert(err, d.converters()...)
	if !ok {
		// Internal error text stays in the logs
		d.settings.logger.ErrorContext(ctx, "command failed",
			logger.Command(name),
			logger.CommandID(command.CommandID(ctx)),
			logger.Error(err),
		)
		d.write(w, r, problem.Internal(d.settings.defaultStatus))
		return
	}

	details = details.WithDefaults(d.settings.defaultStatus)
	d.settings.logger.DebugContext(ctx, "command failed",
		logger.Command(name),
		logger.StatusCode(details.Status),
		logger.Error(err),
	)
	d.write(w, r, details)
}

func (d *Dispatcher) write(w http.ResponseWriter, r *http.Request, details problem.Details) {
	if details.Instance == "" && d.settings.instance != nil {
		if instance := d.settings.instance(r); instance != "" {
			details = details.WithInstance(instance)
		}
	}
	if err := problem.Write(w, details); err != nil {
		d.settings.logger.ErrorContext(r.Context(), "failed to write problem response",
			logger.StatusCode(details.Status),
			logger.Error(err),
		)
	}
}

func (d *Dispatcher) converters() []problem.Converter {
	chain := make([]problem.Converter, 0, len(d.settings.converters)+1)
	chain = append(chain, problem.FromError)
	return append(chain, d.settings.converters...)
}

// Logger returns the dispatcher's logger.
func (d *Dispatcher) Logger() *slog.Logger {
	return d.settings.logger
}
