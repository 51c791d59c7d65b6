// Package dispatch exposes command handlers over HTTP.
//
// A Dispatcher sits at the HTTP boundary. For every request carrying a
// command it resolves the registered handler, invokes it synchronously and
// writes the outcome: an empty success response, or an RFC 7807 problem
// details document when the handler fails.
//
// # Error translation
//
// Handler errors are translated by a chain of problem.Converter values.
// problem.FromError always runs first so handlers can fail with a
// *problem.Error directly. Configured converters run next in the order they
// were added; the first one that claims the error wins. A converter that
// panics is skipped. Errors no converter claims become a bare problem with the
// default status and no detail, so internal error text is only logged.
//
// Basic usage:
//
//	m := command.NewModule()
//	command.For[CreateUser](m).HandleContext(createUser)
//	registry := m.Build(command.WithMiddleware(command.LoggingMiddleware(log)))
//
//	settings, err := dispatch.NewSettings(registry,
//	    dispatch.WithConverters(
//	        problem.Is(ErrUserExists, problem.New(http.StatusConflict)),
//	    ),
//	    dispatch.WithLogger(log),
//	)
//	if err != nil {
//	    return err
//	}
//	d, err := dispatch.New(settings)
//	if err != nil {
//	    return err
//	}
//
//	mux := http.NewServeMux()
//	mux.Handle("PUT /commands/{id}", d.Handler(binder.Command(registry)))
//
// Commands without a handler yield 404 unless a not-found stage is
// configured with WithNotFoundHandler.
package dispatch
