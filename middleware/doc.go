// Package middleware provides net/http middleware for the command endpoint:
// request ID propagation and structured access logging.
//
// All middleware follows the same pattern: a default constructor, a
// WithConfig constructor for customization, an optional Skip function and
// context helpers for values stored on the request.
//
//	handler := middleware.RequestID()(
//		middleware.Logging(log)(mux),
//	)
//
// Request IDs are available to handlers and to the logger:
//
//	log := logger.New(logger.WithContextExtractors(middleware.RequestIDExtractor))
//
//	id, ok := middleware.RequestIDFromContext(r.Context())
package middleware
