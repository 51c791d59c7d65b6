package dispatch

import "errors"

var (
	// ErrNilResolver is returned when settings are created without a handler resolver.
	ErrNilResolver = errors.New("handler resolver is required")

	// ErrInvalidSuccessStatus is returned when the success status is not a 2xx code.
	ErrInvalidSuccessStatus = errors.New("success status must be a 2xx code")

	// ErrUnroutable is returned when no handler is registered for a command.
	ErrUnroutable = errors.New("no handler registered for command")

	// ErrNotCommand is returned by a Decoder when the request does not carry a command.
	// The dispatch middleware passes such requests to the next handler.
	ErrNotCommand = errors.New("request does not carry a command")
)
