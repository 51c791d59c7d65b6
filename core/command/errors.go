package command

import "errors"

var (
	// ErrHandlerAlreadyRegistered is returned when attempting to register a duplicate handler for a command.
	ErrHandlerAlreadyRegistered = errors.New("handler already registered for command")

	// ErrNilHandler is returned when attempting to register a nil handler.
	ErrNilHandler = errors.New("handler cannot be nil")

	// ErrHandlerPanicked wraps a panic recovered from a handler.
	ErrHandlerPanicked = errors.New("command handler panicked")

	// ErrInvalidPayload is returned when a handler receives a payload of the wrong type.
	ErrInvalidPayload = errors.New("invalid command payload type")

	// ErrUnknownCommand is returned when decoding a command whose type is not registered.
	ErrUnknownCommand = errors.New("command type not registered")

	// ErrDecodeCommand is returned when a command payload cannot be decoded.
	ErrDecodeCommand = errors.New("failed to decode command")
)
