package binder

import "errors"

// Error variables define command decoding failures.
// Decoding errors are returned wrapped in a *problem.Error carrying the HTTP status.
var (
	// ErrInvalidCommandID indicates the command id path segment is not a UUID.
	ErrInvalidCommandID = errors.New("invalid command id")

	// ErrMissingContentType indicates the request lacks a Content-Type header.
	ErrMissingContentType = errors.New("missing content type")

	// ErrUnsupportedMediaType indicates the Content-Type is not a command media type
	// (application/vnd.<command>+json).
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrBodyTooLarge indicates the request body exceeds the configured limit.
	ErrBodyTooLarge = errors.New("request body too large")

	// ErrInvalidBody indicates the request body could not be read or decoded
	// into the command type.
	ErrInvalidBody = errors.New("invalid command body")
)
