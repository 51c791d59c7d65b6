package problem

import "errors"

var (
	// ErrInvalidStatus is returned when a status code is outside the 100-599 range.
	ErrInvalidStatus = errors.New("invalid HTTP status code")

	// ErrInvalidDocument is returned when a problem document cannot be decoded.
	ErrInvalidDocument = errors.New("invalid problem document")

	// ErrEncodeDocument is returned when a problem document cannot be encoded.
	ErrEncodeDocument = errors.New("failed to encode problem document")
)
