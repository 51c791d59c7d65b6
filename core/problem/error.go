package problem

// Provider is implemented by errors that describe themselves as a problem document.
type Provider interface {
	ProblemDetails() Details
}

// Error is an error that carries the problem document to respond with.
// Handlers return it when they want to choose the HTTP response explicitly.
type Error struct {
	Details Details
	Err     error // optional cause, never written to the response
}

// AsError wraps a problem document into an error.
func AsError(d Details) error {
	return &Error{Details: d}
}

// Wrap attaches a problem document to an existing error.
// The cause stays reachable through errors.Is and errors.As.
func Wrap(err error, d Details) error {
	return &Error{Details: d, Err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Details.Title
	if e.Details.Detail != "" {
		if msg != "" {
			msg += ": "
		}
		msg += e.Details.Detail
	}
	if msg == "" {
		msg = "problem"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status code of the document.
func (e *Error) StatusCode() int {
	return e.Details.Status
}

// ProblemDetails implements Provider.
func (e *Error) ProblemDetails() Details {
	return e.Details
}
