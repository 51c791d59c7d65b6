package problem

import (
	"errors"
	"net/http"
)

// Converter maps an error to a problem document.
// It returns false when it does not know how to handle the error.
type Converter func(err error) (Details, bool)

// statusCoder is an interface that errors can implement
// to provide a custom HTTP status code.
type statusCoder interface {
	StatusCode() int
}

// Convert runs the converters in order and returns the result of the first one
// that claims the error. Nil converters are skipped, and a converter that panics
// is treated as if it declined.
func Convert(err error, converters ...Converter) (Details, bool) {
	if err == nil {
		return Details{}, false
	}
	for _, convert := range converters {
		if convert == nil {
			continue
		}
		if d, ok := safeConvert(convert, err); ok {
			return d, true
		}
	}
	return Details{}, false
}

func safeConvert(convert Converter, err error) (d Details, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			d, ok = Details{}, false
		}
	}()
	return convert(err)
}

// FromError claims errors anywhere in the chain that implement Provider,
// including *Error.
func FromError(err error) (Details, bool) {
	var p Provider
	if errors.As(err, &p) {
		return p.ProblemDetails(), true
	}
	return Details{}, false
}

// FromStatusCoder claims errors that implement StatusCode() int with a valid status.
// The document only carries the status and its standard text; the error message
// is not exposed.
func FromStatusCoder(err error) (Details, bool) {
	var sc statusCoder
	if !errors.As(err, &sc) {
		return Details{}, false
	}
	status := sc.StatusCode()
	if !ValidStatus(status) {
		return Details{}, false
	}
	return New(status), true
}

// Match returns a converter that claims errors matching type E via errors.As.
//
// Example:
//
//	problem.Match(func(e *ValidationError) problem.Details {
//		return problem.New(http.StatusUnprocessableEntity).WithDetail(e.Error())
//	})
func Match[E error](fn func(E) Details) Converter {
	return func(err error) (Details, bool) {
		var target E
		if errors.As(err, &target) {
			return fn(target), true
		}
		return Details{}, false
	}
}

// Is returns a converter that claims errors matching target via errors.Is.
func Is(target error, d Details) Converter {
	return func(err error) (Details, bool) {
		if errors.Is(err, target) {
			return d, true
		}
		return Details{}, false
	}
}

// Internal returns the generic document used for errors nobody claims.
// It never includes the error text.
func Internal(status int) Details {
	if !ValidStatus(status) {
		status = http.StatusInternalServerError
	}
	return New(status)
}
