package validator

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrymomot/commandhttp/core/problem"
)

// ErrNotStruct is returned when ValidateStruct receives something other than a struct.
var ErrNotStruct = errors.New("validator: must pass a struct or a pointer to struct")

// ProblemType identifies validation failures in problem documents.
const ProblemType = "urn:problem:validation"

// Rule pairs a check with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// ValidationError describes a single invalid field.
type ValidationError struct {
	Field   string `json:"name"`
	Rule    string `json:"rule"`
	Message string `json:"reason"`
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors collects every invalid field of a value.
type ValidationErrors []ValidationError

// Add appends a field error.
func (e *ValidationErrors) Add(err ValidationError) {
	*e = append(*e, err)
}

// IsEmpty reports whether no field errors were collected.
func (e ValidationErrors) IsEmpty() bool {
	return len(e) == 0
}

// Has reports whether the field has at least one error.
func (e ValidationErrors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Error())
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// ProblemDetails renders the errors as a 400 problem with an invalid-params extension.
func (e ValidationErrors) ProblemDetails() problem.Details {
	return problem.New(http.StatusBadRequest).
		WithType(ProblemType).
		WithTitle("Your request parameters didn't validate.").
		With("invalid-params", []ValidationError(e))
}
