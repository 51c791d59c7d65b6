// Package validator provides struct tag based validation for command payloads.
//
// Rules are declared in the `validate` tag, separated by semicolons, with
// comma separated parameters:
//
//	type OpenAccount struct {
//		AccountID string `json:"account_id" validate:"required;max:64"`
//		Owner     string `json:"owner" validate:"required;min:2"`
//		Currency  string `json:"currency" validate:"in:EUR,USD"`
//	}
//
//	if err := validator.ValidateStruct(cmd); err != nil {
//		var verrs validator.ValidationErrors
//		errors.As(err, &verrs)
//	}
//
// Built-in rules: required, min, max, len, uuid, in, positive, nonzero.
// Custom rules are added with RegisterValidator. Fields are reported by their
// JSON name.
//
// ValidationErrors implements problem.Provider, so a failed validation is
// rendered by the dispatcher as a 400 problem document listing every invalid
// field under the "invalid-params" member:
//
//	{
//	  "type": "urn:problem:validation",
//	  "title": "Your request parameters didn't validate.",
//	  "status": 400,
//	  "invalid-params": [{"name": "owner", "rule": "required", "reason": "field is required"}]
//	}
//
// Middleware runs validation for every command in a registry.
package validator
