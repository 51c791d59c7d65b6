package validator

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// ValidatorFunc is a function that validates a value and returns a Rule
type ValidatorFunc func(field string, value reflect.Value, params []string) Rule

var (
	registryMu sync.RWMutex
	registry   = map[string]ValidatorFunc{
		"required": requiredValidator,
		"min":      minValidator,
		"max":      maxValidator,
		"len":      lenValidator,
		"uuid":     uuidValidator,
		"in":       inValidator,
		"positive": positiveValidator,
		"nonzero":  nonZeroValidator,
	}
)

// RegisterValidator adds a custom validator function to the registry
func RegisterValidator(name string, fn ValidatorFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// ValidateStruct validates a struct based on its `validate` field tags.
// Rules are separated by semicolons and parameters by commas:
//
//	type WithdrawFunds struct {
//		AccountID string `validate:"required;max:64"`
//		Currency  string `validate:"in:EUR,USD"`
//		Amount    int64  `validate:"positive"`
//	}
//
// Returns ValidationErrors listing every invalid field.
func ValidateStruct(v any) error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ErrNotStruct
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return ErrNotStruct
	}

	var errs ValidationErrors
	validateStructRecursive(rv, "", &errs)

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

func validateStructRecursive(rv reflect.Value, prefix string, errs *ValidationErrors) {
	rt := rv.Type()

	for i := range rv.NumField() {
		structField := rt.Field(i)
		if !structField.IsExported() {
			continue
		}

		field := rv.Field(i)
		tag := structField.Tag.Get("validate")
		if tag == "-" {
			continue
		}

		fieldPath := fieldName(structField)
		if prefix != "" {
			fieldPath = prefix + "." + fieldPath
		}

		// Nested structs are always walked
		if field.Kind() == reflect.Struct && tag == "" {
			validateStructRecursive(field, fieldPath, errs)
			continue
		}

		if field.Kind() == reflect.Pointer {
			switch {
			case field.IsNil():
				if tag != "" {
					validateField(fieldPath, field, tag, errs)
				}
			case field.Elem().Kind() == reflect.Struct && tag == "":
				validateStructRecursive(field.Elem(), fieldPath, errs)
			case tag != "":
				validateField(fieldPath, field.Elem(), tag, errs)
			}
			continue
		}

		if tag == "" {
			continue
		}

		validateField(fieldPath, field, tag, errs)
	}
}

// fieldName reports fields by their JSON name, the name clients sent.
func fieldName(f reflect.StructField) string {
	if name, _, _ := strings.Cut(f.Tag.Get("json"), ","); name != "" && name != "-" {
		return name
	}
	return f.Name
}

func validateField(fieldPath string, field reflect.Value, tag string, errs *ValidationErrors) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for ruleStr := range strings.SplitSeq(tag, ";") {
		ruleStr = strings.TrimSpace(ruleStr)
		if ruleStr == "" {
			continue
		}

		ruleName, paramStr, _ := strings.Cut(ruleStr, ":")
		ruleName = strings.TrimSpace(ruleName)

		var params []string
		if paramStr = strings.TrimSpace(paramStr); paramStr != "" {
			params = strings.Split(paramStr, ",")
			for i := range params {
				params[i] = strings.TrimSpace(params[i])
			}
		}

		if validatorFn, ok := registry[ruleName]; ok {
			rule := validatorFn(fieldPath, field, params)
			if !rule.Check() {
				rule.Error.Rule = ruleName
				errs.Add(rule.Error)
			}
		}
	}
}

// Built-in validators

func pass() Rule {
	return Rule{Check: func() bool { return true }}
}

func requiredValidator(field string, value reflect.Value, params []string) Rule {
	return Rule{
		Check: func() bool {
			switch value.Kind() {
			case reflect.String:
				return strings.TrimSpace(value.String()) != ""
			case reflect.Slice, reflect.Map, reflect.Array:
				return value.Len() > 0
			case reflect.Pointer, reflect.Interface:
				return !value.IsNil()
			default:
				// For numbers, consider zero values as empty
				return !value.IsZero()
			}
		},
		Error: ValidationError{Field: field, Message: "field is required"},
	}
}

func minValidator(field string, value reflect.Value, params []string) Rule {
	if len(params) < 1 {
		return pass()
	}

	switch value.Kind() {
	case reflect.String:
		min, _ := strconv.Atoi(params[0])
		return Rule{
			Check: func() bool { return len([]rune(value.String())) >= min },
			Error: ValidationError{Field: field, Message: fmt.Sprintf("must be at least %d characters long", min)},
		}
	case reflect.Slice, reflect.Array:
		min, _ := strconv.Atoi(params[0])
		return Rule{
			Check: func() bool { return value.Len() >= min },
			Error: ValidationError{Field: field, Message: fmt.Sprintf("must have at least %d items", min)},
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		min, _ := strconv.ParseInt(params[0], 10, 64)
		return Rule{
			Check: func() bool { return value.Int() >= min },
			Error: ValidationError{Field: field, Message: fmt.Sprintf("must be at least %d", min)},
		}
	case reflect.Float32, reflect.Float64:
		min, _ := strconv.ParseFloat(params[0], 64)
		return Rule{
			Check: func() bool { return value.Float() >= min },
			Error: ValidationError{Field: field, Message: fmt.Sprintf("must be at least %g", min)},
		}
	default:
		return pass()
	}
}

func maxValidator(field string, value reflect.Value, params []string) Rule {
	if len(params) < 1 {
		return pass()
	}

	switch value.Kind() {
	case reflect.String:
		max, _ := strconv.Atoi(params[0])
		return Rule{
			Check: func() bool { return len([]rune(value.String())) <= max },
			Error: ValidationError{Field: field, Message: fmt.Sprintf("must be at most %d characters long", max)},
		}
	case reflect.Slice, reflect.Array:
		max, _ := strconv.Atoi(params[0])
		return Rule{
			Check: func() bool { return value.Len() <= max },
			Error: ValidationError{Field: field, Message: fmt.Sprintf("must have at most %d items", max)},
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		max, _ := strconv.ParseInt(params[0], 10, 64)
		return Rule{
			Check: func() bool { return value.Int() <= max },
			Error: ValidationError{Field: field, Message: fmt.Sprintf("must be at most %d", max)},
		}
	case reflect.Float32, reflect.Float64:
		max, _ := strconv.ParseFloat(params[0], 64)
		return Rule{
			Check: func() bool { return value.Float() <= max },
			Error: ValidationError{Field: field, Message: fmt.Sprintf("must be at most %g", max)},
		}
	default:
		return pass()
	}
}

func lenValidator(field string, value reflect.Value, params []string) Rule {
	if len(params) < 1 {
		return pass()
	}

	expectedLen, _ := strconv.Atoi(params[0])

	switch value.Kind() {
	case reflect.String:
		return Rule{
			Check: func() bool { return len([]rune(value.String())) == expectedLen },
			Error: ValidationError{Field: field, Message: fmt.Sprintf("must be exactly %d characters long", expectedLen)},
		}
	case reflect.Slice, reflect.Array:
		return Rule{
			Check: func() bool { return value.Len() == expectedLen },
			Error: ValidationError{Field: field, Message: fmt.Sprintf("must have exactly %d items", expectedLen)},
		}
	default:
		return pass()
	}
}

func uuidValidator(field string, value reflect.Value, params []string) Rule {
	if value.Kind() != reflect.String {
		return pass()
	}

	return Rule{
		Check: func() bool {
			// Empty values are left to the required rule
			if value.String() == "" {
				return true
			}
			_, err := uuid.Parse(value.String())
			return err == nil
		},
		Error: ValidationError{Field: field, Message: "must be a valid UUID"},
	}
}

func inValidator(field string, value reflect.Value, params []string) Rule {
	if value.Kind() != reflect.String {
		return pass()
	}

	return Rule{
		Check: func() bool { return slices.Contains(params, value.String()) },
		Error: ValidationError{Field: field, Message: "must be one of: " + strings.Join(params, ", ")},
	}
}

func positiveValidator(field string, value reflect.Value, params []string) Rule {
	switch value.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Rule{
			Check: func() bool { return value.Int() > 0 },
			Error: ValidationError{Field: field, Message: "must be positive"},
		}
	case reflect.Float32, reflect.Float64:
		return Rule{
			Check: func() bool { return value.Float() > 0 },
			Error: ValidationError{Field: field, Message: "must be positive"},
		}
	default:
		return pass()
	}
}

func nonZeroValidator(field string, value reflect.Value, params []string) Rule {
	return Rule{
		Check: func() bool { return !value.IsZero() },
		Error: ValidationError{Field: field, Message: "must not be zero"},
	}
}
