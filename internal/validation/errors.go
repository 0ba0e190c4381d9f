package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Error describes why a body was rejected. When Unknown is set the request
// carried undeclared fields and Violations is empty.
type Error struct {
	Unknown    []string
	Violations []string
}

func (e *Error) Error() string {
	return e.Message()
}

// Message is the single line returned to clients.
func (e *Error) Message() string {
	if len(e.Unknown) > 0 {
		return "Unknown properties: " + strings.Join(e.Unknown, ", ")
	}
	return strings.Join(e.Violations, ", ")
}

// Details lists the offending field names or the violation messages.
func (e *Error) Details() []string {
	if len(e.Unknown) > 0 {
		return e.Unknown
	}
	return e.Violations
}

func ruleMessage(f Field, err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return f.Name + " is invalid"
	}
	fe := verrs[0]
	if msg, ok := f.Messages[fe.Tag()]; ok {
		return msg
	}
	return formatFieldError(f.Name, fe)
}

func formatFieldError(name string, fe validator.FieldError) string {
	param := fe.Param()
	numeric := isNumberKind(fe.Kind())

	switch fe.Tag() {
	case "min":
		if numeric {
			return name + " must not be less than " + param
		}
		return name + " must be longer than or equal to " + param + " characters"
	case "max":
		if numeric {
			return name + " must not be greater than " + param
		}
		return name + " must be shorter than or equal to " + param + " characters"
	case "gt":
		if param == "0" {
			return name + " must be a positive number"
		}
		return name + " must be greater than " + param
	case "gte":
		return name + " must be greater than or equal to " + param
	case "lte":
		return name + " must be less than or equal to " + param
	case "email":
		return name + " must be an email"
	case "alphanum":
		return name + " must contain only letters and numbers"
	default:
		return name + " failed on the '" + fe.Tag() + "' rule"
	}
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
