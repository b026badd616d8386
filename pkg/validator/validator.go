package validator

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ParseError flattens gin binding errors into a field -> message map
// suitable for the error response envelope.
func ParseError(err error) map[string]string {
	fields := make(map[string]string)

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[fe.Field()] = fieldMessage(fe)
		}
		return fields
	}

	if err != nil { // Non-validator errors (malformed JSON, type mismatches)
		fields["error"] = err.Error()
	}
	return fields
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("'%s' is required", fe.Field())
	case "nefield":
		return fmt.Sprintf("'%s' must differ from '%s'", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("'%s' must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("'%s' must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("'%s' failed validation on the '%s' rule", fe.Field(), fe.Tag())
	}
}
