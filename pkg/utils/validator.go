package utils

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatValidationError turns binding/validation errors into a readable message.
func FormatValidationError(err error) string {
	if err == nil {
		return ""
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, e := range validationErrors {
			messages = append(messages, formatFieldError(e))
		}
		return strings.Join(messages, "; ")
	}

	if jsonErr, ok := err.(*json.UnmarshalTypeError); ok {
		return fmt.Sprintf("field '%s' should be %s", jsonErr.Field, jsonErr.Type.String())
	}

	if _, ok := err.(*json.SyntaxError); ok {
		return "invalid JSON format"
	}

	return err.Error()
}

func formatFieldError(e validator.FieldError) string {
	field := e.Field()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("field '%s' is required", field)
	case "max":
		return fmt.Sprintf("field '%s' must be at most %s characters", field, e.Param())
	case "min":
		return fmt.Sprintf("field '%s' must be at least %s characters", field, e.Param())
	case "oneof":
		return fmt.Sprintf("field '%s' must be one of: %s", field, e.Param())
	case "email":
		return fmt.Sprintf("field '%s' must be a valid email address", field)
	case "gt":
		return fmt.Sprintf("field '%s' must be greater than %s", field, e.Param())
	case "gte":
		return fmt.Sprintf("field '%s' must be greater than or equal to %s", field, e.Param())
	case "lt":
		return fmt.Sprintf("field '%s' must be less than %s", field, e.Param())
	case "lte":
		return fmt.Sprintf("field '%s' must be less than or equal to %s", field, e.Param())
	default:
		return fmt.Sprintf("field '%s' validation failed on '%s' tag", field, e.Tag())
	}
}
