package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NewValidator constructs a validator that reports field names from their
// JSON tags, so error maps line up with the wire format clients submit.
func NewValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		tag := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if tag == "-" {
			return ""
		}
		return tag
	})
	return validate
}

// FieldErrors translates a validator error into a field -> messages map.
// Every violated field is reported, not just the first.
func FieldErrors(err error) map[string][]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	fieldErrors := make(map[string][]string, len(validationErrors))
	for _, fieldError := range validationErrors {
		field := fieldError.Field()
		fieldErrors[field] = append(fieldErrors[field], fieldMessage(fieldError))
	}
	return fieldErrors
}

func fieldMessage(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldError.Field())
	case "email":
		return "must be a valid email address"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fieldError.Param(), " ", ", "))
	case "max":
		return fmt.Sprintf("must be at most %s characters", fieldError.Param())
	default:
		return fmt.Sprintf("failed validation on %s", fieldError.Tag())
	}
}
