// internal/app/system/validate/validate.go
//
// Package validate wraps go-playground/validator so handlers get back the
// {field, message} pairs the error envelope expects instead of the
// library's combined error string.
package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/causewayhq/causeway/internal/app/system/httpjson"
	"github.com/go-playground/validator/v10"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// Struct validates a request DTO. Returns nil when valid, otherwise the
// field-level errors ready for httpjson.ValidationFailed.
func Struct(dto any) []httpjson.FieldError {
	err := v.Struct(dto)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []httpjson.FieldError{{Field: "", Message: "invalid request"}}
	}

	out := make([]httpjson.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, httpjson.FieldError{
			Field:   fieldName(fe),
			Message: message(fe),
		})
	}
	return out
}

// fieldName lowercases the first rune of the struct field so the error
// refers to the JSON name convention ("Email" -> "email").
func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

func message(fe validator.FieldError) string {
	field := fieldName(fe)
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "hexcolor":
		return fmt.Sprintf("%s must be a hex color", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
