package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors carries per-field validation messages so handlers can return
// them the way clients expect: {"error": "validation failed", "fields": {...}}.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for field, msg := range fe {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// BindingErrors translates gin binding failures into FieldErrors. Non-validator
// errors (malformed JSON etc.) collapse into a single "body" entry.
func BindingErrors(err error) FieldErrors {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"body": err.Error()}
	}

	fe := FieldErrors{}
	for _, v := range verrs {
		field := strings.ToLower(v.Field())
		switch v.Tag() {
		case "required":
			fe[field] = "this field is required"
		case "min":
			fe[field] = fmt.Sprintf("must be at least %s characters", v.Param())
		case "max":
			fe[field] = fmt.Sprintf("must be at most %s characters", v.Param())
		case "email":
			fe[field] = "must be a valid email address"
		case "url":
			fe[field] = "must be a valid URL"
		default:
			fe[field] = "invalid value"
		}
	}
	return fe
}
