package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Struct validates v against its `validate` tags and returns a single
// readable error listing every failed field, or nil.
func Struct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	parsed := ParseError(err)
	parts := make([]string, 0, len(parsed))
	for field, msg := range parsed {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return fmt.Errorf("%s", strings.Join(parts, "; "))
}

// ParseError flattens validator errors into a field->message map.
func ParseError(err error) map[string]string {
	errors := make(map[string]string)
	if ve, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range ve {
			errors[fe.Field()] = fmt.Sprintf("failed on the '%s' rule", fe.Tag())
		}
	} else if err != nil {
		errors["error"] = err.Error()
	}
	return errors
}

// Var validates a single value against a rule, e.g. Var(email, "email").
func Var(value interface{}, rule string) error {
	return validate.Var(value, rule)
}
