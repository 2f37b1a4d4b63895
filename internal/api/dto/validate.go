package dto

import (
	"fmt"
	"unicode"
)

// FieldError is a single validation failure for a named input field.
type FieldError struct {
	Field   string `json:"property"`
	Message string `json:"message"`
}

// StringField is a tri-state view over an optional request field: absent,
// present with a non-string value, or present as a string. Absence is never
// an error; content rules only run for present string values.
type StringField struct {
	Present  bool
	IsString bool
	Value    string
}

// Set reports whether the field carries a usable non-empty string value.
// Falsy-present values (empty strings) are treated as not set, matching the
// partial-update contract.
func (f StringField) Set() bool {
	return f.Present && f.IsString && f.Value != ""
}

// stringField extracts a tri-state field from a decoded JSON object.
func stringField(raw map[string]any, key string) StringField {
	val, ok := raw[key]
	if !ok {
		return StringField{}
	}
	s, isString := val.(string)
	return StringField{Present: true, IsString: isString, Value: s}
}

// checkType appends a type error when the field is present but not a string.
// It returns true when content rules may run.
func checkType(errs *[]FieldError, f StringField, field, label string) bool {
	if !f.Present {
		return false
	}
	if !f.IsString {
		*errs = append(*errs, FieldError{Field: field, Message: label + " must be a string"})
		return false
	}
	return true
}

// checkLength appends a length error when the value falls outside [min,max].
func checkLength(errs *[]FieldError, f StringField, field, label string, min, max int) {
	n := len([]rune(f.Value))
	if n < min || n > max {
		*errs = append(*errs, FieldError{
			Field:   field,
			Message: fmt.Sprintf("%s must be between %d and %d characters", label, min, max),
		})
	}
}

// isStrongPassword requires at least one lowercase letter, one uppercase
// letter, one digit and one special character.
func isStrongPassword(s string) bool {
	var lower, upper, digit, special bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}
	return lower && upper && digit && special
}

// checkPassword runs the strength and length rules independently; both can
// fire for the same value.
func checkPassword(errs *[]FieldError, f StringField) {
	if !isStrongPassword(f.Value) {
		*errs = append(*errs, FieldError{
			Field:   "password",
			Message: "Password must contain at least 1 lowercase, 1 uppercase, 1 number and 1 special character",
		})
	}
	checkLength(errs, f, "password", "Password", 8, 50)
}
