package services

import (
	"errors"

	"github.com/sefask/assignment-api/validation"
)

var (
	// ErrNotFound covers both a missing record and a record owned by
	// someone else; callers must not be able to tell the two apart.
	ErrNotFound = errors.New("not found")

	ErrAlreadyVerified = errors.New("email is already verified")
	ErrMissingCode     = errors.New("no verification code has been issued")
	ErrInvalidCode     = errors.New("invalid verification code")
	ErrExpiredCode     = errors.New("verification code has expired")

	// ErrDuplicateEmail is returned by UserStore.Insert when the unique
	// index rejects the email; signup translates it to a field error.
	ErrDuplicateEmail = errors.New("email is already taken")
)

// ValidationError carries the field->message mapping and, for assignment
// creation, the per-question error list. It is always user-facing and never
// logged as a server fault.
type ValidationError struct {
	Fields    validation.FieldErrors
	Questions []validation.QuestionErrors
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

func NewValidationError(fields validation.FieldErrors) *ValidationError {
	return &ValidationError{Fields: fields}
}

// FieldError builds a ValidationError for a single field.
func FieldError(field, message string) *ValidationError {
	return &ValidationError{Fields: validation.FieldErrors{field: message}}
}
