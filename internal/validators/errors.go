// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrRequiredField    = errors.New("field is required")
	ErrEmptyField       = errors.New("field must not be empty")
	ErrFieldTooLong     = errors.New("field is too long")
	ErrInvalidType      = errors.New("field has an invalid type")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrInvalidUsername  = errors.New("username may contain letters, digits, '.', '_' and '-' and must not be a number")
	ErrPasswordTooLong  = errors.New("password must be 72 bytes or fewer")
)

// ValidationError ties a validation failure to the request field that
// caused it.
type ValidationError struct {
	Field string
	Err   error
}

// NewValidationError returns a *ValidationError for field wrapping err.
func NewValidationError(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Err: err}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
