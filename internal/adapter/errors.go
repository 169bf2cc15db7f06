// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// APIError is a non-2xx response decoded from the server's error body.
type APIError struct {
	StatusCode int
	Message    string
	Field      string

	err error
}

func (e *APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: http %d: %s (field %q)", e.err, e.StatusCode, e.Message, e.Field)
	}
	return fmt.Sprintf("%s: http %d: %s", e.err, e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.err
}
