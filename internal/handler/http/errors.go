// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while reading a request. Callers can match
// against them with [errors.Is].
var (
	// ErrMissingCredentials is returned by the auth middleware when the
	// request carries no usable Basic "Authorization" header.
	ErrMissingCredentials = errors.New("missing or malformed basic credentials")

	// ErrMalformedJSON is returned when the request body is not a JSON object.
	ErrMalformedJSON = errors.New("request body is not valid JSON")

	// ErrInvalidUserRef is returned for an empty {user} path segment.
	ErrInvalidUserRef = errors.New("invalid user reference")

	// ErrInvalidTaskID is returned when {task_id} is not a positive integer.
	// It is reported as 404: no task can live at such a path.
	ErrInvalidTaskID = errors.New("invalid task id")

	// ErrInvalidCompleteFilter is returned for a complete query parameter
	// that is not one of 1, 0, true or false.
	ErrInvalidCompleteFilter = errors.New("must be one of 1, 0, true, false")

	ErrRouteNotFound = errors.New("not found")
)
