// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidCredentials covers a missing, unknown or wrong username and
	// password pair without telling which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrForbidden is returned when the authenticated user addresses a
	// resource owned by somebody else.
	ErrForbidden = errors.New("forbidden")

	ErrUnauthenticated = errors.New("request is not authenticated")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrHashingPassword = errors.New("error hashing password")
)
