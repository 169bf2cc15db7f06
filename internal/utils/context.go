// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password
// hashing and HTTP response writing.
package utils

import (
	"context"

	"github.com/MKhiriev/go-task-tracker/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key used to store the authenticated user in the
// request context. Use [WithIdentity] and [IdentityFromContext] instead of
// accessing it directly.
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying user as the authenticated
// identity of the current request.
//
// The identity lives on the request context only: it disappears together
// with the request and is never shared between concurrent requests.
func WithIdentity(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, user)
}

// IdentityFromContext retrieves the authenticated user from the context.
//
// Returns the user and an ok flag:
//   - ok == true : an identity is bound to the context
//   - ok == false: the request is anonymous
//
// Example usage:
//
//	identity, ok := utils.IdentityFromContext(ctx)
//	if !ok {
//	    // handle anonymous request
//	}
func IdentityFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(IdentityCtxKey).(models.User)
	return user, ok
}
