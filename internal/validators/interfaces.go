// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user and task payloads before they reach
// storage.
//
// [UserValidator] understands [models.UserCreate] and [models.UserUpdate];
// [TaskValidator] understands [models.TaskCreate] and [models.TaskUpdate].
// Both can be scoped to a subset of fields by name.
//
// Failures are reported as *ValidationError carrying the offending request
// field, so the transport layer can point the client at it.
package validators

import "context"

// Validator checks one payload value. When fields are given, only the rules
// for those request fields run, in a fixed order; the first failure wins.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
