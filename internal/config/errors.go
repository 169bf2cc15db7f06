// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an unknown driver or an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a bcrypt cost out of range).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)

// ErrInvalidEnvConfigs is returned when an environment variable holds a
// value that does not convert to its field type.
var ErrInvalidEnvConfigs = errors.New("invalid environment configuration")
