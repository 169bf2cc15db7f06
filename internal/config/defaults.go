// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Defaults returns the configuration used when no other source sets a value.
// It runs against a local SQLite file so the server starts without any
// external infrastructure.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:          "dev",
			PasswordHashCost: bcrypt.DefaultCost,
			DefaultPerPage:   20,
			MaxPerPage:       100,
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverSQLite,
				DSN:    "file:tasks.db?_foreign_keys=on",
			},
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
	}
}
