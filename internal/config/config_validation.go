// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty address", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs)
	}

	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost must be between %d and %d", ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost)
	}
	if cfg.App.DefaultPerPage < 1 || cfg.App.MaxPerPage < cfg.App.DefaultPerPage {
		return fmt.Errorf("%w: need 1 <= default_per_page <= max_per_page", ErrInvalidAppConfigs)
	}

	return nil
}
