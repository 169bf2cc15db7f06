// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. Variable names come from
// the `env` and `envPrefix` tags on [StructuredConfig], e.g. APP_MAX_PER_PAGE
// or STORAGE_DB_DATABASE_URI. Unset variables leave their field at the zero
// value so that later merge steps can tell "absent" from "set".
//
// A value that cannot be converted to its field type yields an error
// wrapping [ErrInvalidEnvConfigs].
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{}); err != nil {
		return fmt.Errorf("%w: error getting env configs: %w", ErrInvalidEnvConfigs, err)
	}

	return nil
}
