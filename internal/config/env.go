// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the CLIENT_, JOURNAL_, SERVER_ and LOG_ variables
// declared by the `env`/`envPrefix` tags, plus CONFIG for the JSON file.
// Free-form values are trimmed and the log level is lower-cased, so values
// copied from a shell or .env file compare the same as flag values.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error reading intercept env configs: %w", err)
	}

	cfg.Client.BaseURL = strings.TrimSpace(cfg.Client.BaseURL)
	cfg.Client.BearerToken = strings.TrimSpace(cfg.Client.BearerToken)
	cfg.Journal.DSN = strings.TrimSpace(cfg.Journal.DSN)
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))

	return nil
}
