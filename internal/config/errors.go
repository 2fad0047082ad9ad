// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [GetClientConfig] and [GetServerConfig] when
// required configuration groups are incomplete or invalid.
var (
	// ErrInvalidClientConfigs indicates invalid client settings (for
	// example, a relative base URL or a negative rate limit).
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
	// ErrInvalidJournalConfigs indicates an unsupported journal driver.
	ErrInvalidJournalConfigs = errors.New("invalid journal configuration")
	// ErrInvalidServerConfigs indicates invalid echo server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
