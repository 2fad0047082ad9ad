// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package journal

import "errors"

var (
	// ErrEntryExists is returned by Save when an entry with the same ID is
	// already stored.
	ErrEntryExists = errors.New("journal entry already exists")

	// ErrUnsupportedDriver is returned for drivers other than sqlite3 and pgx.
	ErrUnsupportedDriver = errors.New("unsupported journal driver")
)

// Low-level database operation errors, wrapped together with the cause.
var (
	ErrBuildingSQLQuery   = errors.New("error building sql query")
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to execute statement")
	ErrScanningRows       = errors.New("failed to scan journal rows")
)
