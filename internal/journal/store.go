// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package journal

import "context"

//go:generate mockgen -source=store.go -destination=../mock/journal_store_mock.go -package=mock

// Store persists journal entries.
type Store interface {
	// Save inserts e. It returns [ErrEntryExists] (wrapped) on a duplicate ID.
	Save(ctx context.Context, e Entry) error

	// List returns up to limit entries, newest first. A non-positive limit
	// returns every entry.
	List(ctx context.Context, limit int) ([]Entry, error)
}
