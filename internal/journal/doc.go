// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package journal records completed HTTP exchanges in a SQL database.
//
// [Recorder] is a response interceptor that turns every reduced
// [models.Response] into an [Entry] and hands it to a [Store]. Recording is
// best effort: a failed Save is logged and never fails the exchange.
//
// [SQLStore] backs the store with database/sql. It speaks to SQLite through
// mattn/go-sqlite3 and to PostgreSQL through pgx's stdlib driver; queries
// are built with squirrel using the placeholder format of the driver. [Open]
// connects, pings and applies the embedded migrations.
package journal
