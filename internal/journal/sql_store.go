// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-intercept/internal/config"
	"github.com/MKhiriev/go-intercept/internal/logger"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

const exchangesTable = "exchanges"

var exchangeColumns = []string{"id", "method", "url", "status", "duration_ms", "error", "created_at"}

// SQLStore is the database/sql implementation of [Store].
type SQLStore struct {
	db      *sql.DB
	builder sq.StatementBuilderType
	driver  string

	logger *logger.Logger
}

var _ Store = (*SQLStore)(nil)

// NewSQLStore wraps an open database. driver selects the placeholder format:
// "$1" for pgx, "?" for sqlite3.
func NewSQLStore(db *sql.DB, driver string, log *logger.Logger) (*SQLStore, error) {
	var format sq.PlaceholderFormat
	switch driver {
	case config.DriverPostgres:
		format = sq.Dollar
	case config.DriverSQLite:
		format = sq.Question
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
	if log == nil {
		log = logger.Nop()
	}

	return &SQLStore{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(format),
		driver:  driver,
		logger:  log,
	}, nil
}

// Save inserts e. A duplicate id yields [ErrEntryExists].
func (s *SQLStore) Save(ctx context.Context, e Entry) error {
	query, args, err := s.builder.
		Insert(exchangesTable).
		Columns(exchangeColumns...).
		Values(e.ID, e.Method, e.URL, e.Status, e.Duration.Milliseconds(), e.Error, e.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrEntryExists, e.ID)
		}
		s.logger.Err(err).Str("func", "SQLStore.Save").Msg("error inserting journal entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// List returns up to limit entries, newest first. A limit of zero or less
// returns every entry.
func (s *SQLStore) List(ctx context.Context, limit int) ([]Entry, error) {
	q := s.builder.
		Select(exchangeColumns...).
		From(exchangesTable).
		OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		s.logger.Err(err).Str("func", "SQLStore.List").Msg("error querying journal")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]Entry, 0)
	for rows.Next() {
		var (
			e          Entry
			durationMS int64
		)
		if err := rows.Scan(&e.ID, &e.Method, &e.URL, &e.Status, &durationMS, &e.Error, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		e.Duration = time.Duration(durationMS) * time.Millisecond
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

// Close closes the underlying database.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
			liteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}

	return false
}
