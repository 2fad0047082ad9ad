// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package journal

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-intercept/internal/config"
	"github.com/MKhiriev/go-intercept/internal/logger"
	"github.com/MKhiriev/go-intercept/migrations"
)

// Open connects to the journal database described by cfg, pings it and
// applies pending migrations.
func Open(ctx context.Context, cfg config.Journal, log *logger.Logger) (*SQLStore, error) {
	if log == nil {
		log = logger.Nop()
	}
	switch cfg.Driver {
	case config.DriverSQLite, config.DriverPostgres:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}

	conn, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "journal.Open").Msg("error opening database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	if cfg.Driver == config.DriverSQLite {
		// database/sql pools connections; SQLite serialises writers anyway.
		conn.SetMaxOpenConns(1)
	} else {
		conn.SetMaxOpenConns(4)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "journal.Open").Msg("error connecting database (ping)")
		conn.Close()
		return nil, fmt.Errorf("error pinging DB: %w", err)
	}

	if err = migrations.Migrate(conn, cfg.Driver); err != nil {
		conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "journal.Open").Str("driver", cfg.Driver).Msg("journal database ready")

	return NewSQLStore(conn, cfg.Driver, log)
}
