// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Volkov

// Package store implements the persistence layer of inkwell: a thin DB
// wrapper over database/sql plus one repository per aggregate (accounts,
// articles, sessions). Every statement is parameterised and built with
// squirrel using the placeholder format of the active engine.
package store

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/avolkov/inkwell/internal/config"
	"github.com/avolkov/inkwell/internal/logger"
	"github.com/avolkov/inkwell/migrations"
)

// NewConnect opens a database connection for the configured DSN. A DSN with
// a postgres:// or postgresql:// scheme selects the pgx driver; anything
// else is treated as a SQLite file path. The schema is migrated before the
// connection is handed out.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	var db *DB
	var err error

	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		db, err = NewConnectPostgres(ctx, cfg, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg, log)
	}
	if err != nil {
		return nil, err
	}

	if err = migrations.Migrate(db.DB, db.dialect); err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error migrating database schema")
		return nil, fmt.Errorf("error migrating database schema: %w", err)
	}

	return db, nil
}

// Builder returns the squirrel statement builder configured with the
// placeholder format of the active engine ($N for PostgreSQL, ? for SQLite).
func (db *DB) Builder() sq.StatementBuilderType {
	return db.builder
}

// Dialect returns the goose dialect name of the active engine.
func (db *DB) Dialect() string {
	return db.dialect
}

// IsUniqueViolation reports whether err is the engine's unique-constraint
// violation. Repositories use it to map driver errors to domain sentinels
// without knowing which engine is active.
func (db *DB) IsUniqueViolation(err error) bool {
	return db.classifier.IsUniqueViolation(err)
}
