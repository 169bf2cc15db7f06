// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations holds the database schema and applies it with goose.
// Every supported driver has its own directory of SQL migrations.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Driver names accepted by [Migrate].
const (
	Postgres = "postgres"
	SQLite   = "sqlite"
)

var (
	ErrNilDB             = errors.New("db is nil")
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// goose dialect and migration directory per driver
var dialects = map[string]struct {
	dialect string
	dir     string
}{
	Postgres: {dialect: "pgx", dir: "postgres"},
	SQLite:   {dialect: "sqlite3", dir: "sqlite"},
}

// Migrate brings the schema of db up to date for the given driver.
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	if db == nil {
		return ErrNilDB
	}

	d, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}

	migrationsFS, err := fs.Sub(embedMigrations, d.dir)
	if err != nil {
		return fmt.Errorf("migration error opening %s migrations: %w", d.dir, err)
	}
	goose.SetBaseFS(migrationsFS)

	if err := goose.SetDialect(d.dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
