// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-task-tracker/internal/config"
	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/migrations"
	"github.com/sethvargo/go-retry"
)

// ErrUnsupportedDriver is returned by [NewDB] for an unknown driver name.
var ErrUnsupportedDriver = errors.New("unsupported database driver")

// maxReadRetries bounds how many times a read is repeated after a
// transient failure.
const maxReadRetries = 3

// DB wraps *sql.DB with the driver specific pieces the repositories need:
// the placeholder format for generated SQL and the error classifier.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	retryBase          time.Duration
	logger             *logger.Logger
}

// NewDB opens the database selected by cfg.Driver.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		log.Error().Str("func", "NewDB").Str("driver", cfg.Driver).Msg("unsupported database driver")
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

func newDB(conn *sql.DB, driver string, placeholder sq.PlaceholderFormat, classifier ErrorClassificator, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		driver:             driver,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classifier,
		retryBase:          50 * time.Millisecond,
		logger:             log,
	}
}

// Driver returns the driver name the connection was opened with.
func (db *DB) Driver() string {
	return db.driver
}

// Migrate applies the embedded schema migrations for the current driver.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.driver)
}

// withReadRetry runs fn and repeats it while it fails with an error the
// classifier reports as [Retryable]. Only idempotent reads may use it.
func (db *DB) withReadRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(maxReadRetries, retry.NewExponential(db.retryBase))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && db.errorClassificator.Classify(err) == Retryable {
			db.logger.Warn().Err(err).Str("func", "*DB.withReadRetry").Msg("transient database error, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}
