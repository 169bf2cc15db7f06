// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-task-tracker/internal/config"
	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// newMockDB returns a postgres flavoured DB backed by sqlmock.
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	db := newDB(conn, config.DriverPostgres, sq.Dollar, NewPostgresErrorClassifier(), logger.Nop())
	db.retryBase = time.Millisecond

	return db, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestNewDB_UnsupportedDriver(t *testing.T) {
	_, err := NewDB(context.Background(), config.DB{Driver: "mysql", DSN: "x"}, logger.Nop())
	if !errors.Is(err, ErrUnsupportedDriver) {
		t.Fatalf("expected ErrUnsupportedDriver, got %v", err)
	}
}

func TestWithReadRetry_RetriesTransientErrors(t *testing.T) {
	db, _ := newMockDB(t)

	calls := 0
	err := db.withReadRetry(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return pgError(pgerrcode.SerializationFailure)
		}
		return nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestWithReadRetry_GivesUp(t *testing.T) {
	db, _ := newMockDB(t)

	calls := 0
	err := db.withReadRetry(context.Background(), func(ctx context.Context) error {
		calls++
		return pgError(pgerrcode.ConnectionFailure)
	})

	if postgresError(err) != pgerrcode.ConnectionFailure {
		t.Fatalf("expected the last driver error, got %v", err)
	}
	if calls != maxReadRetries+1 {
		t.Errorf("expected %d calls, got %d", maxReadRetries+1, calls)
	}
}

func TestWithReadRetry_PermanentErrorNotRetried(t *testing.T) {
	db, _ := newMockDB(t)

	calls := 0
	err := db.withReadRetry(context.Background(), func(ctx context.Context) error {
		calls++
		return sql.ErrNoRows
	})

	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected a single call, got %d", calls)
	}
}

func TestWithForeignKeys(t *testing.T) {
	tests := map[string]string{
		":memory:":                        ":memory:?_foreign_keys=on",
		"file:tasks.db?cache=shared":      "file:tasks.db?cache=shared&_foreign_keys=on",
		"file:tasks.db?_foreign_keys=off": "file:tasks.db?_foreign_keys=off",
		"file:tasks.db?_fk=1":             "file:tasks.db?_fk=1",
	}

	for dsn, want := range tests {
		if got := withForeignKeys(dsn); got != want {
			t.Errorf("withForeignKeys(%q) = %q, want %q", dsn, got, want)
		}
	}
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	if c.Classify(nil) != NonRetryable {
		t.Error("nil error must be non-retryable")
	}
	if c.Classify(errors.New("plain")) != NonRetryable {
		t.Error("non-postgres error must be non-retryable")
	}
	for _, code := range []string{pgerrcode.DeadlockDetected, pgerrcode.CannotConnectNow, pgerrcode.ConnectionException} {
		if c.Classify(pgError(code)) != Retryable {
			t.Errorf("code %s must be retryable", code)
		}
	}
	if c.Classify(pgError(pgerrcode.UniqueViolation)) != NonRetryable {
		t.Error("unique violation must be non-retryable")
	}

	if !c.IsUniqueViolation(errors.Join(errors.New("ctx"), pgError(pgerrcode.UniqueViolation))) {
		t.Error("expected wrapped unique violation to be detected")
	}
	if c.IsUniqueViolation(pgError(pgerrcode.ForeignKeyViolation)) {
		t.Error("foreign key violation is not a unique violation")
	}
}

func TestReturning(t *testing.T) {
	got := returning([]string{"id", "summary"})
	if !strings.EqualFold(got, "RETURNING id, summary") {
		t.Errorf("unexpected clause %q", got)
	}
}
