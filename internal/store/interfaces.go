// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-task-tracker/internal/paginate"
	"github.com/MKhiriev/go-task-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with its assigned ID.
	// A taken username or email yields [ErrUserAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByID and FindUserByUsername return [ErrUserNotFound] when no
	// row matches.
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// UpdateUser applies the non-nil fields of update and returns the
	// resulting row. update.Password must already hold a digest.
	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)

	// DeleteUser removes the user together with all of its tasks.
	DeleteUser(ctx context.Context, id int64) error

	// ListUsers returns the users collection ordered by ID.
	ListUsers() paginate.Query[models.User]
}

// TaskRepository persists tasks. Every method is scoped to the owning user:
// a task belonging to somebody else is reported as [ErrTaskNotFound].
type TaskRepository interface {
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	FindTask(ctx context.Context, userID, taskID int64) (models.Task, error)
	UpdateTask(ctx context.Context, userID, taskID int64, update models.TaskUpdate) (models.Task, error)
	DeleteTask(ctx context.Context, userID, taskID int64) error

	// ListTasks returns the tasks matching filter ordered by ID.
	ListTasks(filter models.TaskFilter) paginate.Query[models.Task]
}

// ErrorClassificator inspects driver errors.
type ErrorClassificator interface {
	// Classify reports whether a failed operation may be retried.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err is a unique constraint violation.
	IsUniqueViolation(err error) bool
}

// RowScanner is implemented by *sql.Row and *sql.Rows.
type RowScanner interface {
	Scan(dest ...any) error
}
