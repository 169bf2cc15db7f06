// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the task tracker REST API.
//
// The primary abstraction is [ServerAdapter]. The package ships an HTTP
// implementation built on resty ([NewHTTPServerAdapter]).
//
// Non-2xx responses are mapped by mapHTTPError to an [*APIError] that wraps
// one of the sentinel values in errors.go, so callers can use [errors.Is]
// (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401) and [errors.As] to
// read the server's message and offending field.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-task-tracker/internal/paginate"
	"github.com/MKhiriev/go-task-tracker/models"
)

// ServerAdapter defines communication with the task tracker server.
// Implementations handle serialisation, Basic credentials and error mapping.
type ServerAdapter interface {
	// SetCredentials stores the username and password attached to every
	// subsequent request. An empty username clears them.
	SetCredentials(username, password string)

	// Version returns the server's build information.
	Version(ctx context.Context) (models.AppBuildInfo, error)

	// CreateUser registers a new account. It needs no credentials.
	CreateUser(ctx context.Context, user models.UserCreate) (models.User, error)

	// ListUsers returns one page of all users.
	ListUsers(ctx context.Context, opts ListOptions) (paginate.Page[models.User], error)

	// GetUser fetches a user by numeric id or username.
	GetUser(ctx context.Context, ref models.UserRef) (models.User, error)

	// UpdateUser applies a partial update to the caller's own account.
	UpdateUser(ctx context.Context, ref models.UserRef, update models.UserUpdate) (models.User, error)

	// DeleteUser removes the caller's own account together with its tasks.
	DeleteUser(ctx context.Context, ref models.UserRef) error

	// CreateTask adds a task to the caller's own list.
	CreateTask(ctx context.Context, ref models.UserRef, task models.TaskCreate) (models.Task, error)

	// ListTasks returns one page of the caller's tasks, optionally filtered
	// by completion state.
	ListTasks(ctx context.Context, ref models.UserRef, opts ListOptions) (paginate.Page[models.Task], error)

	// GetTask fetches a single task from the caller's list.
	GetTask(ctx context.Context, ref models.UserRef, taskID int64) (models.Task, error)

	// UpdateTask applies a partial update to one of the caller's tasks.
	UpdateTask(ctx context.Context, ref models.UserRef, taskID int64, update models.TaskUpdate) (models.Task, error)

	// DeleteTask removes one of the caller's tasks.
	DeleteTask(ctx context.Context, ref models.UserRef, taskID int64) error
}

// ListOptions selects a page of a collection. Zero values are left to the
// server's defaults. Complete is honoured by task listings only.
type ListOptions struct {
	Page     int
	PerPage  int
	Complete *bool
}
