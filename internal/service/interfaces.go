// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/url"

	"github.com/MKhiriev/go-task-tracker/internal/paginate"
	"github.com/MKhiriev/go-task-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService resolves Basic-auth credentials to a user.
type AuthService interface {
	// Authenticate returns the user whose username is exactly username and
	// whose password digest matches password. Every credential failure is
	// reported as [ErrInvalidCredentials].
	Authenticate(ctx context.Context, username, password string) (models.User, error)
}

type UserService interface {
	CreateUser(ctx context.Context, user models.UserCreate) (models.User, error)
	GetUser(ctx context.Context, ref models.UserRef) (models.User, error)
	ListUsers(ctx context.Context, params paginate.Params, pageURL *url.URL) (paginate.Page[models.User], error)
	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// TaskService manages the tasks of one owner at a time. ownerID always is
// the ID of the user addressed by the request path.
type TaskService interface {
	CreateTask(ctx context.Context, ownerID int64, task models.TaskCreate) (models.Task, error)
	GetTask(ctx context.Context, ownerID, taskID int64) (models.Task, error)
	ListTasks(ctx context.Context, filter models.TaskFilter, params paginate.Params, pageURL *url.URL) (paginate.Page[models.Task], error)
	UpdateTask(ctx context.Context, ownerID, taskID int64, update models.TaskUpdate) (models.Task, error)
	DeleteTask(ctx context.Context, ownerID, taskID int64) error
}

// AppInfoService exposes build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetAppInfo(ctx context.Context) models.AppBuildInfo
}

// PasswordHasher produces and checks one-way password digests.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(digest, password string) bool
}
