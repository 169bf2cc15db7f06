// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-task-tracker/internal/logger"

// Storages groups the repositories handed to the service layer.
type Storages struct {
	UserRepository UserRepository
	TaskRepository TaskRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		TaskRepository: NewTaskRepository(db, log),
	}
}
