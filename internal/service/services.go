// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic between the HTTP handlers and
// the repositories: credential checks, ownership decisions, password
// hashing, and validated user and task operations.
package service

import (
	"github.com/MKhiriev/go-task-tracker/internal/config"
	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/internal/store"
	"github.com/MKhiriev/go-task-tracker/internal/utils"
	"github.com/MKhiriev/go-task-tracker/models"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	TaskService    TaskService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	hasher := utils.NewBcryptHasher(cfg.PasswordHashCost)

	appInfoService, err := NewAppInfoService(cfg, build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, hasher, logger),
		UserService:    NewUserValidationService().Wrap(NewUserService(storages.UserRepository, hasher, logger)),
		TaskService:    NewTaskValidationService().Wrap(NewTaskService(storages.TaskRepository, logger)),
		AppInfoService: appInfoService,
	}, nil
}
