// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/MKhiriev/go-task-tracker/internal/paginate"
	"github.com/MKhiriev/go-task-tracker/internal/validators"
	"github.com/MKhiriev/go-task-tracker/models"
)

type TaskValidationService struct {
	inner     TaskService
	validator validators.Validator
}

func NewTaskValidationService() TaskServiceWrapper {
	return &TaskValidationService{
		validator: validators.NewTaskValidator(),
	}
}

func (v *TaskValidationService) CreateTask(ctx context.Context, ownerID int64, task models.TaskCreate) (models.Task, error) {
	if err := v.validator.Validate(ctx, task); err != nil {
		return models.Task{}, fmt.Errorf("error during task validation before saving: %w", err)
	}

	return v.inner.CreateTask(ctx, ownerID, task)
}

func (v *TaskValidationService) GetTask(ctx context.Context, ownerID, taskID int64) (models.Task, error) {
	return v.inner.GetTask(ctx, ownerID, taskID)
}

func (v *TaskValidationService) ListTasks(ctx context.Context, filter models.TaskFilter, params paginate.Params, pageURL *url.URL) (paginate.Page[models.Task], error) {
	return v.inner.ListTasks(ctx, filter, params, pageURL)
}

func (v *TaskValidationService) UpdateTask(ctx context.Context, ownerID, taskID int64, update models.TaskUpdate) (models.Task, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Task{}, fmt.Errorf("error during task validation before updating: %w", err)
	}

	return v.inner.UpdateTask(ctx, ownerID, taskID, update)
}

func (v *TaskValidationService) DeleteTask(ctx context.Context, ownerID, taskID int64) error {
	return v.inner.DeleteTask(ctx, ownerID, taskID)
}

func (v *TaskValidationService) Wrap(wrapped TaskService) TaskService {
	v.inner = wrapped
	return v
}
