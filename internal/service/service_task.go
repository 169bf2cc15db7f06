// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/internal/paginate"
	"github.com/MKhiriev/go-task-tracker/internal/store"
	"github.com/MKhiriev/go-task-tracker/models"
)

type taskService struct {
	taskRepository store.TaskRepository
	logger         *logger.Logger
}

func NewTaskService(taskRepository store.TaskRepository, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		logger:         logger,
	}
}

// CreateTask stores a new task owned by ownerID. Complete defaults to false.
func (s *taskService) CreateTask(ctx context.Context, ownerID int64, create models.TaskCreate) (models.Task, error) {
	task := models.Task{UserID: ownerID, Description: create.Description}
	if create.Summary != nil {
		task.Summary = *create.Summary
	}
	if create.Complete != nil {
		task.Complete = *create.Complete
	}

	created, err := s.taskRepository.CreateTask(ctx, task)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*taskService.CreateTask").Int64("user_id", ownerID).Msg("task creation ended with error")
		return models.Task{}, fmt.Errorf("task creation ended with error: %w", err)
	}

	return created, nil
}

func (s *taskService) GetTask(ctx context.Context, ownerID, taskID int64) (models.Task, error) {
	return s.taskRepository.FindTask(ctx, ownerID, taskID)
}

// ListTasks pages through the owner's tasks. The completion filter is part
// of the query, so total and pages describe the filtered collection.
func (s *taskService) ListTasks(ctx context.Context, filter models.TaskFilter, params paginate.Params, pageURL *url.URL) (paginate.Page[models.Task], error) {
	return paginate.Paginate(ctx, s.taskRepository.ListTasks(filter), params, pageURL)
}

func (s *taskService) UpdateTask(ctx context.Context, ownerID, taskID int64, update models.TaskUpdate) (models.Task, error) {
	task, err := s.taskRepository.UpdateTask(ctx, ownerID, taskID, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*taskService.UpdateTask").Int64("task_id", taskID).Msg("task update ended with error")
		return models.Task{}, fmt.Errorf("task update ended with error: %w", err)
	}

	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, ownerID, taskID int64) error {
	if err := s.taskRepository.DeleteTask(ctx, ownerID, taskID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*taskService.DeleteTask").Int64("task_id", taskID).Msg("task deletion ended with error")
		return fmt.Errorf("task deletion ended with error: %w", err)
	}

	return nil
}
