// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/internal/paginate"
	"github.com/MKhiriev/go-task-tracker/models"
)

var taskColumns = []string{"id", "user_id", "complete", "summary", "description"}

// taskRepository is the SQL implementation of [TaskRepository] over the
// "tasks" table. Every statement carries a user_id predicate, so a task can
// only be reached through its owner.
type taskRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		db:     db,
		logger: logger,
	}
}

func (r *taskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(task.TableName()).
		Columns("user_id", "complete", "summary", "description").
		Values(task.UserID, task.Complete, task.Summary, task.Description).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.CreateTask").Msg("error building query")
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&task.ID); err != nil {
		log.Err(err).Str("func", "*taskRepository.CreateTask").Int64("user_id", task.UserID).Msg("error inserting task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return task, nil
}

func (r *taskRepository) FindTask(ctx context.Context, userID, taskID int64) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(taskColumns...).
		From(models.Task{}.TableName()).
		Where(sq.Eq{"id": taskID, "user_id": userID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.FindTask").Msg("error building query")
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var task models.Task
	err = r.db.withReadRetry(ctx, func(ctx context.Context) error {
		task, err = scanTask(r.db.QueryRowContext(ctx, query, args...))
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, ErrTaskNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.FindTask").Msg("error finding task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return task, nil
}

// UpdateTask applies the non-nil fields of update. An empty update behaves
// like a lookup.
func (r *taskRepository) UpdateTask(ctx context.Context, userID, taskID int64, update models.TaskUpdate) (models.Task, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return r.FindTask(ctx, userID, taskID)
	}

	builder := r.db.builder.
		Update(models.Task{}.TableName()).
		Where(sq.Eq{"id": taskID, "user_id": userID})
	if update.Summary != nil {
		builder = builder.Set("summary", *update.Summary)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.Complete != nil {
		builder = builder.Set("complete", *update.Complete)
	}

	query, args, err := builder.Suffix(returning(taskColumns)).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.UpdateTask").Msg("error building query")
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	task, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, ErrTaskNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.UpdateTask").Msg("error updating task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return task, nil
}

func (r *taskRepository) DeleteTask(ctx context.Context, userID, taskID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete(models.Task{}.TableName()).
		Where(sq.Eq{"id": taskID, "user_id": userID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.DeleteTask").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.DeleteTask").Msg("error deleting task")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.DeleteTask").Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// ListTasks returns the tasks of filter.UserID ordered by ID, optionally
// narrowed to one completion state.
func (r *taskRepository) ListTasks(filter models.TaskFilter) paginate.Query[models.Task] {
	q := NewQuery(r.db, models.Task{}.TableName(), taskColumns, scanTask).
		Where(sq.Eq{"user_id": filter.UserID}).
		OrderBy("id")

	if filter.Complete != nil {
		q = q.Where(sq.Eq{"complete": *filter.Complete})
	}

	return q
}

func scanTask(row RowScanner) (models.Task, error) {
	var task models.Task
	var description sql.NullString

	if err := row.Scan(&task.ID, &task.UserID, &task.Complete, &task.Summary, &description); err != nil {
		return models.Task{}, err
	}

	task.Description = nullableString(description)

	return task, nil
}
