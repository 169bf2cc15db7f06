// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Task is a to-do item owned by exactly one [User].
type Task struct {
	// ID is the server-assigned unique identifier of the task.
	ID int64 `json:"id"`

	// UserID references the owning user. It is set at creation and
	// never changes afterwards.
	UserID int64 `json:"user_id"`

	// Complete marks the task as done. Defaults to false.
	Complete bool `json:"complete"`

	// Summary is the required, non-empty title of the task.
	Summary string `json:"summary"`

	// Description is optional free text.
	Description *string `json:"description"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}

// TaskCreate is the payload accepted by the task collection.
// Summary is required; Complete defaults to false when omitted.
type TaskCreate struct {
	Summary     *string `json:"summary"`
	Description *string `json:"description"`
	Complete    *bool   `json:"complete"`
}

// TaskUpdate is a partial update of a task. Only non-nil fields are applied.
type TaskUpdate struct {
	Summary     *string `json:"summary"`
	Description *string `json:"description"`
	Complete    *bool   `json:"complete"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u TaskUpdate) IsEmpty() bool {
	return u.Summary == nil && u.Description == nil && u.Complete == nil
}

// TaskFilter narrows a task collection query.
type TaskFilter struct {
	// UserID restricts the collection to one owner. Required.
	UserID int64 `json:"user_id"`

	// Complete, when non-nil, keeps only tasks with the given state.
	Complete *bool
}
