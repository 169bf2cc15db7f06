// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// validating.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

// TaskServiceWrapper is the TaskService counterpart of [UserServiceWrapper].
type TaskServiceWrapper interface {
	Wrap(TaskService) TaskService
}
