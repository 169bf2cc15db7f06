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

// UserValidationService rejects malformed payloads before they reach the
// wrapped UserService.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) CreateUser(ctx context.Context, user models.UserCreate) (models.User, error) {
	if err := v.validator.Validate(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("error during user validation before saving: %w", err)
	}

	return v.inner.CreateUser(ctx, user)
}

func (v *UserValidationService) GetUser(ctx context.Context, ref models.UserRef) (models.User, error) {
	return v.inner.GetUser(ctx, ref)
}

func (v *UserValidationService) ListUsers(ctx context.Context, params paginate.Params, pageURL *url.URL) (paginate.Page[models.User], error) {
	return v.inner.ListUsers(ctx, params, pageURL)
}

func (v *UserValidationService) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.User{}, fmt.Errorf("error during user validation before updating: %w", err)
	}

	return v.inner.UpdateUser(ctx, id, update)
}

func (v *UserValidationService) DeleteUser(ctx context.Context, id int64) error {
	return v.inner.DeleteUser(ctx, id)
}

func (v *UserValidationService) Wrap(wrapped UserService) UserService {
	v.inner = wrapped
	return v
}
