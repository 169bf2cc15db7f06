// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-task-tracker/models"
)

const (
	FieldUsername  = "username"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
)

var userFieldOrder = []string{FieldUsername, FieldEmail, FieldPassword, FieldFirstName, FieldLastName}

var userUpdateFieldOrder = []string{FieldEmail, FieldPassword, FieldFirstName, FieldLastName}

type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate accepts [models.UserCreate] and [models.UserUpdate] values or
// pointers to them.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UserCreate:
		return v.validateCreate(value, fields...)
	case *models.UserCreate:
		return v.validateCreate(*value, fields...)

	case models.UserUpdate:
		return v.validateUpdate(value, fields...)
	case *models.UserUpdate:
		return v.validateUpdate(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateCreate(u models.UserCreate, fields ...string) error {
	rules := map[string]rule{
		FieldUsername:  func() error { return usernameRule(u.Username) },
		FieldEmail:     func() error { return emailRule(u.Email) },
		FieldPassword:  func() error { return passwordRule(u.Password) },
		FieldFirstName: func() error { return optionalText(u.FirstName, maxNameLength) },
		FieldLastName:  func() error { return optionalText(u.LastName, maxNameLength) },
	}

	return check(rules, userFieldOrder, fields...)
}

func (v *UserValidator) validateUpdate(u models.UserUpdate, fields ...string) error {
	rules := map[string]rule{
		FieldEmail:     func() error { return optional(u.Email, emailRule) },
		FieldPassword:  func() error { return optional(u.Password, passwordRule) },
		FieldFirstName: func() error { return optionalText(u.FirstName, maxNameLength) },
		FieldLastName:  func() error { return optionalText(u.LastName, maxNameLength) },
	}

	return check(rules, userUpdateFieldOrder, fields...)
}
