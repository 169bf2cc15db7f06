// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-task-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func validUserCreate() models.UserCreate {
	return models.UserCreate{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret",
	}
}

func TestUserValidator_Dispatch(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	u := validUserCreate()
	assert.NoError(t, v.Validate(ctx, u))
	assert.NoError(t, v.Validate(ctx, &u))
	assert.NoError(t, v.Validate(ctx, models.UserUpdate{}))
	assert.NoError(t, v.Validate(ctx, &models.UserUpdate{}))
	assert.ErrorIs(t, v.Validate(ctx, "alice"), ErrUnsupportedType)
}

func TestUserValidator_Create(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(u *models.UserCreate)
		wantField string
		wantErr   error
	}{
		{name: "missing username", mutate: func(u *models.UserCreate) { u.Username = "" }, wantField: FieldUsername, wantErr: ErrRequiredField},
		{name: "blank username", mutate: func(u *models.UserCreate) { u.Username = "   " }, wantField: FieldUsername, wantErr: ErrRequiredField},
		{name: "numeric username", mutate: func(u *models.UserCreate) { u.Username = "42" }, wantField: FieldUsername, wantErr: ErrInvalidUsername},
		{name: "username with slash", mutate: func(u *models.UserCreate) { u.Username = "a/b" }, wantField: FieldUsername, wantErr: ErrInvalidUsername},
		{name: "long username", mutate: func(u *models.UserCreate) { u.Username = strings.Repeat("a", 65) }, wantField: FieldUsername, wantErr: ErrFieldTooLong},
		{name: "missing email", mutate: func(u *models.UserCreate) { u.Email = "" }, wantField: FieldEmail, wantErr: ErrRequiredField},
		{name: "malformed email", mutate: func(u *models.UserCreate) { u.Email = "not-an-email" }, wantField: FieldEmail, wantErr: ErrInvalidEmail},
		{name: "display name email", mutate: func(u *models.UserCreate) { u.Email = "Alice <a@x.com>" }, wantField: FieldEmail, wantErr: ErrInvalidEmail},
		{name: "missing password", mutate: func(u *models.UserCreate) { u.Password = "" }, wantField: FieldPassword, wantErr: ErrRequiredField},
		{name: "long password", mutate: func(u *models.UserCreate) { u.Password = strings.Repeat("p", 73) }, wantField: FieldPassword, wantErr: ErrPasswordTooLong},
		{name: "empty first name", mutate: func(u *models.UserCreate) { u.FirstName = strPtr("") }, wantField: FieldFirstName, wantErr: ErrEmptyField},
	}

	v := NewUserValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUserCreate()
			tt.mutate(&u)

			err := v.Validate(context.Background(), u)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr), "expected *ValidationError, got %v", err)
			assert.Equal(t, tt.wantField, vErr.Field)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserValidator_Create_ReportsFirstFailingField(t *testing.T) {
	err := NewUserValidator().Validate(context.Background(), models.UserCreate{})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, FieldUsername, vErr.Field)
}

func TestUserValidator_Update(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.UserUpdate{Email: strPtr("b@x.com"), LastName: strPtr("Builder")}))

	err := v.Validate(ctx, models.UserUpdate{Email: strPtr("nope")})
	assert.ErrorIs(t, err, ErrInvalidEmail)

	err = v.Validate(ctx, models.UserUpdate{Password: strPtr("")})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, FieldPassword, vErr.Field)
}

func TestUserValidator_SelectedFields(t *testing.T) {
	v := NewUserValidator()
	u := models.UserCreate{Username: "alice"}

	assert.NoError(t, v.Validate(context.Background(), u, FieldUsername))
	assert.ErrorIs(t, v.Validate(context.Background(), u, FieldUsername, FieldEmail), ErrRequiredField)
	assert.ErrorIs(t, v.Validate(context.Background(), u, "nickname"), ErrUnknownField)
}

func TestValidationError(t *testing.T) {
	err := NewValidationError(FieldSummary, ErrRequiredField)

	assert.Equal(t, "summary: field is required", err.Error())
	assert.ErrorIs(t, err, ErrRequiredField)
}
