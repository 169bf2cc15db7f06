// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-task-tracker/models"
)

const (
	FieldSummary     = "summary"
	FieldDescription = "description"
	FieldComplete    = "complete"
)

const (
	maxSummaryLength     = 255
	maxDescriptionLength = 10000
)

var taskFieldOrder = []string{FieldSummary, FieldDescription}

type TaskValidator struct{}

func NewTaskValidator() Validator {
	return &TaskValidator{}
}

// Validate accepts [models.TaskCreate] and [models.TaskUpdate] values or
// pointers to them.
func (v *TaskValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.TaskCreate:
		return v.validateCreate(value, fields...)
	case *models.TaskCreate:
		return v.validateCreate(*value, fields...)

	case models.TaskUpdate:
		return v.validateUpdate(value, fields...)
	case *models.TaskUpdate:
		return v.validateUpdate(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *TaskValidator) validateCreate(t models.TaskCreate, fields ...string) error {
	rules := map[string]rule{
		FieldSummary: func() error {
			if t.Summary == nil {
				return ErrRequiredField
			}
			return requiredText(*t.Summary, maxSummaryLength)
		},
		FieldDescription: func() error { return maxLength(t.Description, maxDescriptionLength) },
	}

	return check(rules, taskFieldOrder, fields...)
}

func (v *TaskValidator) validateUpdate(t models.TaskUpdate, fields ...string) error {
	rules := map[string]rule{
		FieldSummary:     func() error { return optionalText(t.Summary, maxSummaryLength) },
		FieldDescription: func() error { return maxLength(t.Description, maxDescriptionLength) },
	}

	return check(rules, taskFieldOrder, fields...)
}

// description may be empty, only its length is bounded
func maxLength(value *string, maxLen int) error {
	if value != nil && len(*value) > maxLen {
		return ErrFieldTooLong
	}
	return nil
}
