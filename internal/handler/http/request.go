// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-task-tracker/internal/validators"
	"github.com/MKhiriev/go-task-tracker/models"
	"github.com/go-chi/chi/v5"
)

const (
	userParam   = "user"
	taskIDParam = "task_id"

	completeParam = "complete"
)

// decodeJSON reads a single JSON object from the request body into dst.
// Unknown fields are ignored. A value of the wrong JSON type is reported as
// a validation error naming the field.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return validators.NewValidationError(typeErr.Field, validators.ErrInvalidType)
		}
		return fmt.Errorf("%w: %w", ErrMalformedJSON, err)
	}
	return nil
}

// userRefFromPath parses the {user} segment.
func userRefFromPath(r *http.Request) (models.UserRef, error) {
	ref, ok := models.ParseUserRef(chi.URLParam(r, userParam))
	if !ok {
		return models.UserRef{}, ErrInvalidUserRef
	}
	return ref, nil
}

// taskIDFromPath parses the {task_id} segment.
func taskIDFromPath(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, taskIDParam), 10, 64)
	if err != nil || id < 1 {
		return 0, ErrInvalidTaskID
	}
	return id, nil
}

// completeFilter reads the optional complete query parameter.
func completeFilter(r *http.Request) (*bool, error) {
	raw := r.URL.Query().Get(completeParam)
	switch raw {
	case "":
		return nil, nil
	case "1", "true":
		complete := true
		return &complete, nil
	case "0", "false":
		complete := false
		return &complete, nil
	default:
		return nil, validators.NewValidationError(completeParam, ErrInvalidCompleteFilter)
	}
}
