// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/internal/paginate"
	"github.com/MKhiriev/go-task-tracker/internal/service"
	"github.com/MKhiriev/go-task-tracker/internal/store"
	"github.com/MKhiriev/go-task-tracker/internal/utils"
	"github.com/MKhiriev/go-task-tracker/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrMissingCredentials:    http.StatusUnauthorized,
	ErrMalformedJSON:         http.StatusBadRequest,
	ErrInvalidUserRef:        http.StatusNotFound,
	ErrInvalidTaskID:         http.StatusNotFound,
	ErrInvalidCompleteFilter: http.StatusBadRequest,
	ErrRouteNotFound:         http.StatusNotFound,

	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrUnauthenticated:    http.StatusUnauthorized,
	service.ErrForbidden:          http.StatusForbidden,

	store.ErrUserAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:      http.StatusNotFound,
	store.ErrTaskNotFound:      http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	var validationErr *validators.ValidationError
	var paramErr *paginate.ParamError
	if errors.As(err, &validationErr) || errors.As(err, &paramErr) {
		return http.StatusBadRequest
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorResponse is the body of every non-2xx answer.
type errorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// newErrorResponse builds the client-facing body for err. Server-side
// failures never expose their cause and every 401 reads the same.
func newErrorResponse(err error, status int) errorResponse {
	if status >= http.StatusInternalServerError {
		return errorResponse{Message: http.StatusText(status)}
	}
	if status == http.StatusUnauthorized {
		return errorResponse{Message: service.ErrInvalidCredentials.Error()}
	}

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return errorResponse{Message: validationErr.Err.Error(), Field: validationErr.Field}
	}

	var paramErr *paginate.ParamError
	if errors.As(err, &paramErr) {
		return errorResponse{Message: paramErr.Err.Error(), Field: paramErr.Param}
	}

	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return errorResponse{Message: target.Error()}
		}
	}
	return errorResponse{Message: http.StatusText(status)}
}

// writeError logs err with the request logger and answers with the mapped
// status and an errorResponse body.
func writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")
	}

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", basicRealm)
	}

	utils.WriteJSON(w, newErrorResponse(err, status), status)
}
