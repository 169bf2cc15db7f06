// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

type errorBody struct {
	Message string `json:"message"`
	Field   string `json:"field"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode()}

	var body errorBody
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Message != "" {
		apiErr.Message = body.Message
		apiErr.Field = body.Field
	} else {
		apiErr.Message = strings.TrimSpace(string(resp.Body()))
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		apiErr.err = ErrBadRequest
	case http.StatusUnauthorized:
		apiErr.err = ErrUnauthorized
	case http.StatusForbidden:
		apiErr.err = ErrForbidden
	case http.StatusNotFound:
		apiErr.err = ErrNotFound
	case http.StatusConflict:
		apiErr.err = ErrConflict
	case http.StatusInternalServerError:
		apiErr.err = ErrInternalServerError
	default:
		apiErr.err = ErrUnexpectedStatus
	}

	return apiErr
}
