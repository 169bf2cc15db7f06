// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-task-tracker/internal/validators"
	"github.com/MKhiriev/go-task-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantErr   error
		wantField string
	}{
		{name: "valid", body: `{"summary":"s","complete":true}`},
		{name: "unknown fields ignored", body: `{"summary":"s","owner":9}`},
		{name: "empty body", body: ``, wantErr: ErrMalformedJSON},
		{name: "truncated", body: `{"summary":`, wantErr: ErrMalformedJSON},
		{name: "array", body: `[1,2]`, wantErr: ErrMalformedJSON},
		{name: "wrong field type", body: `{"complete":"yes"}`, wantErr: validators.ErrInvalidType, wantField: "complete"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			var dst models.TaskCreate
			err := decodeJSON(req, &dst)

			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, "s", *dst.Summary)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)

			var vErr *validators.ValidationError
			if tt.wantField != "" {
				require.True(t, errors.As(err, &vErr))
				assert.Equal(t, tt.wantField, vErr.Field)
			} else {
				assert.False(t, errors.As(err, &vErr))
			}
		})
	}
}

func TestCompleteFilter(t *testing.T) {
	tests := []struct {
		query   string
		want    *bool
		wantErr bool
	}{
		{query: ""},
		{query: "complete=1", want: boolPtr(true)},
		{query: "complete=true", want: boolPtr(true)},
		{query: "complete=0", want: boolPtr(false)},
		{query: "complete=false", want: boolPtr(false)},
		{query: "complete=yes", wantErr: true},
		{query: "complete=TRUE", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)

			got, err := completeFilter(req)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCompleteFilter)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
