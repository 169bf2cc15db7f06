// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-task-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetServerVersion_ViaRouter(t *testing.T) {
	th := newTestHandler(t)

	th.info.EXPECT().GetAppInfo(gomock.Any()).Return(models.NewAppBuildInfo("v2.0.0-beta+build.42", "2026-10-01", "abc123"))

	rec := th.do(t, http.MethodGet, "/api/version", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"version":"v2.0.0-beta+build.42","build_date":"2026-10-01","build_commit":"abc123"}`, rec.Body.String())
}

func TestGetServerVersion_IsPublic(t *testing.T) {
	th := newTestHandler(t)

	th.info.EXPECT().GetAppInfo(gomock.Any()).Return(models.NewAppBuildInfo("1.0.0", "N/A", "N/A"))

	rec := th.do(t, http.MethodGet, "/api/version", "", func(r *http.Request) {
		r.SetBasicAuth("nobody", "nothing")
	})

	assert.Equal(t, http.StatusOK, rec.Code)
}
