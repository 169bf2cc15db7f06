// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-task-tracker/internal/utils"
)

type versionResponse struct {
	Version     string `json:"version"`
	BuildDate   string `json:"build_date"`
	BuildCommit string `json:"build_commit"`
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetAppInfo(r.Context())

	utils.WriteJSON(w, versionResponse{
		Version:     info.BuildVersion(),
		BuildDate:   info.BuildDate(),
		BuildCommit: info.BuildCommit(),
	}, http.StatusOK)
}
