// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-task-tracker/internal/config"
	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/internal/paginate"
	"github.com/MKhiriev/go-task-tracker/internal/service"
)

type Handler struct {
	services  *service.Services
	paginator *paginate.Paginator

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, app config.App, srv config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		paginator:      paginate.NewPaginator(app.DefaultPerPage, app.MaxPerPage),
		requestTimeout: srv.RequestTimeout,
		logger:         logger,
	}
}
