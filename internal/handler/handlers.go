// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler groups the inbound transport handlers of the server.
package handler

import (
	"github.com/MKhiriev/go-task-tracker/internal/config"
	"github.com/MKhiriev/go-task-tracker/internal/handler/http"
	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, app config.App, srv config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if srv.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, app, srv, logger)}, nil
}
