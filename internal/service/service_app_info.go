// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-task-tracker/internal/config"
	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/models"
)

type appInfoService struct {
	info models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService reports build's version when the binary was built with
// one, and the configured app version otherwise.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if !build.HasVersion() {
		if cfg.Version == "" {
			return nil, ErrVersionIsNotSpecified
		}
		build = build.WithVersion(cfg.Version)
	}

	return &appInfoService{
		info:   build.OrNotAvailable(),
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.info.BuildVersion()
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppBuildInfo {
	return s.info
}
