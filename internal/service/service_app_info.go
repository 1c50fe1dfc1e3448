// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-mathkids/internal/app"
	"github.com/MKhiriev/go-mathkids/internal/config"
	"github.com/MKhiriev/go-mathkids/internal/logger"
	"github.com/MKhiriev/go-mathkids/models"
)

// Endpoints lists the public routes reported by GET /api/status.
var Endpoints = []string{
	"GET /health",
	"GET /health/database",
	"GET /health/email",
	"GET /api/status",
	"GET /api/version",
	"POST /api/register",
	"POST /api/login",
	"GET /api/verify-token",
	"POST /api/logout",
	"POST /api/forgot-password",
	"POST /api/reset-password",
	"GET /api/me",
	"GET /metrics",
}

type appInfoService struct {
	appVersion         string
	environment        string
	databaseConfigured bool

	now    func() time.Time
	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, databaseConfigured bool, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion:         cfg.Version,
		environment:        cfg.Environment,
		databaseConfigured: databaseConfigured,
		now:                time.Now,
		logger:             logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetStatus(ctx context.Context) models.StatusResponse {
	return models.StatusResponse{
		API:                app.MsgServiceName,
		Version:            s.appVersion,
		Environment:        s.environment,
		DatabaseConfigured: s.databaseConfigured,
		Timestamp:          s.now().UTC(),
		Endpoints:          Endpoints,
	}
}
