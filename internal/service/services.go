// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-mathkids/internal/adapter"
	"github.com/MKhiriev/go-mathkids/internal/config"
	"github.com/MKhiriev/go-mathkids/internal/crypto"
	"github.com/MKhiriev/go-mathkids/internal/logger"
	"github.com/MKhiriev/go-mathkids/internal/store"
)

type Services struct {
	TokenService         TokenService
	AuthService          AuthService
	PasswordResetService PasswordResetService
	AppInfoService       AppInfoService
	HealthService        HealthService
}

// NewServices wires every service over storages. Request validation is
// applied by decorating the auth and password reset services.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, mailer adapter.Mailer, logger *logger.Logger) (*Services, error) {
	hasher := crypto.NewBcryptHasher(cfg.App.BcryptCost)
	tokenService := NewTokenService(
		storages.PersistentTokenRepository,
		storages.ResetTokenRepository,
		hasher,
		crypto.NewHexTokenGenerator(),
		cfg.App.RememberMeTTL,
		cfg.App.ResetTTL(),
		logger,
	)

	appInfoService, err := NewAppInfoService(cfg.App, storages.Configured, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	authService := NewAuthValidationService().Wrap(
		NewAuthService(storages.UserRepository, tokenService, hasher, cfg.App, logger),
	)
	passwordResetService := NewPasswordResetValidationService().Wrap(
		NewPasswordResetService(storages.UserRepository, storages.ResetTokenRepository, tokenService, hasher, mailer, cfg.App, cfg.Mail, logger),
	)

	return &Services{
		TokenService:         tokenService,
		AuthService:          authService,
		PasswordResetService: passwordResetService,
		AppInfoService:       appInfoService,
		HealthService:        NewHealthService(storages.HealthRepository, mailer, storages.Configured),
	}, nil
}
