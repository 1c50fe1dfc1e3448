// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-mathkids/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TokenService issues and verifies the opaque tokens that are stored only
// as bcrypt hashes: "remember me" persistent tokens and password reset
// tokens.
type TokenService interface {
	IssuePersistentToken(ctx context.Context, userID int64, meta models.ClientMetadata) (string, models.PersistentToken, error)
	VerifyPersistentToken(ctx context.Context, rawToken string) (models.VerifiedToken, error)
	RevokePersistentToken(ctx context.Context, tokenID int64) error
	RevokeAllPersistentTokens(ctx context.Context, userID int64) (int64, error)

	IssueResetToken(ctx context.Context, userID int64) (string, models.ResetToken, error)
	FindResetToken(ctx context.Context, userID int64, rawToken string) (models.ResetToken, error)

	// SweepExpired deletes expired persistent and reset tokens.
	SweepExpired(ctx context.Context) (models.SweepResult, error)
}

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)
	VerifyRememberToken(ctx context.Context, rawToken string) (models.Identity, error)
	Logout(ctx context.Context, rawToken string)
	ParseSessionToken(ctx context.Context, rawToken string) (models.Identity, error)
}

type PasswordResetService interface {
	// RequestReset never reveals whether email belongs to an account.
	RequestReset(ctx context.Context, req models.ForgotPasswordRequest, origin string) (models.ForgotPasswordResult, error)
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetStatus(ctx context.Context) models.StatusResponse
}

type HealthService interface {
	// CheckDatabase runs a trivial query and reports its duration.
	CheckDatabase(ctx context.Context) (time.Duration, error)
	DatabaseConfigured() bool

	// CheckEmail returns the mail provider name and its health.
	CheckEmail(ctx context.Context) (string, error)
}

// AuthProvider is one way of proving a password login. Providers are tried
// in order and the first success wins.
type AuthProvider interface {
	Authenticate(ctx context.Context, email, password string) (models.Identity, error)
}
