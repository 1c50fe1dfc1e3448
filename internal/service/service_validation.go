// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-mathkids/internal/validators"
	"github.com/MKhiriev/go-mathkids/models"
)

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// PasswordResetServiceWrapper defines middleware composition for
// PasswordResetService.
type PasswordResetServiceWrapper interface {
	Wrap(PasswordResetService) PasswordResetService
}

// AuthValidationService validates request bodies before they reach the
// wrapped AuthService. Validation failures are reported as
// [ErrInvalidInput] wrapping the specific validators error.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewAuthValidator(),
	}
}

func (v *AuthValidationService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return v.inner.Register(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.LoginResult{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) VerifyRememberToken(ctx context.Context, rawToken string) (models.Identity, error) {
	return v.inner.VerifyRememberToken(ctx, rawToken)
}

func (v *AuthValidationService) Logout(ctx context.Context, rawToken string) {
	v.inner.Logout(ctx, rawToken)
}

func (v *AuthValidationService) ParseSessionToken(ctx context.Context, rawToken string) (models.Identity, error) {
	return v.inner.ParseSessionToken(ctx, rawToken)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}

// PasswordResetValidationService validates reset requests before they
// reach the wrapped PasswordResetService.
type PasswordResetValidationService struct {
	inner     PasswordResetService
	validator validators.Validator
}

func NewPasswordResetValidationService() PasswordResetServiceWrapper {
	return &PasswordResetValidationService{
		validator: validators.NewAuthValidator(),
	}
}

func (v *PasswordResetValidationService) RequestReset(ctx context.Context, req models.ForgotPasswordRequest, origin string) (models.ForgotPasswordResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.ForgotPasswordResult{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return v.inner.RequestReset(ctx, req, origin)
}

func (v *PasswordResetValidationService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return v.inner.ResetPassword(ctx, req)
}

func (v *PasswordResetValidationService) Wrap(wrapped PasswordResetService) PasswordResetService {
	v.inner = wrapped
	return v
}
