// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-mathkids/internal/adapter"
	"github.com/MKhiriev/go-mathkids/internal/app"
	"github.com/MKhiriev/go-mathkids/internal/config"
	"github.com/MKhiriev/go-mathkids/internal/crypto"
	"github.com/MKhiriev/go-mathkids/internal/logger"
	"github.com/MKhiriev/go-mathkids/internal/store"
	"github.com/MKhiriev/go-mathkids/internal/validators"
	"github.com/MKhiriev/go-mathkids/models"
)

// ResetPagePath is the frontend page that consumes reset links.
const ResetPagePath = "/cadastro/reset-password.html"

type passwordResetService struct {
	userRepository       store.UserRepository
	resetTokenRepository store.ResetTokenRepository

	tokenService TokenService
	hasher       crypto.PasswordHasher
	mailer       adapter.Mailer

	adminEmail  string
	frontendURL string
	resetTTL    time.Duration
	mailTimeout time.Duration
	production  bool

	logger *logger.Logger
}

// NewPasswordResetService constructs a PasswordResetService. Reset links
// point at appCfg.FrontendURL, or at the request origin when it is empty.
func NewPasswordResetService(
	userRepository store.UserRepository,
	resetTokenRepository store.ResetTokenRepository,
	tokenService TokenService,
	hasher crypto.PasswordHasher,
	mailer adapter.Mailer,
	appCfg config.App,
	mailCfg config.Mail,
	logger *logger.Logger,
) PasswordResetService {
	return &passwordResetService{
		userRepository:       userRepository,
		resetTokenRepository: resetTokenRepository,
		tokenService:         tokenService,
		hasher:               hasher,
		mailer:               mailer,
		adminEmail:           validators.NormalizeEmail(appCfg.AdminEmail),
		frontendURL:          appCfg.FrontendURL,
		resetTTL:             appCfg.ResetTTL(),
		mailTimeout:          mailCfg.Timeout,
		production:           appCfg.IsProduction(),
		logger:               logger,
	}
}

// RequestReset issues a reset token and emails the link when email belongs
// to a registered user. The administrator, unknown emails and an
// unreachable database all yield the same generic result.
//
// Outside production the result carries [models.DevInfo] whenever a token
// was issued.
func (s *passwordResetService) RequestReset(ctx context.Context, req models.ForgotPasswordRequest, origin string) (models.ForgotPasswordResult, error) {
	log := logger.FromContext(ctx)
	result := models.ForgotPasswordResult{Message: app.MsgResetRequested}

	email := validators.NormalizeEmail(req.Email)
	if s.isAdminEmail(email) {
		log.Warn().Str("func", "*passwordResetService.RequestReset").Msg("reset requested for the administrator account, ignoring")
		return result, nil
	}

	user, err := s.userRepository.FindUserByEmail(ctx, email)
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		log.Info().Str("func", "*passwordResetService.RequestReset").Msg("reset requested for an unknown email")
		return result, nil
	case errors.Is(err, store.ErrStoreUnavailable):
		log.Warn().Err(err).Str("func", "*passwordResetService.RequestReset").Msg("database unavailable, reset not issued")
		return result, nil
	case err != nil:
		return models.ForgotPasswordResult{}, fmt.Errorf("user search by email failed: %w", err)
	}

	rawToken, _, err := s.tokenService.IssueResetToken(ctx, user.UserID)
	if errors.Is(err, store.ErrStoreUnavailable) {
		log.Warn().Err(err).Str("func", "*passwordResetService.RequestReset").Msg("database unavailable, reset not issued")
		return result, nil
	}
	if err != nil {
		return models.ForgotPasswordResult{}, err
	}

	base := s.baseURL(origin)
	if base == "" {
		log.Warn().Str("func", "*passwordResetService.RequestReset").Msg("no frontend url and no request origin, reset link is relative")
	}
	link := buildResetLink(base, rawToken, user.Email)

	mailCtx, cancel := s.withMailTimeout(ctx)
	defer cancel()

	sendErr := s.mailer.SendPasswordReset(mailCtx, adapter.PasswordResetEmail{
		To:        user.Email,
		Name:      user.Name,
		ResetLink: link,
		ExpiresIn: s.resetTTL,
	})
	if sendErr != nil {
		log.Err(sendErr).Str("func", "*passwordResetService.RequestReset").Int64("user_id", user.UserID).Msg("error sending password reset email")
	}

	if !s.production {
		result.DevInfo = &models.DevInfo{
			ResetToken: rawToken,
			ResetLink:  link,
			EmailSent:  sendErr == nil,
			Provider:   s.mailer.Provider(),
		}
		if sendErr != nil {
			result.DevInfo.Error = sendErr.Error()
		}
	}

	return result, nil
}

// ResetPassword redeems a reset token and replaces the password. All of the
// user's persistent tokens are revoked in the same transaction.
//
// Returns:
//   - [ErrAdminResetForbidden] for the administrator email.
//   - [ErrInvalidOrExpiredToken] for an unknown email or a token that is
//     wrong, expired or already used.
//   - [store.ErrStoreUnavailable] if the database cannot be reached.
func (s *passwordResetService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	log := logger.FromContext(ctx)

	email := validators.NormalizeEmail(req.Email)
	if s.isAdminEmail(email) {
		log.Warn().Str("func", "*passwordResetService.ResetPassword").Msg("reset attempted for the administrator account")
		return ErrAdminResetForbidden
	}

	user, err := s.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return ErrInvalidOrExpiredToken
	}
	if err != nil {
		return fmt.Errorf("user search by email failed: %w", err)
	}

	resetToken, err := s.tokenService.FindResetToken(ctx, user.UserID, strings.TrimSpace(req.Token))
	if err != nil {
		return err
	}

	passwordHash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	err = s.resetTokenRepository.RedeemResetToken(ctx, resetToken.ID, user.UserID, passwordHash)
	if errors.Is(err, store.ErrResetTokenNotRedeemable) || errors.Is(err, store.ErrNoUserWasFound) {
		return ErrInvalidOrExpiredToken
	}
	if err != nil {
		log.Err(err).Str("func", "*passwordResetService.ResetPassword").Int64("user_id", user.UserID).Msg("error redeeming reset token")
		return fmt.Errorf("error redeeming reset token: %w", err)
	}

	log.Info().Str("func", "*passwordResetService.ResetPassword").Int64("user_id", user.UserID).Msg("password changed")
	return nil
}

func (s *passwordResetService) isAdminEmail(email string) bool {
	return s.adminEmail != "" && email == s.adminEmail
}

func (s *passwordResetService) baseURL(origin string) string {
	if s.frontendURL != "" {
		return strings.TrimRight(s.frontendURL, "/")
	}
	return strings.TrimRight(origin, "/")
}

func (s *passwordResetService) withMailTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.mailTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.mailTimeout)
}

// buildResetLink renders <base>/cadastro/reset-password.html?token=..&email=..
func buildResetLink(base, rawToken, email string) string {
	return base + ResetPagePath + "?token=" + url.QueryEscape(rawToken) + "&email=" + url.QueryEscape(email)
}
