// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-mathkids/internal/crypto"
	"github.com/MKhiriev/go-mathkids/internal/logger"
	"github.com/MKhiriev/go-mathkids/internal/store"
	"github.com/MKhiriev/go-mathkids/models"
)

// tokenService is the concrete implementation of TokenService.
//
// Raw token values leave the service exactly once, at issuance. Only their
// bcrypt digests are persisted, so verification has to load the candidate
// rows and compare each of them.
type tokenService struct {
	persistentTokens store.PersistentTokenRepository
	resetTokens      store.ResetTokenRepository

	hasher    crypto.PasswordHasher
	generator crypto.TokenGenerator

	rememberTTL time.Duration
	resetTTL    time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewTokenService constructs a TokenService. Persistent tokens live for
// rememberTTL and reset tokens for resetTTL.
func NewTokenService(
	persistentTokens store.PersistentTokenRepository,
	resetTokens store.ResetTokenRepository,
	hasher crypto.PasswordHasher,
	generator crypto.TokenGenerator,
	rememberTTL, resetTTL time.Duration,
	logger *logger.Logger,
) TokenService {
	return &tokenService{
		persistentTokens: persistentTokens,
		resetTokens:      resetTokens,
		hasher:           hasher,
		generator:        generator,
		rememberTTL:      rememberTTL,
		resetTTL:         resetTTL,
		now:              time.Now,
		logger:           logger,
	}
}

// newHashedToken returns a fresh raw token and its digest.
func (s *tokenService) newHashedToken() (string, string, error) {
	raw, err := s.generator.Generate()
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	digest, err := s.hasher.Hash(raw)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return raw, digest, nil
}

// IssuePersistentToken creates a "remember me" token for userID that
// expires after the configured remember-me lifetime.
func (s *tokenService) IssuePersistentToken(ctx context.Context, userID int64, meta models.ClientMetadata) (string, models.PersistentToken, error) {
	log := logger.FromContext(ctx)

	raw, digest, err := s.newHashedToken()
	if err != nil {
		log.Err(err).Str("func", "*tokenService.IssuePersistentToken").Msg("error generating persistent token")
		return "", models.PersistentToken{}, err
	}

	saved, err := s.persistentTokens.SavePersistentToken(ctx, models.PersistentToken{
		UserID:         userID,
		TokenHash:      digest,
		ExpiresAt:      s.now().Add(s.rememberTTL),
		ClientMetadata: meta,
	})
	if err != nil {
		log.Err(err).Str("func", "*tokenService.IssuePersistentToken").Int64("user_id", userID).Msg("error saving persistent token")
		return "", models.PersistentToken{}, fmt.Errorf("error saving persistent token: %w", err)
	}

	return raw, saved, nil
}

// VerifyPersistentToken resolves rawToken to its record and owner.
//
// Tokens not shaped like a generated one are rejected before any lookup.
// Every active token is compared until one matches; a match refreshes
// last_used_at. Returns [ErrInvalidOrExpiredToken] when nothing matches and
// [store.ErrStoreUnavailable] when the database cannot be reached.
func (s *tokenService) VerifyPersistentToken(ctx context.Context, rawToken string) (models.VerifiedToken, error) {
	log := logger.FromContext(ctx)

	if !crypto.IsOpaqueToken(rawToken) {
		return models.VerifiedToken{}, ErrInvalidOrExpiredToken
	}

	candidates, err := s.persistentTokens.FindActivePersistentTokens(ctx)
	if err != nil {
		log.Err(err).Str("func", "*tokenService.VerifyPersistentToken").Msg("error loading persistent tokens")
		return models.VerifiedToken{}, fmt.Errorf("error loading persistent tokens: %w", err)
	}

	now := s.now()
	for _, candidate := range candidates {
		if candidate.Token.Expired(now) {
			continue
		}
		if !s.hasher.Verify(rawToken, candidate.Token.TokenHash) {
			continue
		}

		if err = s.persistentTokens.TouchPersistentToken(ctx, candidate.Token.ID); err != nil {
			log.Warn().Err(err).Str("func", "*tokenService.VerifyPersistentToken").Int64("token_id", candidate.Token.ID).Msg("failed to update last use of persistent token")
		}
		return candidate, nil
	}

	log.Debug().Str("func", "*tokenService.VerifyPersistentToken").Int("candidates", len(candidates)).Msg("no persistent token matched")
	return models.VerifiedToken{}, ErrInvalidOrExpiredToken
}

func (s *tokenService) RevokePersistentToken(ctx context.Context, tokenID int64) error {
	if err := s.persistentTokens.DeletePersistentToken(ctx, tokenID); err != nil {
		return fmt.Errorf("error revoking persistent token: %w", err)
	}
	return nil
}

func (s *tokenService) RevokeAllPersistentTokens(ctx context.Context, userID int64) (int64, error) {
	deleted, err := s.persistentTokens.DeleteUserPersistentTokens(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("error revoking persistent tokens: %w", err)
	}
	return deleted, nil
}

// IssueResetToken creates a single-use password reset token for userID.
func (s *tokenService) IssueResetToken(ctx context.Context, userID int64) (string, models.ResetToken, error) {
	log := logger.FromContext(ctx)

	raw, digest, err := s.newHashedToken()
	if err != nil {
		log.Err(err).Str("func", "*tokenService.IssueResetToken").Msg("error generating reset token")
		return "", models.ResetToken{}, err
	}

	saved, err := s.resetTokens.SaveResetToken(ctx, models.ResetToken{
		UserID:    userID,
		TokenHash: digest,
		ExpiresAt: s.now().Add(s.resetTTL),
	})
	if err != nil {
		log.Err(err).Str("func", "*tokenService.IssueResetToken").Int64("user_id", userID).Msg("error saving reset token")
		return "", models.ResetToken{}, fmt.Errorf("error saving reset token: %w", err)
	}

	return raw, saved, nil
}

// FindResetToken returns the unused, unexpired reset token of userID that
// matches rawToken, or [ErrInvalidOrExpiredToken].
func (s *tokenService) FindResetToken(ctx context.Context, userID int64, rawToken string) (models.ResetToken, error) {
	if !crypto.IsOpaqueToken(rawToken) {
		return models.ResetToken{}, ErrInvalidOrExpiredToken
	}

	candidates, err := s.resetTokens.FindRedeemableResetTokens(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tokenService.FindResetToken").Int64("user_id", userID).Msg("error loading reset tokens")
		return models.ResetToken{}, fmt.Errorf("error loading reset tokens: %w", err)
	}

	now := s.now()
	for _, candidate := range candidates {
		if !candidate.Redeemable(now) {
			continue
		}
		if s.hasher.Verify(rawToken, candidate.TokenHash) {
			return candidate, nil
		}
	}

	return models.ResetToken{}, ErrInvalidOrExpiredToken
}

// SweepExpired deletes expired tokens of both kinds. A failure of one kind
// does not prevent the other from being swept; both errors are returned.
func (s *tokenService) SweepExpired(ctx context.Context) (models.SweepResult, error) {
	var (
		result models.SweepResult
		errs   []error
	)

	persistent, err := s.persistentTokens.DeleteExpiredPersistentTokens(ctx)
	if err != nil {
		errs = append(errs, fmt.Errorf("error sweeping persistent tokens: %w", err))
	}
	result.PersistentTokens = persistent

	reset, err := s.resetTokens.DeleteExpiredResetTokens(ctx)
	if err != nil {
		errs = append(errs, fmt.Errorf("error sweeping reset tokens: %w", err))
	}
	result.ResetTokens = reset

	return result, errors.Join(errs...)
}
