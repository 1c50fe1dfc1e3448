// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-mathkids/internal/config"
	"github.com/MKhiriev/go-mathkids/internal/crypto"
	"github.com/MKhiriev/go-mathkids/internal/logger"
	"github.com/MKhiriev/go-mathkids/internal/store"
	"github.com/MKhiriev/go-mathkids/internal/utils"
	"github.com/MKhiriev/go-mathkids/internal/validators"
	"github.com/MKhiriev/go-mathkids/models"
)

// authService is the concrete implementation of AuthService.
// It registers users, runs password logins through the provider chain and
// issues session and remember-me tokens.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	tokenService TokenService
	hasher       crypto.PasswordHasher

	// providers are tried in order on every login.
	providers []AuthProvider
	admin     *fixedAdminProvider

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	sessionTTL  time.Duration
	rememberTTL time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewAuthService constructs an AuthService whose login tries the database
// first and the configured administrator second.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	tokenService TokenService,
	hasher crypto.PasswordHasher,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	admin := NewFixedAdminProvider(cfg.AdminEmail, cfg.AdminPassword).(*fixedAdminProvider)

	return &authService{
		userRepository: userRepository,
		tokenService:   tokenService,
		hasher:         hasher,
		providers:      []AuthProvider{NewDatabaseProvider(userRepository, hasher), admin},
		admin:          admin,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		sessionTTL:     cfg.SessionTTL,
		rememberTTL:    cfg.RememberMeTTL,
		now:            time.Now,
		logger:         logger,
	}
}

// Register creates a new account from an already validated request.
//
// Returns the persisted user or:
//   - [ErrInvalidInput] if the birth date or password cannot be processed.
//   - [store.ErrEmailAlreadyExists] if the email is taken.
//   - [store.ErrStoreUnavailable] if the database cannot be reached.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	birthDate, err := validators.ParseBirthDate(req.BirthDate)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	passwordHash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("error hashing password")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	user := models.User{
		Name:          strings.TrimSpace(req.Name),
		Email:         validators.NormalizeEmail(req.Email),
		PasswordHash:  passwordHash,
		BirthDate:     birthDate,
		TermsAccepted: req.TermsAccepted,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates the request and issues a session token. When
// remember-me was requested a persistent token is issued too; failing to do
// so is logged and leaves [models.LoginResult.RememberMe] false.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	log := logger.FromContext(ctx)

	identity, err := authenticate(ctx, a.providers, req.Email, req.Password)
	if err != nil {
		log.Info().Err(err).Str("func", "*authService.Login").Msg("login rejected")
		return models.LoginResult{}, err
	}

	sessionToken, err := utils.GenerateJWTToken(a.tokenIssuer, subjectOf(identity), models.AudienceSession, a.sessionTTL, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("error creating session token")
		return models.LoginResult{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	result := models.LoginResult{Identity: identity, SessionToken: sessionToken}
	if !req.RememberMe {
		return result, nil
	}

	rememberToken, err := a.issueRememberToken(ctx, identity, req.ClientMetadata)
	if err != nil {
		log.Warn().Err(err).Str("func", "*authService.Login").Str("kind", string(identity.Kind)).Msg("remember-me token was not issued")
		return result, nil
	}

	result.RememberToken = rememberToken
	result.RememberUntil = a.now().Add(a.rememberTTL)
	return result, nil
}

// issueRememberToken returns a persistent token for database users and a
// signed remember-me JWT for the administrator, who has no database row.
func (a *authService) issueRememberToken(ctx context.Context, identity models.Identity, meta models.ClientMetadata) (string, error) {
	if identity.IsAdmin() {
		token, err := utils.GenerateJWTToken(a.tokenIssuer, models.AdminTokenSubject, models.AudienceRememberMe, a.rememberTTL, a.tokenSignKey)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
		}
		return token.String(), nil
	}

	raw, _, err := a.tokenService.IssuePersistentToken(ctx, identity.UserID, meta)
	if err != nil {
		return "", err
	}
	return raw, nil
}

// VerifyRememberToken resolves a remember-me token to its identity.
// The administrator's token is a JWT; every other token is looked up among
// the persistent tokens.
func (a *authService) VerifyRememberToken(ctx context.Context, rawToken string) (models.Identity, error) {
	rawToken = strings.TrimSpace(rawToken)
	if rawToken == "" {
		return models.Identity{}, ErrInvalidOrExpiredToken
	}

	if isJWT(rawToken) {
		token, err := utils.ValidateAndParseJWTToken(rawToken, a.tokenSignKey, a.tokenIssuer, models.AudienceRememberMe)
		if err != nil || !token.IsAdmin() || a.admin.email == "" {
			return models.Identity{}, ErrInvalidOrExpiredToken
		}
		return adminIdentity(a.admin.email), nil
	}

	verified, err := a.tokenService.VerifyPersistentToken(ctx, rawToken)
	if err != nil {
		return models.Identity{}, err
	}

	return verified.User.Identity(), nil
}

// Logout revokes the persistent token behind rawToken, if any. Failures are
// logged and never reported: the client is logged out either way.
func (a *authService) Logout(ctx context.Context, rawToken string) {
	log := logger.FromContext(ctx)

	rawToken = strings.TrimSpace(rawToken)
	if rawToken == "" || isJWT(rawToken) {
		return
	}

	verified, err := a.tokenService.VerifyPersistentToken(ctx, rawToken)
	if err != nil {
		if !errors.Is(err, ErrInvalidOrExpiredToken) {
			log.Warn().Err(err).Str("func", "*authService.Logout").Msg("could not resolve persistent token")
		}
		return
	}

	if err = a.tokenService.RevokePersistentToken(ctx, verified.Token.ID); err != nil {
		log.Warn().Err(err).Str("func", "*authService.Logout").Int64("token_id", verified.Token.ID).Msg("could not revoke persistent token")
	}
}

// ParseSessionToken validates a bearer session token and returns the
// identity it was issued to. A user that no longer exists makes the token
// invalid.
func (a *authService) ParseSessionToken(ctx context.Context, rawToken string) (models.Identity, error) {
	token, err := utils.ValidateAndParseJWTToken(rawToken, a.tokenSignKey, a.tokenIssuer, models.AudienceSession)
	if err != nil {
		return models.Identity{}, ErrInvalidOrExpiredToken
	}

	if token.IsAdmin() {
		if a.admin.email == "" {
			return models.Identity{}, ErrInvalidOrExpiredToken
		}
		return adminIdentity(a.admin.email), nil
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.Identity{}, ErrInvalidOrExpiredToken
	}
	if err != nil {
		return models.Identity{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user.Identity(), nil
}

func subjectOf(identity models.Identity) string {
	if identity.IsAdmin() {
		return models.AdminTokenSubject
	}
	return utils.UserSubject(identity.UserID)
}

// isJWT tells compact JWS values apart from hex persistent tokens.
func isJWT(raw string) bool {
	return strings.Count(raw, ".") == 2
}
