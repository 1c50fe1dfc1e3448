// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-mathkids/internal/crypto"
	"github.com/MKhiriev/go-mathkids/internal/logger"
	"github.com/MKhiriev/go-mathkids/internal/store"
	"github.com/MKhiriev/go-mathkids/internal/validators"
	"github.com/MKhiriev/go-mathkids/models"
)

// AdminName is the display name of the fixed administrator.
const AdminName = "Administrador"

// databaseProvider authenticates registered users against the users table.
type databaseProvider struct {
	users  store.UserRepository
	hasher crypto.PasswordHasher
}

// NewDatabaseProvider returns an AuthProvider backed by users.
func NewDatabaseProvider(users store.UserRepository, hasher crypto.PasswordHasher) AuthProvider {
	return &databaseProvider{users: users, hasher: hasher}
}

// Authenticate returns [ErrInvalidCredentials] for an unknown email as well
// as for a wrong password, and spends one bcrypt comparison in both cases.
// [store.ErrStoreUnavailable] is passed through.
func (p *databaseProvider) Authenticate(ctx context.Context, email, password string) (models.Identity, error) {
	user, err := p.users.FindUserByEmail(ctx, validators.NormalizeEmail(email))
	if errors.Is(err, store.ErrNoUserWasFound) {
		p.hasher.VerifyDummy(password)
		return models.Identity{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.Identity{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !p.hasher.Verify(password, user.PasswordHash) {
		return models.Identity{}, ErrInvalidCredentials
	}

	return user.Identity(), nil
}

// fixedAdminProvider accepts the administrator configured at startup. It
// works without a database.
type fixedAdminProvider struct {
	email    string
	password string
}

// NewFixedAdminProvider returns an AuthProvider for the administrator. An
// empty email disables it.
func NewFixedAdminProvider(email, password string) AuthProvider {
	return &fixedAdminProvider{
		email:    validators.NormalizeEmail(email),
		password: password,
	}
}

func (p *fixedAdminProvider) Authenticate(_ context.Context, email, password string) (models.Identity, error) {
	if p.email == "" {
		return models.Identity{}, ErrInvalidCredentials
	}

	emailMatch := subtle.ConstantTimeCompare([]byte(validators.NormalizeEmail(email)), []byte(p.email))
	passwordMatch := subtle.ConstantTimeCompare([]byte(password), []byte(p.password))
	if emailMatch&passwordMatch != 1 {
		return models.Identity{}, ErrInvalidCredentials
	}

	return adminIdentity(p.email), nil
}

// isAdminEmail reports whether email names the configured administrator.
func (p *fixedAdminProvider) isAdminEmail(email string) bool {
	return p.email != "" && validators.NormalizeEmail(email) == p.email
}

func adminIdentity(email string) models.Identity {
	return models.Identity{
		Email: email,
		Name:  AdminName,
		Kind:  models.IdentityKindAdmin,
	}
}

// authenticate tries providers in order. The first success wins. When every
// provider fails, [store.ErrStoreUnavailable] is reported if any of them
// could not reach the database, then the first unexpected provider error,
// and [ErrInvalidCredentials] otherwise.
func authenticate(ctx context.Context, providers []AuthProvider, email, password string) (models.Identity, error) {
	log := logger.FromContext(ctx)

	var (
		storeUnavailable bool
		providerErr      error
	)
	for _, provider := range providers {
		identity, err := provider.Authenticate(ctx, email, password)
		if err == nil {
			return identity, nil
		}

		switch {
		case errors.Is(err, store.ErrStoreUnavailable):
			storeUnavailable = true
		case !errors.Is(err, ErrInvalidCredentials):
			log.Err(err).Str("func", "authenticate").Msg("auth provider failed")
			if providerErr == nil {
				providerErr = err
			}
		}
	}

	if storeUnavailable {
		return models.Identity{}, store.ErrStoreUnavailable
	}
	if providerErr != nil {
		return models.Identity{}, fmt.Errorf("error authenticating: %w", providerErr)
	}
	return models.Identity{}, ErrInvalidCredentials
}
