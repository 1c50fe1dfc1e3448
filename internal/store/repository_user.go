// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-mathkids/internal/logger"
	"github.com/MKhiriev/go-mathkids/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account and returns it with the server-assigned
// UserID and CreatedAt.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Connection problems and timeouts → [ErrStoreUnavailable].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := r.db.EnsureReady(ctx); err != nil {
		return models.User{}, err
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.UserID, &user.CreatedAt)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		if r.db.classify(err) == UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, r.db.wrapError(ErrExecutingQuery, err)
	}

	log.Info().Str("func", "*userRepository.CreateUser").Int64("user_id", user.UserID).Msg("user created")
	return user, nil
}

// FindUserByEmail retrieves the account registered under email.
//
// Error handling:
//   - empty result → [ErrNoUserWasFound].
//   - Connection problems and timeouts → [ErrStoreUnavailable].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByEmailQuery(email)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findUser(ctx, "*userRepository.FindUserByEmail", query, args)
}

// FindUserByID retrieves the account with the given primary key. Errors are
// reported the same way as by [userRepository.FindUserByEmail].
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByIDQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findUser(ctx, "*userRepository.FindUserByID", query, args)
}

func (r *userRepository) findUser(ctx context.Context, funcName, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := r.db.EnsureReady(ctx); err != nil {
		return models.User{}, err
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var found models.User
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&found.UserID,
		&found.Name,
		&found.Email,
		&found.PasswordHash,
		&found.BirthDate,
		&found.TermsAccepted,
		&found.CreatedAt,
	)
	if isNoRows(err) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error finding user")
		return models.User{}, r.db.wrapError(ErrExecutingQuery, err)
	}

	return found, nil
}
