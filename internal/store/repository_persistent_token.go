// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-mathkids/internal/logger"
	"github.com/MKhiriev/go-mathkids/models"
)

// persistentTokenRepository is the PostgreSQL-backed implementation of
// [PersistentTokenRepository] over the "auth_tokens" table.
type persistentTokenRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewPersistentTokenRepository constructs a [PersistentTokenRepository].
func NewPersistentTokenRepository(db *DB, logger *logger.Logger) PersistentTokenRepository {
	logger.Debug().Msg("creating persistent token repository")
	return &persistentTokenRepository{
		db:     db,
		logger: logger,
	}
}

func (p *persistentTokenRepository) SavePersistentToken(ctx context.Context, token models.PersistentToken) (models.PersistentToken, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertPersistentTokenQuery(token)
	if err != nil {
		log.Err(err).Str("func", "persistentTokenRepository.SavePersistentToken").Msg("failed to build query")
		return models.PersistentToken{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := p.db.EnsureReady(ctx); err != nil {
		return models.PersistentToken{}, err
	}

	ctx, cancel := p.db.withTimeout(ctx)
	defer cancel()

	err = p.db.QueryRowContext(ctx, query, args...).Scan(&token.ID, &token.CreatedAt, &token.LastUsedAt)
	if err != nil {
		log.Err(err).
			Str("func", "persistentTokenRepository.SavePersistentToken").
			Int64("user_id", token.UserID).
			Msg("failed to insert persistent token")
		return models.PersistentToken{}, p.db.wrapError(ErrExecutingQuery, err)
	}

	return token, nil
}

// FindActivePersistentTokens returns every non-expired token joined with
// the owning account, newest first.
func (p *persistentTokenRepository) FindActivePersistentTokens(ctx context.Context) ([]models.VerifiedToken, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectActivePersistentTokensQuery()
	if err != nil {
		log.Err(err).Str("func", "persistentTokenRepository.FindActivePersistentTokens").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := p.db.EnsureReady(ctx); err != nil {
		return nil, err
	}

	ctx, cancel := p.db.withTimeout(ctx)
	defer cancel()

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "persistentTokenRepository.FindActivePersistentTokens").Msg("failed to execute query")
		return nil, p.db.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	tokens := make([]models.VerifiedToken, 0, 8)
	for rows.Next() {
		var item models.VerifiedToken

		scanErr := rows.Scan(
			&item.Token.ID,
			&item.Token.UserID,
			&item.Token.TokenHash,
			&item.Token.ExpiresAt,
			&item.Token.CreatedAt,
			&item.Token.LastUsedAt,
			&item.Token.UserAgent,
			&item.Token.IPAddress,
			&item.User.Email,
			&item.User.Name,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "persistentTokenRepository.FindActivePersistentTokens").Msg("failed to scan token row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		item.User.UserID = item.Token.UserID

		tokens = append(tokens, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "persistentTokenRepository.FindActivePersistentTokens").Msg("error occurred during rows iteration")
		return nil, p.db.wrapError(ErrScanningRows, rowsErr)
	}

	return tokens, nil
}

func (p *persistentTokenRepository) TouchPersistentToken(ctx context.Context, tokenID int64) error {
	query, args, err := buildTouchPersistentTokenQuery(tokenID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	_, err = p.db.execAffected(ctx, "persistentTokenRepository.TouchPersistentToken", query, args)
	return err
}

func (p *persistentTokenRepository) DeletePersistentToken(ctx context.Context, tokenID int64) error {
	query, args, err := buildDeletePersistentTokenQuery(tokenID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	_, err = p.db.execAffected(ctx, "persistentTokenRepository.DeletePersistentToken", query, args)
	return err
}

func (p *persistentTokenRepository) DeleteUserPersistentTokens(ctx context.Context, userID int64) (int64, error) {
	query, args, err := buildDeleteUserPersistentTokensQuery(userID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return p.db.execAffected(ctx, "persistentTokenRepository.DeleteUserPersistentTokens", query, args)
}

func (p *persistentTokenRepository) DeleteExpiredPersistentTokens(ctx context.Context) (int64, error) {
	query, args, err := buildDeleteExpiredQuery(tableAuthTokens)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return p.db.execAffected(ctx, "persistentTokenRepository.DeleteExpiredPersistentTokens", query, args)
}
