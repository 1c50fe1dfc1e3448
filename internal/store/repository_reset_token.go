// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-mathkids/internal/logger"
	"github.com/MKhiriev/go-mathkids/models"
)

// resetTokenRepository is the PostgreSQL-backed implementation of
// [ResetTokenRepository] over the "password_resets" table.
type resetTokenRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewResetTokenRepository constructs a [ResetTokenRepository].
func NewResetTokenRepository(db *DB, logger *logger.Logger) ResetTokenRepository {
	logger.Debug().Msg("creating reset token repository")
	return &resetTokenRepository{
		db:     db,
		logger: logger,
	}
}

func (r *resetTokenRepository) SaveResetToken(ctx context.Context, token models.ResetToken) (models.ResetToken, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertResetTokenQuery(token)
	if err != nil {
		log.Err(err).Str("func", "resetTokenRepository.SaveResetToken").Msg("failed to build query")
		return models.ResetToken{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := r.db.EnsureReady(ctx); err != nil {
		return models.ResetToken{}, err
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&token.ID, &token.CreatedAt, &token.Used)
	if err != nil {
		log.Err(err).
			Str("func", "resetTokenRepository.SaveResetToken").
			Int64("user_id", token.UserID).
			Msg("failed to insert reset token")
		return models.ResetToken{}, r.db.wrapError(ErrExecutingQuery, err)
	}

	return token, nil
}

func (r *resetTokenRepository) FindRedeemableResetTokens(ctx context.Context, userID int64) ([]models.ResetToken, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRedeemableResetTokensQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "resetTokenRepository.FindRedeemableResetTokens").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := r.db.EnsureReady(ctx); err != nil {
		return nil, err
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "resetTokenRepository.FindRedeemableResetTokens").
			Int64("user_id", userID).
			Msg("failed to execute query")
		return nil, r.db.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	tokens := make([]models.ResetToken, 0, 4)
	for rows.Next() {
		var token models.ResetToken

		scanErr := rows.Scan(
			&token.ID,
			&token.UserID,
			&token.TokenHash,
			&token.ExpiresAt,
			&token.CreatedAt,
			&token.Used,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "resetTokenRepository.FindRedeemableResetTokens").
				Int64("user_id", userID).
				Msg("failed to scan reset token row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		tokens = append(tokens, token)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "resetTokenRepository.FindRedeemableResetTokens").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, r.db.wrapError(ErrScanningRows, rowsErr)
	}

	return tokens, nil
}

// RedeemResetToken consumes a reset token inside a single database transaction.
//
// The conditional UPDATE on password_resets is the linearization point: of
// two concurrent redemptions of the same token only one sees an affected
// row, the other gets [ErrResetTokenNotRedeemable]. The transaction is rolled
// back automatically (via defer) if any step fails.
func (r *resetTokenRepository) RedeemResetToken(ctx context.Context, tokenID, userID int64, newPasswordHash string) error {
	log := logger.FromContext(ctx).With().
		Str("func", "resetTokenRepository.RedeemResetToken").
		Int64("user_id", userID).
		Int64("token_id", tokenID).
		Logger()

	markQuery, markArgs, err := buildMarkResetTokenUsedQuery(tokenID, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	passwordQuery, passwordArgs, err := buildUpdateUserPasswordQuery(userID, newPasswordHash)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	revokeQuery, revokeArgs, err := buildDeleteUserPersistentTokensQuery(userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := r.db.EnsureReady(ctx); err != nil {
		return err
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("failed to begin transaction")
		return r.db.wrapError(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, markQuery, markArgs...)
	if err != nil {
		log.Err(err).Msg("failed to mark reset token as used")
		return r.db.wrapError(ErrExecutingStatement, err)
	}
	marked, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if marked == 0 {
		log.Warn().Msg("reset token already used or expired")
		return ErrResetTokenNotRedeemable
	}

	result, err = tx.ExecContext(ctx, passwordQuery, passwordArgs...)
	if err != nil {
		log.Err(err).Msg("failed to update password hash")
		return r.db.wrapError(ErrExecutingStatement, err)
	}
	if updated, _ := result.RowsAffected(); updated == 0 {
		log.Warn().Msg("user of reset token does not exist")
		return ErrNoUserWasFound
	}

	revoked, err := tx.ExecContext(ctx, revokeQuery, revokeArgs...)
	if err != nil {
		log.Err(err).Msg("failed to revoke persistent tokens")
		return r.db.wrapError(ErrExecutingStatement, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Msg("failed to commit transaction")
		return r.db.wrapError(ErrCommitingTransaction, commitErr)
	}

	revokedCount, _ := revoked.RowsAffected()
	log.Info().Int64("revoked_tokens", revokedCount).Msg("reset token redeemed")

	return nil
}

func (r *resetTokenRepository) DeleteExpiredResetTokens(ctx context.Context) (int64, error) {
	query, args, err := buildDeleteExpiredQuery(tablePasswordResets)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.db.execAffected(ctx, "resetTokenRepository.DeleteExpiredResetTokens", query, args)
}
