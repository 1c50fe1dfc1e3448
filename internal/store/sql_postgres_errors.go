// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify]. It tells repositories whether a failed
// database operation means the store is unreachable, the data violated a
// constraint, or something else went wrong.
type ErrorClassification int

const (
	// Internal is the default classification for unrecognised errors,
	// syntax errors and data exceptions.
	Internal ErrorClassification = iota

	// Unavailable indicates a connection problem, a server that refuses
	// connections, or a timed out query.
	Unavailable

	// UniqueViolation indicates a unique index rejected the write.
	UniqueViolation
)

// ErrorClassificator maps driver errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL
// accessed through the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Server-side errors are resolved
// through [ClassifyPgError]; client-side connection failures and deadline
// expiry are [Unavailable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Internal
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return Unavailable
	}

	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		pgconn.Timeout(err) {
		return Unavailable
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return Unavailable
	}

	return Internal
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
//
// Unavailable codes:
//   - Class 08: connection exceptions
//   - Class 53: insufficient resources (too many connections)
//   - 57P01..57P03: admin/crash shutdown, cannot connect now
//   - 57014: query canceled (statement timeout)
//
// Unique violations (23505) are reported separately so that registration
// can answer with a conflict. Anything else is [Internal].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	if pgerrcode.IsConnectionException(pgErr.Code) ||
		pgerrcode.IsInsufficientResources(pgErr.Code) {
		return Unavailable
	}

	switch pgErr.Code {
	case pgerrcode.AdminShutdown,
		pgerrcode.CrashShutdown,
		pgerrcode.CannotConnectNow,
		pgerrcode.QueryCanceled:
		return Unavailable

	case pgerrcode.UniqueViolation:
		return UniqueViolation
	}

	return Internal
}
