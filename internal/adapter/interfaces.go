// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound integrations of the mathkids API.
//
// The primary abstraction is [Mailer], which decouples the password reset
// flow from the email provider. The package ships an HTTP implementation
// ([NewHTTPMailer]) that talks to a transactional email API and a log
// implementation ([NewLogMailer]) that only writes the message to the
// application log.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for provider-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrRateLimited] for 429).
package adapter

import (
	"context"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mailer_mock.go -package=mock

// PasswordResetEmail is the content of a password reset message.
type PasswordResetEmail struct {
	// To is the recipient address.
	To string

	// Name is the greeting name. An empty name falls back to a generic one.
	Name string

	// ResetLink is the absolute URL of the reset page, token included.
	ResetLink string

	// ExpiresIn is how long the link stays valid.
	ExpiresIn time.Duration
}

// Mailer dispatches transactional emails.
type Mailer interface {
	// SendPasswordReset renders and sends the reset message. Implementations
	// must honour ctx cancellation.
	SendPasswordReset(ctx context.Context, email PasswordResetEmail) error

	// Healthy reports whether the provider can currently accept messages.
	Healthy(ctx context.Context) error

	// Provider names the implementation ("http" or "log"). It is reported
	// in development diagnostics.
	Provider() string
}
