// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-mathkids/internal/config"
	"github.com/MKhiriev/go-mathkids/internal/logger"
	"github.com/rs/zerolog"
)

// redactedToken replaces the token query parameter of logged reset links.
const redactedToken = "REDACTED"

// logMailer writes reset messages to the log instead of sending them.
// It is meant for development and for deployments without a provider.
type logMailer struct {
	logger      *logger.Logger
	redactLinks bool
}

// NewLogMailer returns a [Mailer] that logs the rendered message. With
// redactLinks set the reset token is removed from the logged link, so the
// log never becomes a way to take over an account.
func NewLogMailer(logger *logger.Logger, redactLinks bool) Mailer {
	return &logMailer{logger: logger, redactLinks: redactLinks}
}

func (m *logMailer) Provider() string {
	return config.MailProviderLog
}

func (m *logMailer) Healthy(context.Context) error {
	return nil
}

func (m *logMailer) SendPasswordReset(ctx context.Context, email PasswordResetEmail) error {
	if strings.TrimSpace(email.To) == "" {
		return ErrEmptyRecipient
	}

	rendered, err := renderPasswordReset(email)
	if err != nil {
		return err
	}

	log := logger.FromContext(ctx)
	if log.GetLevel() == zerolog.Disabled {
		log = m.logger
	}

	link := email.ResetLink
	if m.redactLinks {
		link = redactResetLink(link)
	}

	log.Info().
		Str("func", "*logMailer.SendPasswordReset").
		Str("to", email.To).
		Str("subject", rendered.Subject).
		Str("reset_link", link).
		Msg("password reset email written to log")
	return nil
}

// redactResetLink replaces the token query parameter of link. A link that
// cannot be parsed is dropped entirely.
func redactResetLink(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return redactedToken
	}

	query := u.Query()
	if query.Has("token") {
		query.Set("token", redactedToken)
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// NewMailer selects the implementation named by cfg.Provider. In production
// the log implementation redacts reset tokens.
func NewMailer(cfg config.Mail, production bool, logger *logger.Logger) (Mailer, error) {
	switch cfg.Provider {
	case config.MailProviderHTTP:
		return NewHTTPMailer(cfg, logger)
	case config.MailProviderLog, "":
		return NewLogMailer(logger, production), nil
	default:
		return nil, ErrUnknownMailProvider
	}
}
