// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-mathkids/internal/config"
	"github.com/MKhiriev/go-mathkids/internal/logger"
	"github.com/MKhiriev/go-mathkids/internal/utils"
)

type emailAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// sendEmailRequest is the JSON body accepted by the provider send endpoint.
type sendEmailRequest struct {
	From    emailAddress   `json:"from"`
	To      []emailAddress `json:"to"`
	Subject string         `json:"subject"`
	HTML    string         `json:"html"`
	Text    string         `json:"text"`
}

type httpMailer struct {
	client   *utils.HTTPClient
	sendPath string

	apiToken string
	from     emailAddress

	logger *logger.Logger
}

// NewHTTPMailer constructs a [Mailer] that POSTs JSON messages to
// cfg.APIURL, authenticated with cfg.APIToken as a bearer token. Every
// dispatch is bounded by cfg.Timeout.
//
// Returns [ErrInvalidMailEndpoint] if cfg.APIURL is not an absolute URL.
func NewHTTPMailer(cfg config.Mail, logger *logger.Logger) (Mailer, error) {
	baseURL, sendPath, err := splitEndpoint(cfg.APIURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMailEndpoint, err)
	}

	return &httpMailer{
		client:   utils.NewHTTPClient(baseURL, cfg.Timeout),
		sendPath: sendPath,
		apiToken: cfg.APIToken,
		from:     emailAddress{Email: cfg.FromEmail, Name: cfg.FromName},
		logger:   logger,
	}, nil
}

// splitEndpoint separates scheme and host from the path of raw so the
// resty client can carry the former as its base URL.
func splitEndpoint(raw string) (string, string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", "", fmt.Errorf("address must include host and scheme")
	}

	return u.Scheme + "://" + u.Host, u.RequestURI(), nil
}

func (m *httpMailer) Provider() string {
	return config.MailProviderHTTP
}

// Healthy sends a HEAD request to the send endpoint. The provider counts as
// healthy when it answers, unless it rejects the credentials, throttles or
// reports a server error. 404 and 405 only mean the endpoint refuses HEAD.
func (m *httpMailer) Healthy(ctx context.Context) error {
	req := m.client.R().SetContext(ctx)
	if m.apiToken != "" {
		req.SetAuthToken(m.apiToken)
	}

	resp, err := req.Head(m.sendPath)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*httpMailer.Healthy").Msg("mail provider is unreachable")
		return fmt.Errorf("%w: %w", ErrProviderUnreachable, err)
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusTooManyRequests:
		return mapHTTPError(resp)
	}
	if resp.StatusCode() >= http.StatusInternalServerError {
		return mapHTTPError(resp)
	}
	return nil
}

// SendPasswordReset implements [Mailer]. Non-2xx answers are mapped to the
// sentinel errors of this package.
func (m *httpMailer) SendPasswordReset(ctx context.Context, email PasswordResetEmail) error {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(email.To) == "" {
		return ErrEmptyRecipient
	}

	rendered, err := renderPasswordReset(email)
	if err != nil {
		return err
	}

	req := m.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(sendEmailRequest{
			From:    m.from,
			To:      []emailAddress{{Email: email.To, Name: email.Name}},
			Subject: rendered.Subject,
			HTML:    rendered.HTML,
			Text:    rendered.Text,
		})
	if m.apiToken != "" {
		req.SetAuthToken(m.apiToken)
	}

	resp, err := req.Post(m.sendPath)
	if err != nil {
		log.Err(err).Str("func", "*httpMailer.SendPasswordReset").Msg("mail provider request failed")
		return fmt.Errorf("%w: %w", ErrSendingEmail, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*httpMailer.SendPasswordReset").Int("status", resp.StatusCode()).Msg("mail provider rejected the message")
		return fmt.Errorf("%w: %w", ErrSendingEmail, err)
	}

	log.Info().Str("func", "*httpMailer.SendPasswordReset").Msg("password reset email sent")
	return nil
}
