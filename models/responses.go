// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// MessageResponse is the body of every non-2xx JSON response and of
// responses that carry nothing but a human readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse is the public view of an authenticated principal.
type UserResponse struct {
	ID    int64        `json:"id"`
	Email string       `json:"email"`
	Name  string       `json:"name"`
	Kind  IdentityKind `json:"kind"`
}

// NewUserResponse converts an [Identity] into its public view.
func NewUserResponse(identity Identity) UserResponse {
	return UserResponse{
		ID:    identity.UserID,
		Email: identity.Email,
		Name:  identity.Name,
		Kind:  identity.Kind,
	}
}

// RegisterResponse is returned by POST /api/register.
type RegisterResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// LoginResult is what a successful login produces before it is rendered.
// RememberToken is empty when remember-me was not requested or could not
// be issued.
type LoginResult struct {
	Identity      Identity
	SessionToken  *Token
	RememberToken string
	RememberUntil time.Time
}

// RememberMe reports whether a persistent token was issued.
func (r LoginResult) RememberMe() bool {
	return r.RememberToken != ""
}

// LoginResponse is returned by POST /api/login.
type LoginResponse struct {
	Message      string       `json:"message"`
	User         UserResponse `json:"user"`
	SessionToken string       `json:"sessionToken"`
	RememberMe   bool         `json:"rememberMe"`
}

// VerifyTokenResponse is returned by GET /api/verify-token.
type VerifyTokenResponse struct {
	Message   string       `json:"message"`
	User      UserResponse `json:"user"`
	AutoLogin bool         `json:"autoLogin"`
}

// MeResponse is returned by GET /api/me.
type MeResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// DevInfo carries reset debugging details. It is only populated outside
// production.
type DevInfo struct {
	ResetToken string `json:"resetToken"`
	ResetLink  string `json:"resetLink"`
	EmailSent  bool   `json:"emailSent"`
	Provider   string `json:"provider,omitempty"`
	Error      string `json:"error,omitempty"`
}

// ForgotPasswordResult is the outcome of a reset request. The message is
// the same whether or not the email belongs to an account.
type ForgotPasswordResult struct {
	Message string   `json:"message"`
	DevInfo *DevInfo `json:"devInfo,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
}

// DatabaseHealthResponse is returned by GET /health/database.
type DatabaseHealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	QueryTime string `json:"query_time,omitempty"`
	Error     string `json:"error,omitempty"`
}

// EmailHealthResponse is returned by GET /health/email.
type EmailHealthResponse struct {
	Status       string    `json:"status"`
	EmailService string    `json:"email_service"`
	Provider     string    `json:"provider"`
	Error        string    `json:"error,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// StatusResponse is returned by GET /api/status.
type StatusResponse struct {
	API                string    `json:"api"`
	Version            string    `json:"version"`
	Environment        string    `json:"environment"`
	DatabaseConfigured bool      `json:"database_configured"`
	Timestamp          time.Time `json:"timestamp"`
	Endpoints          []string  `json:"endpoints"`
}

// SweepResult reports how many expired rows one sweep removed.
type SweepResult struct {
	PersistentTokens int64
	ResetTokens      int64
}
