// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest is the body of POST /api/register.
type RegisterRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	BirthDate     string `json:"birthDate"` // YYYY-MM-DD
	TermsAccepted bool   `json:"termsAccepted"`
}

// LoginRequest is the body of POST /api/login.
//
// UserAgent and IPAddress are not part of the body; the handler fills
// them from the request so they can be stored with a persistent token.
type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`

	ClientMetadata `json:"-"`
}

// ForgotPasswordRequest is the body of POST /api/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest is the body of POST /api/reset-password.
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
}
