// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// AdminTokenSubject is the "sub" claim of tokens issued to the fixed
// administrator, who has no numeric user ID.
const AdminTokenSubject = "admin"

// Token audiences. A session token cannot be replayed as a remember-me
// token and vice versa.
const (
	AudienceSession    = "session"
	AudienceRememberMe = "remember-me"
)

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature). UserID is the parsed "sub" claim and stays
// zero for administrator tokens.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	SignedString string `json:"-"`

	UserID int64 `json:"-"`
}

// IsAdmin reports whether the token was issued to the administrator.
func (t *Token) IsAdmin() bool {
	return t.Subject == AdminTokenSubject
}

// GetUserID extracts the user identifier from the token's "sub" (subject) claim,
// parses it as a base-10 int64, and returns the result.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token, or "" for
// a nil token.
func (t *Token) String() string {
	if t == nil {
		return ""
	}
	return t.SignedString
}
