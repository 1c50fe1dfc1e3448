// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ClientMetadata describes the client a persistent token was issued to.
type ClientMetadata struct {
	UserAgent string `json:"user_agent"`
	IPAddress string `json:"ip_address"`
}

// PersistentToken is a "remember me" credential stored in the
// "auth_tokens" table. Only the bcrypt digest of the token is persisted;
// the raw value is handed to the client exactly once.
type PersistentToken struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	TokenHash  string    `json:"-"`
	ExpiresAt  time.Time `json:"expires_at"`
	CreatedAt  time.Time `json:"created_at"`
	LastUsedAt time.Time `json:"last_used_at"`

	ClientMetadata
}

// TableName returns the name of the database table
// associated with the PersistentToken model.
func (t PersistentToken) TableName() string {
	return "auth_tokens"
}

// Expired reports whether the token is past its expiry at the given instant.
func (t PersistentToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// VerifiedToken is a persistent token that matched a presented raw value,
// together with the account that owns it.
type VerifiedToken struct {
	Token PersistentToken
	User  User
}
