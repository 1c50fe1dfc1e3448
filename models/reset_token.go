// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ResetToken is a single-use password reset credential stored in the
// "password_resets" table. Like [PersistentToken] only its digest is kept.
type ResetToken struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	TokenHash string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	Used      bool      `json:"used"`
}

// TableName returns the name of the database table
// associated with the ResetToken model.
func (t ResetToken) TableName() string {
	return "password_resets"
}

// Redeemable reports whether the token is unused and not expired.
func (t ResetToken) Redeemable(now time.Time) bool {
	return !t.Used && now.Before(t.ExpiresAt)
}
