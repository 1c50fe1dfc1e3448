// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a registered parent/guardian account stored in the
// "users" table.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique login identifier. It is stored trimmed and
	// lowercased; uniqueness is case-insensitive.
	Email string `json:"email"`

	// Name is the display name of the account holder.
	Name string `json:"name"`

	// PasswordHash is the bcrypt digest of the user's password.
	// It is never serialized.
	PasswordHash string `json:"-"`

	// BirthDate is the calendar date supplied at registration.
	BirthDate time.Time `json:"-"`

	// TermsAccepted records that the terms of use were accepted at registration.
	TermsAccepted bool `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Identity returns the authenticated principal for a database user.
func (u User) Identity() Identity {
	return Identity{
		UserID: u.UserID,
		Email:  u.Email,
		Name:   u.Name,
		Kind:   IdentityKindUser,
	}
}
