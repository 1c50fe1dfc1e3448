// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// IdentityKind tells database users apart from the fixed administrator.
type IdentityKind string

const (
	IdentityKindUser  IdentityKind = "user"
	IdentityKindAdmin IdentityKind = "admin"
)

// Identity is the principal produced by every authentication path:
// password login, remember-me verification and session token parsing.
type Identity struct {
	// UserID is zero for the administrator, who has no database row.
	UserID int64        `json:"id"`
	Email  string       `json:"email"`
	Name   string       `json:"name"`
	Kind   IdentityKind `json:"kind"`
}

// IsAdmin reports whether the identity is the fixed administrator.
func (i Identity) IsAdmin() bool {
	return i.Kind == IdentityKindAdmin
}
