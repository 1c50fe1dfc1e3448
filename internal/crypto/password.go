// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the longest input bcrypt takes into account.
const MaxPasswordBytes = 72

// dummySecret is hashed once to obtain a digest with the configured cost
// for [BcryptHasher.VerifyDummy]. Nothing is ever hashed to match it.
const dummySecret = "mathkids-timing-equalizer"

// BcryptHasher implements [PasswordHasher] with bcrypt.
type BcryptHasher struct {
	cost int

	dummyOnce   sync.Once
	dummyDigest []byte
}

// NewBcryptHasher returns a hasher with the given work factor. A cost outside
// [bcrypt.MinCost, bcrypt.MaxCost] falls back to [bcrypt.DefaultCost].
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Cost returns the work factor in use.
func (h *BcryptHasher) Cost() int {
	return h.cost
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}
	if len(plaintext) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

func (h *BcryptHasher) Verify(plaintext, digest string) bool {
	if plaintext == "" || digest == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

func (h *BcryptHasher) VerifyDummy(plaintext string) {
	h.dummyOnce.Do(func() {
		h.dummyDigest, _ = bcrypt.GenerateFromPassword([]byte(dummySecret), h.cost)
	})
	_ = bcrypt.CompareHashAndPassword(h.dummyDigest, []byte(plaintext))
}
