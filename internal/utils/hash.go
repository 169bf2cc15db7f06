// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordLength is the longest password bcrypt can digest without
// truncation, in bytes.
const MaxPasswordLength = 72

// ErrPasswordTooLong is returned by [BcryptHasher.Hash] for passwords longer
// than [MaxPasswordLength] bytes.
var ErrPasswordTooLong = errors.New("password must be 72 bytes or fewer")

// BcryptHasher produces and checks one-way password digests with bcrypt.
// It is safe for concurrent use.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher using the given bcrypt cost. A cost outside
// [bcrypt.MinCost, bcrypt.MaxCost] falls back to [bcrypt.DefaultCost].
//
// Example usage:
//
//	hasher := utils.NewBcryptHasher(bcrypt.DefaultCost)
//	digest, err := hasher.Hash("secret")
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns the bcrypt digest of password. The digest embeds its own salt,
// so hashing the same password twice yields different strings.
func (h *BcryptHasher) Hash(password string) (string, error) {
	if len(password) > MaxPasswordLength {
		return "", ErrPasswordTooLong
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// Verify reports whether password matches digest. A malformed digest never
// matches.
func (h *BcryptHasher) Verify(digest, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
