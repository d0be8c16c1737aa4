// Package auth provides concrete implementations for credential-related domain services.
package auth

import (
	"unicode/utf8"

	"autoserv/config"
	domainerrors "autoserv/internal/domain/errors"
	"autoserv/internal/domain/service"
	"autoserv/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

// maxSecretBytes is the bcrypt input limit. Longer inputs would be truncated silently.
const maxSecretBytes = 72

// bcryptHasher is a concrete implementation of the CredentialHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher builds the hasher from auth.bcryptCost.
func NewBcryptHasher(cfg *config.Config) service.CredentialHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil {
		cost = cfg.Auth.BcryptCost
	}

	return NewBcryptHasherWithCost(cost)
}

// NewBcryptHasherWithCost clamps cost into bcrypt's accepted range.
func NewBcryptHasherWithCost(cost int) service.CredentialHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext secret. bcrypt handles salt generation.
func (h *bcryptHasher) Hash(secret string) (string, error) {
	if utf8.RuneCountInString(secret) < service.MinSecretLength {
		return "", domainerrors.ErrSecretTooShort
	}
	if len(secret) > maxSecretBytes {
		return "", domainerrors.ErrSecretTooLong
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt.GenerateFromPassword")
	}

	return string(bytes), nil
}

// Verify compares a plaintext secret with a bcrypt hash in constant time.
func (h *bcryptHasher) Verify(secret, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
