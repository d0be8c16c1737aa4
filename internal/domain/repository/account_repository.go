// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"autoserv/internal/domain/entity"
)

// ErrAccountNotFound is returned by FindByEmail when no account owns the email.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository stores accounts keyed by normalized email.
//
// Uniqueness of the email is enforced by the storage engine itself (a unique
// index or an equivalent atomic compare-and-insert). FindByEmail is only a
// latency optimization that lets callers skip hashing for obvious duplicates;
// it must never be treated as the uniqueness guard, because a lookup followed
// by an insert is not atomic.
type AccountRepository interface {
	// FindByEmail retrieves the account that owns the normalized email.
	// Returns ErrAccountNotFound when there is none.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// InsertUnique persists the account in a single atomic write. When another
	// account already owns the email it returns an error matching
	// domainerrors.ErrEmailAlreadyInUse and nothing is written. On success the
	// store-assigned ID, CreatedAt and UpdatedAt are set on account.
	InsertUnique(ctx context.Context, account *entity.Account) error
}
