// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is a registered user of the catalog.
// CredentialHash is opaque outside the store and never leaves the service boundary;
// use usecase.ToExternalAccount to build any outward representation.
type Account struct {
	ID             uuid.UUID // Assigned by the store on creation, immutable afterwards.
	Name           string    // Display name, trimmed, 2-60 characters.
	Email          string    // Normalized (trimmed, lower-cased) email, unique across all accounts.
	CredentialHash string    // Output of the credential hasher.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
