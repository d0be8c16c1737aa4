// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer and hands the delivery layer external views only.
package usecase

import (
	"context"
)

// --- Input DTOs ---

// RegisterAccountInput defines the raw data a client submits to create an account.
// Values are passed as received; trimming and normalization happen in the service.
type RegisterAccountInput struct {
	Name     string
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterAccountOutput carries the filtered view of the newly created account.
type RegisterAccountOutput struct {
	User ExternalAccount
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	RegisterAccount(ctx context.Context, input *RegisterAccountInput) (*RegisterAccountOutput, error)
}
