package usecase

import (
	"time"

	"autoserv/internal/domain/entity"
)

// ExternalAccount is the only account shape that leaves the usecase layer.
// It has no credential field, so a hash cannot be serialized by accident.
type ExternalAccount struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ExternalService is the public view of a catalog entry.
type ExternalService struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	BasePrice    float64   `json:"basePrice"`
	DurationMins int       `json:"durationMins"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ToExternalAccount drops the credential hash and renames the identifier.
func ToExternalAccount(account *entity.Account) ExternalAccount {
	if account == nil {
		return ExternalAccount{}
	}

	return ExternalAccount{
		ID:        account.ID.String(),
		Name:      account.Name,
		Email:     account.Email,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}

// ToExternalService maps a catalog entity to its external view.
func ToExternalService(offering *entity.ServiceOffering) ExternalService {
	if offering == nil {
		return ExternalService{}
	}

	return ExternalService{
		ID:           offering.ID.String(),
		Name:         offering.Name,
		Description:  offering.Description,
		BasePrice:    offering.BasePrice,
		DurationMins: offering.DurationMins,
		IsActive:     offering.IsActive,
		CreatedAt:    offering.CreatedAt,
		UpdatedAt:    offering.UpdatedAt,
	}
}

// ToExternalServices maps a list, returning an empty slice rather than nil.
func ToExternalServices(offerings []*entity.ServiceOffering) []ExternalService {
	out := make([]ExternalService, 0, len(offerings))
	for _, offering := range offerings {
		if offering == nil {
			continue
		}
		out = append(out, ToExternalService(offering))
	}

	return out
}
