package entity

import (
	"time"

	"github.com/google/uuid"
)

// ServiceOffering is a purchasable catalog entry.
type ServiceOffering struct {
	ID           uuid.UUID
	Name         string
	Description  string
	BasePrice    float64 // Non-negative price in the shop's currency.
	DurationMins int     // Between 1 and 480.
	IsActive     bool    // Inactive offerings are hidden from the catalog listing.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
