package repository

import (
	"context"

	"autoserv/internal/domain/entity"
)

// CatalogRepository reads purchasable service offerings.
type CatalogRepository interface {
	// FindActive returns every active offering ordered by name ascending.
	FindActive(ctx context.Context) ([]*entity.ServiceOffering, error)
}
