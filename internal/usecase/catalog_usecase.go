package usecase

import (
	"context"
)

// CatalogUsecase lists the services a customer can book.
type CatalogUsecase interface {
	// ListActiveServices returns active entries ordered by name. The slice is never nil.
	ListActiveServices(ctx context.Context) ([]ExternalService, error)
}
