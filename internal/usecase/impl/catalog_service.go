package impl

import (
	"context"
	"log/slog"

	deliverycontext "autoserv/internal/delivery/context"
	"autoserv/internal/domain/repository"
	"autoserv/internal/errors"
	"autoserv/internal/usecase"

	"go.uber.org/fx"
)

type catalogService struct {
	catalogRepo repository.CatalogRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo: params.CatalogRepo,
		logger:      params.Logger,
	}
}

func (srv *catalogService) ListActiveServices(ctx context.Context) ([]usecase.ExternalService, error) {
	offerings, err := srv.catalogRepo.FindActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active services")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Listed catalog", slog.Int("count", len(offerings)))

	return usecase.ToExternalServices(offerings), nil
}
