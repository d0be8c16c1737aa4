package handler

import (
	"autoserv/internal/delivery/api/response"
	"autoserv/internal/errors"
	"autoserv/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CatalogHandler serves the public service catalog.
type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

// NewCatalogHandler creates a new CatalogHandler instance
func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListServices handles GET /api/services. The body is a bare JSON array.
func (h *CatalogHandler) ListServices(c echo.Context) error {
	services, err := h.uc.ListActiveServices(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}
	if services == nil {
		services = []usecase.ExternalService{}
	}

	return response.OK(c, services)
}
