package handler

import (
	"net/http"
	"testing"
	"time"

	domainerrors "autoserv/internal/domain/errors"
	"autoserv/internal/errors"
	mockUsecase "autoserv/internal/mocks/usecase"
	"autoserv/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogHandler_ListServices(t *testing.T) {
	uc := mockUsecase.NewMockCatalogUsecase(t)
	handler := NewCatalogHandler(uc)

	created := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	uc.EXPECT().ListActiveServices(mock.Anything).Return([]usecase.ExternalService{
		{ID: "svc-1", Name: "Brake Inspection", BasePrice: 49.99, DurationMins: 45, IsActive: true, CreatedAt: created, UpdatedAt: created},
	}, nil).Once()

	c, rec := newJSONContext(http.MethodGet, "/api/services", "")
	require.NoError(t, handler.ListServices(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{
		"id":"svc-1","name":"Brake Inspection","description":"","basePrice":49.99,"durationMins":45,
		"isActive":true,"createdAt":"2024-06-01T00:00:00Z","updatedAt":"2024-06-01T00:00:00Z"
	}]`, rec.Body.String())
}

func TestCatalogHandler_ListServices_EmptyIsArray(t *testing.T) {
	uc := mockUsecase.NewMockCatalogUsecase(t)
	handler := NewCatalogHandler(uc)

	uc.EXPECT().ListActiveServices(mock.Anything).Return(nil, nil).Once()

	c, rec := newJSONContext(http.MethodGet, "/api/services", "")
	require.NoError(t, handler.ListServices(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCatalogHandler_ListServices_StoreFailure(t *testing.T) {
	uc := mockUsecase.NewMockCatalogUsecase(t)
	handler := NewCatalogHandler(uc)

	storeErr := domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "find active")
	uc.EXPECT().ListActiveServices(mock.Anything).Return(nil, storeErr).Once()

	c, _ := newJSONContext(http.MethodGet, "/api/services", "")
	err := handler.ListServices(c)

	assert.Equal(t, domainerrors.KindStore, domainerrors.KindOf(err))
}
