package postgres

import (
	"context"

	"autoserv/internal/domain/entity"
	domainerrors "autoserv/internal/domain/errors"
	"autoserv/internal/domain/repository"
	"autoserv/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

func (repo *catalogRepository) FindActive(ctx context.Context) ([]*entity.ServiceOffering, error) {
	var rows []*model.ServiceOfferingModel
	err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find active services")
	}

	return model.ToServiceOfferingEntities(rows), nil
}
