package sqlite

import (
	"context"
	"database/sql"

	"autoserv/internal/domain/entity"
	domainerrors "autoserv/internal/domain/errors"
	"autoserv/internal/domain/repository"
	"autoserv/internal/infra/persistence/model"

	"github.com/google/uuid"
)

const selectActiveServices = `SELECT id, name, description, base_price, duration_mins, is_active, created_at, updated_at
FROM service_offerings WHERE is_active = 1 ORDER BY name ASC`

type catalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository is the constructor for the SQLite catalog store.
func NewCatalogRepository(db *sql.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

func (repo *catalogRepository) FindActive(ctx context.Context) ([]*entity.ServiceOffering, error) {
	rows, err := repo.db.QueryContext(ctx, selectActiveServices)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find active services")
	}
	defer rows.Close()

	var out []*model.ServiceOfferingModel
	for rows.Next() {
		var (
			row       model.ServiceOfferingModel
			id        string
			createdAt int64
			updatedAt int64
		)
		if err := rows.Scan(&id, &row.Name, &row.Description, &row.BasePrice, &row.DurationMins, &row.IsActive, &createdAt, &updatedAt); err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to scan service offering")
		}
		if row.ID, err = uuid.Parse(id); err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "corrupt service offering id")
		}
		row.CreatedAt = fromUnixNano(createdAt)
		row.UpdatedAt = fromUnixNano(updatedAt)
		out = append(out, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to iterate service offerings")
	}

	return model.ToServiceOfferingEntities(out), nil
}
