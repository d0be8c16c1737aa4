// Package persistence selects the storage backend named by storage.driver.
package persistence

import (
	"log/slog"

	"autoserv/config"
	"autoserv/internal/domain/constants"
	"autoserv/internal/domain/repository"
	"autoserv/internal/errors"
	"autoserv/internal/infra/persistence/mongodb"
	"autoserv/internal/infra/persistence/postgres"
	"autoserv/internal/infra/persistence/sqlite"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories is provided to the fx graph as the two repository interfaces.
type Repositories struct {
	fx.Out

	Accounts repository.AccountRepository
	Catalog  repository.CatalogRepository
}

// New opens the configured backend and builds both repositories on it.
func New(params Params) (Repositories, error) {
	driver := params.Config.Storage.Driver
	logger := params.Logger.With(slog.String("storage", driver))

	switch driver {
	case constants.StorageDriverPostgres:
		db, err := postgres.Open(params.Lifecycle, params.Config, logger)
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Accounts: postgres.NewAccountRepository(db),
			Catalog:  postgres.NewCatalogRepository(db),
		}, nil

	case constants.StorageDriverSQLite:
		db, err := sqlite.Open(params.Lifecycle, params.Config, logger)
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Accounts: sqlite.NewAccountRepository(db),
			Catalog:  sqlite.NewCatalogRepository(db),
		}, nil

	case constants.StorageDriverMongo:
		db, err := mongodb.Open(params.Lifecycle, params.Config, logger)
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Accounts: mongodb.NewAccountRepository(db),
			Catalog:  mongodb.NewCatalogRepository(db),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unsupported storage driver %q", driver)
	}
}
