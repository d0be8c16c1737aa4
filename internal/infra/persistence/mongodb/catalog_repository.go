package mongodb

import (
	"context"

	"autoserv/internal/domain/entity"
	domainerrors "autoserv/internal/domain/errors"
	"autoserv/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type catalogRepository struct {
	services *mongo.Collection
}

// NewCatalogRepository is the constructor for the MongoDB catalog store.
func NewCatalogRepository(db *mongo.Database) repository.CatalogRepository {
	return &catalogRepository{services: db.Collection(servicesCollection)}
}

func (repo *catalogRepository) FindActive(ctx context.Context) ([]*entity.ServiceOffering, error) {
	cursor, err := repo.services.Find(ctx,
		bson.D{{Key: "isActive", Value: true}},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}),
	)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find active services")
	}

	var docs []serviceDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode active services")
	}

	out := make([]*entity.ServiceOffering, 0, len(docs))
	for i := range docs {
		offering, err := docs[i].toEntity()
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "corrupt service offering id")
		}
		out = append(out, offering)
	}

	return out, nil
}
