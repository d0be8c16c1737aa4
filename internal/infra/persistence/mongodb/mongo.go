// Package mongodb is the document-store persistence backend. Email uniqueness is
// enforced by a unique index created before the server accepts traffic.
package mongodb

import (
	"context"
	"log/slog"

	"autoserv/config"
	"autoserv/internal/domain/lifecycle"
	"autoserv/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

const (
	accountsCollection = "accounts"
	servicesCollection = "services"
	accountEmailIndex  = "accounts_email_key"
)

// Open connects the client and ensures indexes on start, disconnecting on stop.
func Open(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (*mongo.Database, error) {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.Storage.Mongo.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	db := client.Database(cfg.Storage.Mongo.Database)

	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := EnsureIndexes(ctx, db); err != nil {
				return err
			}

			logger.Info("MongoDB ready", slog.String("database", db.Name()))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			return client.Disconnect(stopCtx)
		},
	})

	return db, nil
}

// EnsureIndexes creates the unique email index and the catalog listing index.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(accountsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName(accountEmailIndex),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create account email index")
	}

	_, err = db.Collection(servicesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "isActive", Value: 1}, {Key: "name", Value: 1}},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create service listing index")
	}

	return nil
}
