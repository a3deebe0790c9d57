// Package mongo stores user records as documents in MongoDB.
package mongo

import (
	"context"
	"log/slog"

	"accounts/config"
	"accounts/internal/domain/lifecycle"
	"accounts/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

const emailIndexName = "email_unique"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB client and returns the users collection.
// The connection is verified and the unique email index is ensured on start.
func New(params Params) (*mongodriver.Collection, error) {
	cfg := params.Config.Mongo
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongo uri must be provided")
	}
	if cfg.Database == "" {
		return nil, errors.New("mongo database must be provided")
	}

	clientOpts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout)

	client, err := mongodriver.Connect(context.Background(), clientOpts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	collection := client.Database(cfg.Database).Collection(cfg.Collection)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := ensureIndexes(ctx, collection); err != nil {
				return err
			}

			params.Logger.Info("Connected to MongoDB",
				slog.String("database", cfg.Database),
				slog.String("collection", cfg.Collection),
			)

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			return errors.WithStack(client.Disconnect(stopCtx))
		},
	})

	return collection, nil
}

// ensureIndexes makes email unique at the store level, which closes the
// lookup-then-insert race between concurrent registrations.
func ensureIndexes(ctx context.Context, collection *mongodriver.Collection) error {
	_, err := collection.Indexes().CreateOne(ctx, mongodriver.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName(emailIndexName),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create unique email index")
	}

	return nil
}
