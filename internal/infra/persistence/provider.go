// Package persistence selects the account store backing the user repository.
package persistence

import (
	"log/slog"

	"accounts/config"
	"accounts/internal/domain/repository"
	"accounts/internal/errors"
	"accounts/internal/infra/persistence/memory"
	"accounts/internal/infra/persistence/mongo"
	"accounts/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params holds dependencies for the user repository, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewUserRepository builds the repository for the configured store driver.
func NewUserRepository(params Params) (repository.UserRepository, error) {
	driver := params.Config.Store.Driver
	logger := params.Logger.With(slog.String("store", driver))

	switch driver {
	case config.StoreDriverMongo:
		collection, err := mongo.New(mongo.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return nil, err
		}

		return mongo.NewUserRepository(collection), nil

	case config.StoreDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return nil, err
		}

		return postgres.NewUserRepository(db), nil

	case config.StoreDriverMemory:
		logger.Warn("Using in-memory account store, data is lost on restart")

		return memory.NewUserRepository(), nil

	default:
		return nil, errors.Errorf("unknown store driver: %s", driver)
	}
}
