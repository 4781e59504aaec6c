// Package persistence selects the session store driver from configuration.
package persistence

import (
	"context"
	"log/slog"

	"calbridge/config"
	"calbridge/internal/domain/repository"
	"calbridge/internal/errors"
	"calbridge/internal/infra/persistence/badger"
	"calbridge/internal/infra/persistence/memory"
	"calbridge/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params holds dependencies for the session store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewSessionRepository opens the store named by store.driver and closes it on stop.
func NewSessionRepository(params Params) (repository.SessionRepository, error) {
	cfg := params.Config.Store
	logger := params.Logger.With(slog.String("store_driver", cfg.Driver))

	var repo repository.SessionRepository

	switch cfg.Driver {
	case config.StoreDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}
		repo = postgres.NewSessionRepository(db, cfg.Table)

	case config.StoreDriverBadger:
		db, err := badger.Open(cfg.Path, params.Logger)
		if err != nil {
			return nil, err
		}
		repo = badger.NewSessionRepository(db)

	case config.StoreDriverMemory, "":
		logger.Warn("Using in-memory session store, sessions are lost on restart")
		repo = memory.NewSessionRepository()

	default:
		return nil, errors.Errorf("unknown store driver: %s", cfg.Driver)
	}

	logger.Info("Session store ready", slog.String("table", cfg.Table), slog.String("path", cfg.Path))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing session store")

			return repo.Close()
		},
	})

	return repo, nil
}
