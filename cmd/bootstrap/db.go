package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"event-registration/cmd/bootstrap/components"
	"event-registration/internal/infra/db"
	"event-registration/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const (
	driverPostgres = "postgres"
	driverMemory   = "memory"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewStore,
	),
)

func NewStore(lc fx.Lifecycle, cfg config.Config) (components.Store, error) {
	switch cfg.Store.Driver {
	case driverPostgres:
		pool, err := NewDB(lc, cfg)
		if err != nil {
			return components.Store{}, err
		}
		return components.NewPostgresStore(pool), nil
	case driverMemory:
		slog.Warn("using in-memory record store; registrations are lost on restart")
		return components.NewMemoryStore(), nil
	default:
		return components.Store{}, fmt.Errorf("unknown STORE_DRIVER %q", cfg.Store.Driver)
	}
}

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
