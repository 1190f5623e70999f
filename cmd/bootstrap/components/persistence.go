package components

import (
	"event-registration/internal/infra/memstore"
	"event-registration/internal/infra/readstore"
	"event-registration/internal/infra/sqlstore"
	"event-registration/internal/infra/uow"
	"event-registration/internal/usecase/queries"
	"event-registration/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Store is the record store selected by STORE_DRIVER.
type Store struct {
	fx.Out

	UnitOfWork shared.UnitOfWork
	ReadStore  queries.RegistrationReadStore
}

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		func(rs queries.RegistrationReadStore) queries.OccupancyReader { return rs },
	),
)

func NewPostgresStore(pool *pgxpool.Pool) Store {
	q := NewSQLQueries(pool)
	return Store{
		UnitOfWork: uow.NewPostgresUoW(pool, q),
		ReadStore:  readstore.NewRegistrationReadStore(q, NewDBTX(pool)),
	}
}

func NewMemoryStore() Store {
	s := memstore.New()
	return Store{
		UnitOfWork: s,
		ReadStore:  s,
	}
}

func NewSQLQueries(_ *pgxpool.Pool) *sqlstore.Queries {
	return sqlstore.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlstore.DBTX {
	return pool
}
