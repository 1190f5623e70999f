package uow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"event-registration/internal/infra/readstore"
	"event-registration/internal/infra/repository"
	"event-registration/internal/infra/sqlstore"
	"event-registration/internal/pkg/backoff"
	"event-registration/internal/pkg/errs"
	"event-registration/internal/pkg/pgconv"
	"event-registration/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlstore.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlstore.Queries) *PostgresUoW {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted is enough: admissions serialize on the per-event advisory lock,
// and every read after the lock sees all previously committed admissions.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) Reads() shared.RegistrationReads {
	return readstore.NewRegistrationReadStore(u.q, u.pool)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries && pgconv.IsRetryable(err) {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := backoff.Exponential(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return pgconv.IsRetryable(err) && attempt < maxRetries
}

type pgTx struct {
	dbtx sqlstore.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	registrationRepo shared.RegistrationRepository
	reads            shared.RegistrationReads
}

func (t *pgTx) Registrations() shared.RegistrationRepository {
	if t.registrationRepo == nil {
		t.registrationRepo = repository.NewRegistrationRepository(t.uow.q, t.dbtx)
	}
	return t.registrationRepo
}

func (t *pgTx) Reads() shared.RegistrationReads {
	if t.reads == nil {
		t.reads = readstore.NewRegistrationReadStore(t.uow.q, t.dbtx)
	}
	return t.reads
}
