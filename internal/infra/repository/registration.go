package repository

import (
	"context"
	"time"

	"event-registration/internal/domain/event"
	"event-registration/internal/domain/registration"
	"event-registration/internal/infra"
	"event-registration/internal/infra/converter"
	"event-registration/internal/infra/sqlstore"
	"event-registration/internal/pkg/pgconv"
)

type RegistrationWriteQueries interface {
	LockEventKind(ctx context.Context, db sqlstore.DBTX, eventKind string) error
	InsertRegistration(ctx context.Context, db sqlstore.DBTX, arg sqlstore.InsertRegistrationParams) (int64, error)
	GetRegistrationByIDForUpdate(ctx context.Context, db sqlstore.DBTX, id string) (sqlstore.RegistrationRow, error)
	CancelRegistration(ctx context.Context, db sqlstore.DBTX, arg sqlstore.CancelRegistrationParams) (sqlstore.RegistrationRow, error)
	UpdateRegistration(ctx context.Context, db sqlstore.DBTX, arg sqlstore.UpdateRegistrationParams) (int64, error)
}

type RegistrationRepository struct {
	queries RegistrationWriteQueries
	db      sqlstore.DBTX
}

func NewRegistrationRepository(queries RegistrationWriteQueries, db sqlstore.DBTX) *RegistrationRepository {
	return &RegistrationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RegistrationRepository) LockEvent(ctx context.Context, kind event.Kind) error {
	if err := r.queries.LockEventKind(ctx, r.db, string(kind)); err != nil {
		return infra.WrapRepoErr("failed to lock event", err)
	}
	return nil
}

func (r *RegistrationRepository) Insert(ctx context.Context, reg *registration.Registration) (bool, error) {
	params, err := converter.RegistrationToInsertParams(reg)
	if err != nil {
		return false, infra.WrapRepoErr("failed to encode registration", err)
	}

	affected, err := r.queries.InsertRegistration(ctx, r.db, params)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return false, infra.WrapRepoErr("active registration already exists for email", err, infra.KindDuplicateKey)
		}
		return false, infra.WrapRepoErr("failed to insert registration", err)
	}
	return affected == 1, nil
}

func (r *RegistrationRepository) GetForUpdate(ctx context.Context, id string) (*registration.Registration, error) {
	row, err := r.queries.GetRegistrationByIDForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("registration not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load registration", err)
	}

	reg, err := converter.RowToRegistration(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode registration", err)
	}
	return reg, nil
}

func (r *RegistrationRepository) Cancel(
	ctx context.Context,
	id string,
	email registration.Email,
	cancelledAt time.Time,
	reason *string,
) (*registration.Registration, error) {
	row, err := r.queries.CancelRegistration(ctx, r.db, sqlstore.CancelRegistrationParams{
		ID:           id,
		ContactEmail: email.Value(),
		CancelledAt:  pgconv.TimeToPgtype(cancelledAt),
		CancelReason: pgconv.StringPtrToPgtype(reason),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no active registration for id and email", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to cancel registration", err)
	}

	reg, err := converter.RowToRegistration(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode registration", err)
	}
	return reg, nil
}

func (r *RegistrationRepository) Update(ctx context.Context, reg *registration.Registration) error {
	affected, err := r.queries.UpdateRegistration(ctx, r.db, converter.RegistrationToUpdateParams(reg))
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("active registration already exists for email", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to update registration", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("registration not found", nil, infra.KindNotFound)
	}
	return nil
}
