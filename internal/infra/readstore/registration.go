package readstore

import (
	"context"

	"event-registration/internal/domain/event"
	"event-registration/internal/domain/registration"
	"event-registration/internal/infra"
	"event-registration/internal/infra/converter"
	"event-registration/internal/infra/sqlstore"
	"event-registration/internal/pkg/pgconv"
	"event-registration/internal/usecase/queries"
)

type RegistrationViewQueries interface {
	SumActiveSeats(ctx context.Context, db sqlstore.DBTX, arg sqlstore.SumActiveSeatsParams) (int64, error)
	ActiveEmailExists(ctx context.Context, db sqlstore.DBTX, arg sqlstore.ActiveEmailExistsParams) (bool, error)
	GetRegistrationByID(ctx context.Context, db sqlstore.DBTX, id string) (sqlstore.RegistrationRow, error)
	ListRegistrations(ctx context.Context, db sqlstore.DBTX, arg sqlstore.ListRegistrationsParams) ([]sqlstore.RegistrationRow, error)
}

// RegistrationReadStore serves both the admission path (inside a transaction) and the admin views (on the pool).
type RegistrationReadStore struct {
	queries RegistrationViewQueries
	db      sqlstore.DBTX
}

func NewRegistrationReadStore(queries RegistrationViewQueries, db sqlstore.DBTX) *RegistrationReadStore {
	return &RegistrationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RegistrationReadStore) Occupancy(ctx context.Context, kind event.Kind, slotLabel string) (int, error) {
	total, err := r.queries.SumActiveSeats(ctx, r.db, sqlstore.SumActiveSeatsParams{
		EventKind: string(kind),
		SlotLabel: pgconv.OptionalStringToPgtype(slotLabel),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count occupancy", err)
	}
	return int(total), nil
}

func (r *RegistrationReadStore) ActiveEmailExists(ctx context.Context, kind event.Kind, email registration.Email) (bool, error) {
	exists, err := r.queries.ActiveEmailExists(ctx, r.db, sqlstore.ActiveEmailExistsParams{
		EventKind:    string(kind),
		ContactEmail: email.Value(),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check active email", err)
	}
	return exists, nil
}

func (r *RegistrationReadStore) FindByID(ctx context.Context, id string) (*registration.Registration, error) {
	row, err := r.queries.GetRegistrationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("registration not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find registration by ID", err)
	}

	reg, err := converter.RowToRegistration(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode registration", err)
	}
	return reg, nil
}

func (r *RegistrationReadStore) List(ctx context.Context, filter queries.ListFilter) ([]queries.RegistrationView, error) {
	rows, err := r.queries.ListRegistrations(ctx, r.db, sqlstore.ListRegistrationsParams{
		EventKind: pgconv.OptionalStringToPgtype(filter.EventKind),
		SlotLabel: pgconv.OptionalStringToPgtype(filter.SlotLabel),
		Status:    pgconv.OptionalStringToPgtype(filter.Status),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list registrations", err)
	}

	views := make([]queries.RegistrationView, 0, len(rows))
	for _, row := range rows {
		v, err := converter.RowToView(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode registration", err)
		}
		views = append(views, v)
	}
	return views, nil
}
