package shared

import (
	"context"
	"time"

	"event-registration/internal/domain/event"
	"event-registration/internal/domain/registration"
)

type UnitOfWork interface {
	// Within runs fn in one write transaction; a non-nil error from fn rolls everything back.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads: single-statement reads outside any transaction
	Reads() RegistrationReads
}

type Tx interface {
	Registrations() RegistrationRepository
	Reads() RegistrationReads
}

type RegistrationRepository interface {
	// LockEvent serializes admissions for kind until the transaction ends.
	LockEvent(ctx context.Context, kind event.Kind) error
	// Insert reports false without error when the id is already taken.
	Insert(ctx context.Context, reg *registration.Registration) (bool, error)
	GetForUpdate(ctx context.Context, id string) (*registration.Registration, error)
	// Cancel flips an active record matching both id and email; it fails with NOT_FOUND otherwise.
	Cancel(ctx context.Context, id string, email registration.Email, cancelledAt time.Time, reason *string) (*registration.Registration, error)
	Update(ctx context.Context, reg *registration.Registration) error
}

// RegistrationReads treats records without a status as active.
type RegistrationReads interface {
	Occupancy(ctx context.Context, kind event.Kind, slotLabel string) (int, error)
	ActiveEmailExists(ctx context.Context, kind event.Kind, email registration.Email) (bool, error)
	FindByID(ctx context.Context, id string) (*registration.Registration, error)
}
