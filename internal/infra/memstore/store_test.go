//go:build unit

package memstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"event-registration/internal/domain/event"
	"event-registration/internal/domain/registration"
	"event-registration/internal/infra"
	"event-registration/internal/infra/memstore"
	"event-registration/internal/usecase/queries"
	"event-registration/internal/usecase/shared"
	"event-registration/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBuild(t *testing.T, b *builder.RegistrationBuilder) *registration.Registration {
	t.Helper()
	reg, err := b.BuildDomain()
	require.NoError(t, err)
	return reg
}

func TestStore_RollbackOnError(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	reg := mustBuild(t, builder.NewRegistrationBuilder())

	boom := errors.New("boom")
	err := s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ok, err := tx.Registrations().Insert(ctx, reg)
		require.NoError(t, err)
		require.True(t, ok)

		// visible inside the transaction
		n, err := tx.Reads().Occupancy(ctx, event.KindFacilityTourB, "")
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	n, err := s.Reads().Occupancy(ctx, event.KindFacilityTourB, "")
	require.NoError(t, err)
	assert.Zero(t, n)
	_, err = s.Reads().FindByID(ctx, reg.ID())
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestStore_Insert(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	s.Seed(mustBuild(t, builder.NewRegistrationBuilder()))

	t.Run("taken id reports false", func(t *testing.T) {
		err := s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			ok, err := tx.Registrations().Insert(ctx,
				mustBuild(t, builder.NewRegistrationBuilder().WithEmail("other@example.com")))
			assert.False(t, ok)
			return err
		})
		assert.NoError(t, err)
	})

	t.Run("active email is unique per event", func(t *testing.T) {
		err := s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			_, err := tx.Registrations().Insert(ctx,
				mustBuild(t, builder.NewRegistrationBuilder().WithID("TOURB-NEW001")))
			return err
		})
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("waitlisted record may share the email", func(t *testing.T) {
		err := s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			ok, err := tx.Registrations().Insert(ctx,
				mustBuild(t, builder.NewRegistrationBuilder().WithID("TOURB-WAIT01").WithStatus(registration.StatusWaitlisted)))
			assert.True(t, ok)
			return err
		})
		assert.NoError(t, err)
	})
}

func TestStore_OccupancyAndList(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	base := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	s.Seed(
		mustBuild(t, builder.NewRegistrationBuilder().WithID("TOURA-000003").WithEmail("c@example.com").
			WithEvent(event.KindFacilityTourA, "13:30-15:00").With(func(b *builder.RegistrationBuilder) { b.CreatedAt = base.Add(2 * time.Hour) })),
		mustBuild(t, builder.NewRegistrationBuilder().WithID("TOURA-000001").WithEmail("a@example.com").
			WithEvent(event.KindFacilityTourA, "10:00-11:30").With(func(b *builder.RegistrationBuilder) { b.CreatedAt = base })),
		mustBuild(t, builder.NewRegistrationBuilder().WithID("TOURA-000002").WithEmail("b@example.com").
			WithEvent(event.KindFacilityTourA, "10:00-11:30").WithStatus(registration.StatusCancelled).
			With(func(b *builder.RegistrationBuilder) { b.CreatedAt = base.Add(time.Hour) })),
		mustBuild(t, builder.NewRegistrationBuilder().WithID("GOLF-000001").WithEvent(event.KindGolfOuting, "").WithMembers("x", "y")),
	)

	occ := func(kind event.Kind, slot string) int {
		n, err := s.Occupancy(ctx, kind, slot)
		require.NoError(t, err)
		return n
	}
	assert.Equal(t, 1, occ(event.KindFacilityTourA, "10:00-11:30"))
	assert.Equal(t, 1, occ(event.KindFacilityTourA, "13:30-15:00"))
	assert.Equal(t, 2, occ(event.KindFacilityTourA, ""))
	assert.Equal(t, 3, occ(event.KindGolfOuting, ""))

	views, err := s.List(ctx, queries.ListFilter{EventKind: "facility_tour_A"})
	require.NoError(t, err)
	ids := make([]string, len(views))
	for i, v := range views {
		ids[i] = v.ID
	}
	assert.Equal(t, []string{"TOURA-000001", "TOURA-000002", "TOURA-000003"}, ids)

	views, err = s.List(ctx, queries.ListFilter{EventKind: "facility_tour_A", SlotLabel: "10:00-11:30", Status: "cancelled"})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "TOURA-000002", views[0].ID)
}

func TestStore_CancelAndUpdate(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	reg := mustBuild(t, builder.NewRegistrationBuilder())
	s.Seed(reg)
	now := time.Date(2025, 5, 3, 9, 0, 0, 0, time.UTC)

	err := s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Registrations().Cancel(ctx, reg.ID(), registration.ReconstructEmail("other@example.com"), now, nil)
		return err
	})
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	err = s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cancelled, err := tx.Registrations().Cancel(ctx, reg.ID(), reg.Email(), now, nil)
		if err != nil {
			return err
		}
		assert.Equal(t, registration.StatusCancelled, cancelled.Status())
		return nil
	})
	require.NoError(t, err)

	// the caller's copy is not mutated by the store
	assert.True(t, reg.IsActive())

	err = s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Registrations().Update(ctx, mustBuild(t, builder.NewRegistrationBuilder().WithID("TOURB-NOPE00")))
	})
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := memstore.New().Within(ctx, func(context.Context, shared.Tx) error {
		t.Fatal("fn must not run")
		return nil
	})
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
