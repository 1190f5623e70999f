//go:build unit

package commands_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"event-registration/internal/domain/event"
	"event-registration/internal/domain/registration"
	"event-registration/internal/infra"
	"event-registration/internal/pkg/clock"
	"event-registration/internal/usecase/commands"
	"event-registration/internal/usecase/notify"
	"event-registration/internal/usecase/queries"
	"event-registration/tests/common/builder"
	commandsmock "event-registration/tests/mock/commands"
	notifymock "event-registration/tests/mock/notify"
	sharedmock "event-registration/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCancel(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	res, err := f.admission.Admit(ctx, builder.NewRegistrationBuilder().BuildAdmitInput())
	require.NoError(t, err)
	require.True(t, res.Accepted)

	t.Run("error: email does not match", func(t *testing.T) {
		err := f.cancellation.Cancel(ctx, commands.CancelInput{ID: res.ID, Email: "someone@example.com"})
		assert.ErrorIs(t, err, commands.ErrRegistrationNotFound)
		assert.Equal(t, 1, f.occupancy(t, event.KindFacilityTourB, ""))
	})

	t.Run("error: unknown id", func(t *testing.T) {
		err := f.cancellation.Cancel(ctx, commands.CancelInput{ID: "TOURB-ZZZZZZ", Email: "taro.yamada@example.com"})
		assert.ErrorIs(t, err, commands.ErrRegistrationNotFound)
	})

	t.Run("success: id is case-insensitive and the seat is released", func(t *testing.T) {
		f.clock.Add(time.Hour)
		err := f.cancellation.Cancel(ctx, commands.CancelInput{
			ID:     "  " + strings.ToLower(res.ID) + " ",
			Email:  "TARO.YAMADA@example.com",
			Reason: "都合がつかなくなったため",
		})
		require.NoError(t, err)
		assert.Equal(t, 0, f.occupancy(t, event.KindFacilityTourB, ""))

		msgs := f.publisher.Messages()
		require.Len(t, msgs, 2)
		assert.Equal(t, notify.KindCancellation, msgs[1].Kind)
		assert.Equal(t, "都合がつかなくなったため", msgs[1].CancelReason)
		assert.Equal(t, baseTime.Add(time.Hour), msgs[1].OccurredAt)

		reg, err := f.store.Reads().FindByID(ctx, res.ID)
		require.NoError(t, err)
		assert.Equal(t, registration.StatusCancelled, reg.Status())
	})

	t.Run("error: second cancellation", func(t *testing.T) {
		err := f.cancellation.Cancel(ctx, commands.CancelInput{ID: res.ID, Email: "taro.yamada@example.com"})
		assert.ErrorIs(t, err, commands.ErrRegistrationNotFound)
		assert.Len(t, f.publisher.Messages(), 2)
	})
}

func TestCancel_Waitlisted(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	waitlisted, err := builder.NewRegistrationBuilder().WithStatus(registration.StatusWaitlisted).BuildDomain()
	require.NoError(t, err)
	f.store.Seed(waitlisted)

	err = f.cancellation.Cancel(ctx, commands.CancelInput{ID: waitlisted.ID(), Email: waitlisted.Email().Value()})
	assert.ErrorIs(t, err, commands.ErrRegistrationNotFound)
}

func TestCancel_WaitlistNotPromoted(t *testing.T) {
	ctx := context.Background()
	events, err := event.NewRegistry([]event.Event{
		{Kind: event.KindFacilityTourB, Title: "見学会", IDPrefix: "TOURB", Capacity: 2},
	})
	require.NoError(t, err)
	f := newFixtureWithEvents(t, nil, events)

	ids := f.admitN(t, event.KindFacilityTourB, "", 2, 0)
	overflow, err := f.admission.Admit(ctx, builder.NewRegistrationBuilder().WithEmail(emailN(2)).BuildAdmitInput())
	require.NoError(t, err)
	require.False(t, overflow.Accepted)
	require.Equal(t, 2, f.occupancy(t, event.KindFacilityTourB, ""))

	err = f.cancellation.Cancel(ctx, commands.CancelInput{ID: ids[0], Email: emailN(0)})
	require.NoError(t, err)

	assert.Equal(t, 1, f.occupancy(t, event.KindFacilityTourB, ""))

	waitlisted, err := f.store.List(ctx, queries.ListFilter{Status: string(registration.StatusWaitlisted)})
	require.NoError(t, err)
	require.Len(t, waitlisted, 1)
	assert.Equal(t, emailN(2), waitlisted[0].ContactEmail)

	active, err := f.store.List(ctx, queries.ListFilter{Status: string(registration.StatusActive)})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, ids[1], active[0].ID)

	// the released seat goes to the next new applicant, not the waitlist
	res, err := f.admission.Admit(ctx, builder.NewRegistrationBuilder().WithEmail(emailN(3)).BuildAdmitInput())
	require.NoError(t, err)
	assert.True(t, res.Accepted)
	assert.Equal(t, 2, f.occupancy(t, event.KindFacilityTourB, ""))
}

func TestCancel_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmds := commands.NewCancellationCommands(sharedmock.NewMockUnitOfWork(ctrl), event.DefaultRegistry(),
		notifymock.NewMockPublisher(ctrl), commandsmock.NewMockRecorder(ctrl), clock.NewMockClock(baseTime))

	for _, in := range []commands.CancelInput{
		{ID: " ", Email: "taro.yamada@example.com"},
		{ID: "TOURB-A1B2C3", Email: "taro"},
	} {
		assert.ErrorIs(t, cmds.Cancel(context.Background(), in), commands.ErrValidation)
	}
}

func TestCancel_StoreUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	uow.EXPECT().Within(gomock.Any(), gomock.Any()).Return(infra.WrapRepoErr("begin tx", errors.New("connection refused")))
	cmds := commands.NewCancellationCommands(uow, event.DefaultRegistry(),
		notifymock.NewMockPublisher(ctrl), commandsmock.NewMockRecorder(ctrl), clock.NewMockClock(baseTime))

	err := cmds.Cancel(context.Background(), commands.CancelInput{ID: "TOURB-A1B2C3", Email: "taro.yamada@example.com"})
	assert.ErrorIs(t, err, commands.ErrStoreUnavailable)
	assert.NotErrorIs(t, err, commands.ErrRegistrationNotFound)
}
