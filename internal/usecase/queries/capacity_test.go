//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"event-registration/internal/domain/event"
	"event-registration/internal/pkg/clock"
	"event-registration/internal/usecase/queries"
	queriesmock "event-registration/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

func newCapacityQueries(t *testing.T, fallback int) (queries.CapacityQueries, *queriesmock.MockOccupancyReader, *queriesmock.MockCapacityRecorder) {
	t.Helper()
	ctrl := gomock.NewController(t)
	reader := queriesmock.NewMockOccupancyReader(ctrl)
	recorder := queriesmock.NewMockCapacityRecorder(ctrl)
	q := queries.NewCapacityQueries(reader, event.DefaultRegistry(), recorder, clock.NewMockClock(now), fallback)
	return q, reader, recorder
}

func TestCapacityQueries_Check(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		eventKind string
		slotLabel string
		setup     func(*queriesmock.MockOccupancyReader, *queriesmock.MockCapacityRecorder)
		want      *queries.CapacityView
		errIs     error
	}{
		{
			name:      "success: seats remain",
			eventKind: "facility_tour_B",
			setup: func(r *queriesmock.MockOccupancyReader, _ *queriesmock.MockCapacityRecorder) {
				r.EXPECT().Occupancy(gomock.Any(), event.KindFacilityTourB, "").Return(12, nil)
			},
			want: &queries.CapacityView{
				EventKind: "facility_tour_B", CurrentCount: 12, MaxEntries: 30,
				RemainingSlots: 18, IsAvailable: true, Timestamp: now,
			},
		},
		{
			name:      "success: slot is full",
			eventKind: "facility_tour_A",
			slotLabel: "10:00-11:30",
			setup: func(r *queriesmock.MockOccupancyReader, _ *queriesmock.MockCapacityRecorder) {
				r.EXPECT().Occupancy(gomock.Any(), event.KindFacilityTourA, "10:00-11:30").Return(20, nil)
			},
			want: &queries.CapacityView{
				EventKind: "facility_tour_A", SlotLabel: "10:00-11:30", CurrentCount: 20, MaxEntries: 20,
				RemainingSlots: 0, IsAvailable: false, Timestamp: now,
			},
		},
		{
			name:      "success: slotted event without slot reads the whole event",
			eventKind: "facility_tour_A",
			slotLabel: " ",
			setup: func(r *queriesmock.MockOccupancyReader, _ *queriesmock.MockCapacityRecorder) {
				r.EXPECT().Occupancy(gomock.Any(), event.KindFacilityTourA, "").Return(25, nil)
			},
			want: &queries.CapacityView{
				EventKind: "facility_tour_A", CurrentCount: 25, MaxEntries: 40,
				RemainingSlots: 15, IsAvailable: true, Timestamp: now,
			},
		},
		{
			name:      "success: over-committed legacy data never reports negative seats",
			eventKind: "golf_outing",
			setup: func(r *queriesmock.MockOccupancyReader, _ *queriesmock.MockCapacityRecorder) {
				r.EXPECT().Occupancy(gomock.Any(), event.KindGolfOuting, "").Return(125, nil)
			},
			want: &queries.CapacityView{
				EventKind: "golf_outing", CurrentCount: 125, MaxEntries: 120,
				RemainingSlots: 0, IsAvailable: false, Timestamp: now,
			},
		},
		{
			name:      "degraded: read failure reports the fallback",
			eventKind: "facility_tour_B",
			setup: func(r *queriesmock.MockOccupancyReader, rec *queriesmock.MockCapacityRecorder) {
				r.EXPECT().Occupancy(gomock.Any(), event.KindFacilityTourB, "").Return(0, errors.New("connection reset"))
				rec.EXPECT().RecordCapacityReadError("facility_tour_B")
			},
			want: &queries.CapacityView{
				EventKind: "facility_tour_B", MaxEntries: 30,
				RemainingSlots: 5, IsAvailable: true, HasError: true, Timestamp: now,
			},
		},
		{name: "error: unknown event", eventKind: "bowling", errIs: queries.ErrUnknownEvent},
		{name: "error: unknown slot", eventKind: "facility_tour_A", slotLabel: "09:00", errIs: queries.ErrInvalidSlot},
		{name: "error: slot on unslotted event", eventKind: "golf_outing", slotLabel: "10:00-11:30", errIs: queries.ErrInvalidSlot},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q, reader, recorder := newCapacityQueries(t, 5)
			if tc.setup != nil {
				tc.setup(reader, recorder)
			}

			got, err := q.Check(ctx, tc.eventKind, tc.slotLabel)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("capacity view mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCapacityQueries_ZeroFallback(t *testing.T) {
	q, reader, recorder := newCapacityQueries(t, -3)
	reader.EXPECT().Occupancy(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, errors.New("down"))
	recorder.EXPECT().RecordCapacityReadError("golf_outing")

	got, err := q.Check(context.Background(), "golf_outing", "")
	require.NoError(t, err)
	assert.True(t, got.HasError)
	assert.Equal(t, 0, got.RemainingSlots)
	assert.False(t, got.IsAvailable)
}

func TestCapacityQueries_RemainingSeats(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		q, reader, _ := newCapacityQueries(t, 0)
		reader.EXPECT().Occupancy(gomock.Any(), event.KindFacilityTourA, "13:30-15:00").Return(7, nil)

		n, err := q.RemainingSeats(ctx, "facility_tour_A", "13:30-15:00")
		require.NoError(t, err)
		assert.Equal(t, 13, n)
	})

	t.Run("error: read failure is surfaced", func(t *testing.T) {
		q, reader, _ := newCapacityQueries(t, 10)
		readErr := errors.New("down")
		reader.EXPECT().Occupancy(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, readErr)

		_, err := q.RemainingSeats(ctx, "facility_tour_B", "")
		assert.ErrorIs(t, err, readErr)
	})

	t.Run("current occupancy", func(t *testing.T) {
		q, reader, _ := newCapacityQueries(t, 0)
		reader.EXPECT().Occupancy(gomock.Any(), event.KindGolfOuting, "").Return(42, nil)

		n, err := q.CurrentOccupancy(ctx, "golf_outing", "")
		require.NoError(t, err)
		assert.Equal(t, 42, n)
	})
}

func TestCapacityQueries_Events(t *testing.T) {
	q, _, _ := newCapacityQueries(t, 0)

	got := q.Events(context.Background())
	want := []queries.EventView{
		{
			Kind: "facility_tour_A", Title: "施設見学会 A", Capacity: 40,
			Slots: []queries.SlotView{{Label: "10:00-11:30", Capacity: 20}, {Label: "13:30-15:00", Capacity: 20}},
		},
		{Kind: "facility_tour_B", Title: "施設見学会 B", Capacity: 30},
		{Kind: "golf_outing", Title: "チャリティゴルフコンペ", Capacity: 120, Group: true, MaxGroupMembers: 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}
