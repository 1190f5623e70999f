//go:build unit

package queries_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"event-registration/internal/domain/event"
	"event-registration/internal/domain/registration"
	"event-registration/internal/usecase/queries"
	"event-registration/tests/common/builder"
	queriesmock "event-registration/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var tokyo = time.FixedZone("Asia/Tokyo", 9*60*60)

func newRegistrationQueries(t *testing.T) (queries.RegistrationQueries, *queriesmock.MockRegistrationReadStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockRegistrationReadStore(ctrl)
	return queries.NewRegistrationQueries(store, event.DefaultRegistry(), tokyo), store
}

func TestRegistrationQueries_List(t *testing.T) {
	ctx := context.Background()

	t.Run("success: totals cover every returned row", func(t *testing.T) {
		q, store := newRegistrationQueries(t)
		rows := []queries.RegistrationView{
			builder.NewRegistrationBuilder().WithEvent(event.KindGolfOuting, "").WithMembers("a", "b").BuildView(),
			builder.NewRegistrationBuilder().WithEvent(event.KindGolfOuting, "").WithID("GOLF-000002").BuildView(),
		}
		store.EXPECT().List(gomock.Any(), queries.ListFilter{EventKind: "golf_outing", Status: "active"}).Return(rows, nil)

		got, err := q.List(ctx, queries.ListFilter{EventKind: " golf_outing ", Status: "active"})
		require.NoError(t, err)
		assert.Equal(t, 2, got.TotalCount)
		assert.Equal(t, 4, got.TotalSeats)
		assert.Equal(t, rows, got.Participants)
	})

	t.Run("success: empty filter lists everything", func(t *testing.T) {
		q, store := newRegistrationQueries(t)
		store.EXPECT().List(gomock.Any(), queries.ListFilter{}).Return(nil, nil)

		got, err := q.List(ctx, queries.ListFilter{})
		require.NoError(t, err)
		assert.Zero(t, got.TotalCount)
		assert.Zero(t, got.TotalSeats)
	})

	errorCases := []struct {
		name   string
		filter queries.ListFilter
		errIs  error
	}{
		{name: "unknown event", filter: queries.ListFilter{EventKind: "bowling"}, errIs: queries.ErrUnknownEvent},
		{name: "unknown slot", filter: queries.ListFilter{EventKind: "facility_tour_A", SlotLabel: "09:00"}, errIs: queries.ErrInvalidSlot},
		{name: "invalid status", filter: queries.ListFilter{Status: "deleted"}, errIs: queries.ErrInvalidStatusFilter},
	}
	for _, tc := range errorCases {
		t.Run("error: "+tc.name, func(t *testing.T) {
			q, _ := newRegistrationQueries(t)
			_, err := q.List(ctx, tc.filter)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}

	t.Run("error: store failure", func(t *testing.T) {
		q, store := newRegistrationQueries(t)
		storeErr := errors.New("down")
		store.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, storeErr)

		_, err := q.List(ctx, queries.ListFilter{})
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestRegistrationQueries_ExportCSV(t *testing.T) {
	ctx := context.Background()

	t.Run("success: BOM, header and local times", func(t *testing.T) {
		q, store := newRegistrationQueries(t)

		active := builder.NewRegistrationBuilder().
			WithEvent(event.KindGolfOuting, "").
			WithID("GOLF-AAAAAA").
			With(func(b *builder.RegistrationBuilder) {
				b.Members = []registration.GroupMember{{Name: "佐藤 花子", Kana: "サトウ ハナコ"}, {Name: "鈴木 一郎"}}
			}).
			BuildView()
		cancelled := builder.NewRegistrationBuilder().
			WithEvent(event.KindGolfOuting, "").
			WithID("GOLF-BBBBBB").
			WithStatus(registration.StatusCancelled).
			BuildView()
		cancelledAt := time.Date(2025, 5, 2, 1, 30, 0, 0, time.UTC)
		reason := "体調不良"
		cancelled.CancelledAt = &cancelledAt
		cancelled.CancelReason = &reason

		store.EXPECT().List(gomock.Any(), queries.ListFilter{EventKind: "golf_outing"}).
			Return([]queries.RegistrationView{active, cancelled}, nil)

		var buf bytes.Buffer
		require.NoError(t, q.ExportCSV(ctx, "golf_outing", &buf))

		raw := buf.Bytes()
		require.True(t, bytes.HasPrefix(raw, []byte{0xEF, 0xBB, 0xBF}))

		records, err := csv.NewReader(bytes.NewReader(raw[3:])).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 3)

		assert.Equal(t, "受付番号", records[0][0])
		assert.Len(t, records[0], 16)

		assert.Equal(t, []string{
			"GOLF-AAAAAA", "チャリティゴルフコンペ", "", "active",
			"山田", "太郎", "ヤマダ", "タロウ",
			"taro.yamada@example.com", "090-1234-5678", "山田商事", "3", "佐藤 花子(サトウ ハナコ) / 鈴木 一郎",
			"2025-05-01 19:00:00", "", "",
		}, records[1])

		assert.Equal(t, "cancelled", records[2][3])
		assert.Equal(t, "2025-05-02 10:30:00", records[2][14])
		assert.Equal(t, "体調不良", records[2][15])
	})

	t.Run("error: unknown event writes nothing", func(t *testing.T) {
		q, _ := newRegistrationQueries(t)
		var buf bytes.Buffer
		err := q.ExportCSV(ctx, "bowling", &buf)
		assert.ErrorIs(t, err, queries.ErrUnknownEvent)
		assert.Zero(t, buf.Len())
	})

	t.Run("error: store failure writes nothing", func(t *testing.T) {
		q, store := newRegistrationQueries(t)
		store.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("down"))

		var buf bytes.Buffer
		assert.Error(t, q.ExportCSV(ctx, "facility_tour_B", &buf))
		assert.Zero(t, buf.Len())
	})
}
