//go:build unit

package event_test

import (
	"os"
	"path/filepath"
	"testing"

	"event-registration/internal/domain/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
events:
  - kind: facility_tour_A
    title: 見学会A
    idPrefix: TOUR
    slots:
      - label: "10:00"
        capacity: 2
      - label: "14:00"
        capacity: 3
  - kind: golf_outing
    title: ゴルフ
    idPrefix: GOLF
    capacity: 8
    group: true
    maxGroupMembers: 3
`

func TestDefaultRegistry(t *testing.T) {
	r := event.DefaultRegistry()

	all := r.All()
	require.Len(t, all, 3)
	assert.Equal(t, event.KindFacilityTourA, all[0].Kind)
	assert.Equal(t, event.KindFacilityTourB, all[1].Kind)
	assert.Equal(t, event.KindGolfOuting, all[2].Kind)

	tourA, err := r.Get(event.KindFacilityTourA)
	require.NoError(t, err)
	assert.True(t, tourA.IsSlotted())
	assert.Equal(t, 40, tourA.TotalCapacity())

	golf, err := r.Get(event.KindGolfOuting)
	require.NoError(t, err)
	assert.True(t, golf.Group)
	assert.Equal(t, 120, golf.TotalCapacity())
}

func TestRegistry_Lookup(t *testing.T) {
	r := event.DefaultRegistry()

	ev, err := r.Lookup("  facility_tour_B ")
	require.NoError(t, err)
	assert.Equal(t, event.KindFacilityTourB, ev.Kind)

	_, err = r.Lookup("bowling")
	assert.ErrorIs(t, err, event.ErrUnknownEvent)

	_, err = r.Lookup("")
	assert.ErrorIs(t, err, event.ErrUnknownEvent)
}

func TestEvent_CapacityFor(t *testing.T) {
	r := event.DefaultRegistry()
	tourA, _ := r.Get(event.KindFacilityTourA)
	tourB, _ := r.Get(event.KindFacilityTourB)

	testCases := []struct {
		name      string
		ev        event.Event
		slotLabel string
		want      int
		errIs     error
	}{
		{name: "slot capacity", ev: tourA, slotLabel: "10:00-11:30", want: 20},
		{name: "slot label is trimmed", ev: tourA, slotLabel: " 13:30-15:00 ", want: 20},
		{name: "slotted event without slot", ev: tourA, errIs: event.ErrSlotRequired},
		{name: "unknown slot", ev: tourA, slotLabel: "09:00", errIs: event.ErrUnknownSlot},
		{name: "event capacity", ev: tourB, want: 30},
		{name: "slot on unslotted event", ev: tourB, slotLabel: "10:00-11:30", errIs: event.ErrSlotNotAllowed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.ev.CapacityFor(tc.slotLabel)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseRegistry(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		r, err := event.ParseRegistry([]byte(validYAML))
		require.NoError(t, err)

		ev, err := r.Get(event.KindFacilityTourA)
		require.NoError(t, err)
		assert.Equal(t, "TOUR", ev.IDPrefix)
		c, err := ev.CapacityFor("14:00")
		require.NoError(t, err)
		assert.Equal(t, 3, c)

		_, err = r.Get(event.KindFacilityTourB)
		assert.ErrorIs(t, err, event.ErrUnknownEvent)
	})

	invalid := []struct {
		name string
		yaml string
	}{
		{name: "unknown field", yaml: "events:\n  - kind: golf_outing\n    idPrefix: GOLF\n    capacity: 1\n    colour: red\n"},
		{name: "unknown kind", yaml: "events:\n  - kind: bowling\n    idPrefix: BOWL\n    capacity: 1\n"},
		{name: "lowercase prefix", yaml: "events:\n  - kind: golf_outing\n    idPrefix: golf\n    capacity: 1\n"},
		{name: "zero capacity", yaml: "events:\n  - kind: golf_outing\n    idPrefix: GOLF\n    capacity: 0\n"},
		{name: "duplicate slot", yaml: "events:\n  - kind: facility_tour_A\n    idPrefix: TOUR\n    slots:\n      - {label: a, capacity: 1}\n      - {label: a, capacity: 1}\n"},
		{name: "duplicate event", yaml: "events:\n  - {kind: golf_outing, idPrefix: GOLF, capacity: 1}\n  - {kind: golf_outing, idPrefix: GOLF, capacity: 1}\n"},
		{name: "capacity on slotted event", yaml: "events:\n  - kind: facility_tour_A\n    idPrefix: TOURA\n    capacity: 40\n    slots:\n      - {label: a, capacity: 20}\n"},
		{name: "empty", yaml: "events: []\n"},
	}
	for _, tc := range invalid {
		t.Run("invalid: "+tc.name, func(t *testing.T) {
			_, err := event.ParseRegistry([]byte(tc.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadRegistry(t *testing.T) {
	t.Run("empty path falls back to built-in events", func(t *testing.T) {
		r, err := event.LoadRegistry("")
		require.NoError(t, err)
		assert.Len(t, r.All(), 3)
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "events.yaml")
		require.NoError(t, os.WriteFile(path, []byte(validYAML), 0o600))

		r, err := event.LoadRegistry(path)
		require.NoError(t, err)
		assert.Len(t, r.All(), 2)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := event.LoadRegistry(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
