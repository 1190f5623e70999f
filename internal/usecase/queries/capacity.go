package queries

import (
	"context"
	"log/slog"
	"strings"

	"event-registration/internal/domain/event"
	"event-registration/internal/pkg/clock"
	"event-registration/internal/pkg/errs"
)

var (
	ErrUnknownEvent = errs.New("unknown event")
	ErrInvalidSlot  = errs.New("invalid slot for event")
)

type OccupancyReader interface {
	// Occupancy sums seats of active records; an empty slotLabel covers the whole event.
	Occupancy(ctx context.Context, kind event.Kind, slotLabel string) (int, error)
}

// CapacityRecorder is satisfied by *metrics.Metrics.
type CapacityRecorder interface {
	RecordCapacityReadError(event string)
}

type CapacityQueries interface {
	CurrentOccupancy(ctx context.Context, eventKind, slotLabel string) (int, error)
	RemainingSeats(ctx context.Context, eventKind, slotLabel string) (int, error)
	// Check never fails on a store error; it reports HasError with the fallback instead.
	Check(ctx context.Context, eventKind, slotLabel string) (*CapacityView, error)
	Events(ctx context.Context) []EventView
}

type capacityQueriesImpl struct {
	reader            OccupancyReader
	events            *event.Registry
	recorder          CapacityRecorder
	clock             clock.Clock
	fallbackRemaining int
}

func NewCapacityQueries(
	reader OccupancyReader,
	events *event.Registry,
	recorder CapacityRecorder,
	clock clock.Clock,
	fallbackRemaining int,
) CapacityQueries {
	if fallbackRemaining < 0 {
		fallbackRemaining = 0
	}
	return &capacityQueriesImpl{
		reader:            reader,
		events:            events,
		recorder:          recorder,
		clock:             clock,
		fallbackRemaining: fallbackRemaining,
	}
}

func (q *capacityQueriesImpl) CurrentOccupancy(ctx context.Context, eventKind, slotLabel string) (int, error) {
	ev, label, _, err := q.resolve(eventKind, slotLabel)
	if err != nil {
		return 0, err
	}
	return q.reader.Occupancy(ctx, ev.Kind, label)
}

func (q *capacityQueriesImpl) RemainingSeats(ctx context.Context, eventKind, slotLabel string) (int, error) {
	ev, label, capacity, err := q.resolve(eventKind, slotLabel)
	if err != nil {
		return 0, err
	}
	occupancy, err := q.reader.Occupancy(ctx, ev.Kind, label)
	if err != nil {
		return 0, err
	}
	return remaining(capacity, occupancy), nil
}

func (q *capacityQueriesImpl) Check(ctx context.Context, eventKind, slotLabel string) (*CapacityView, error) {
	ev, label, capacity, err := q.resolve(eventKind, slotLabel)
	if err != nil {
		return nil, err
	}

	view := &CapacityView{
		EventKind:  string(ev.Kind),
		SlotLabel:  label,
		MaxEntries: capacity,
		Timestamp:  q.clock.Now(),
	}

	occupancy, err := q.reader.Occupancy(ctx, ev.Kind, label)
	if err != nil {
		q.recorder.RecordCapacityReadError(string(ev.Kind))
		slog.Warn("occupancy read failed, reporting fallback",
			"event", ev.Kind,
			"slot", label,
			"fallback_remaining", q.fallbackRemaining,
			"error", err.Error())
		view.HasError = true
		view.RemainingSlots = q.fallbackRemaining
		view.IsAvailable = q.fallbackRemaining > 0
		return view, nil
	}

	view.CurrentCount = occupancy
	view.RemainingSlots = remaining(capacity, occupancy)
	view.IsAvailable = view.RemainingSlots > 0
	return view, nil
}

func (q *capacityQueriesImpl) Events(_ context.Context) []EventView {
	all := q.events.All()
	out := make([]EventView, 0, len(all))
	for _, ev := range all {
		v := EventView{
			Kind:            string(ev.Kind),
			Title:           ev.Title,
			Capacity:        ev.TotalCapacity(),
			Group:           ev.Group,
			MaxGroupMembers: ev.MaxGroupMembers,
		}
		for _, s := range ev.Slots {
			v.Slots = append(v.Slots, SlotView{Label: s.Label, Capacity: s.Capacity})
		}
		out = append(out, v)
	}
	return out
}

// resolve allows a slotted event without a slot label; that reads the whole event against its total capacity.
func (q *capacityQueriesImpl) resolve(eventKind, slotLabel string) (event.Event, string, int, error) {
	ev, err := q.events.Lookup(eventKind)
	if err != nil {
		return event.Event{}, "", 0, errs.Mark(err, ErrUnknownEvent)
	}
	slotLabel = strings.TrimSpace(slotLabel)
	if ev.IsSlotted() && slotLabel == "" {
		return ev, "", ev.TotalCapacity(), nil
	}
	label, err := ev.ResolveSlot(slotLabel)
	if err != nil {
		return event.Event{}, "", 0, errs.Mark(err, ErrInvalidSlot)
	}
	capacity, err := ev.CapacityFor(label)
	if err != nil {
		return event.Event{}, "", 0, errs.Mark(err, ErrInvalidSlot)
	}
	return ev, label, capacity, nil
}

func remaining(capacity, occupancy int) int {
	if r := capacity - occupancy; r > 0 {
		return r
	}
	return 0
}
