package event

import (
	"errors"
	"strings"
)

var (
	ErrUnknownEvent   = errors.New("unknown event kind")
	ErrSlotRequired   = errors.New("slot label is required for this event")
	ErrUnknownSlot    = errors.New("unknown slot label")
	ErrSlotNotAllowed = errors.New("event does not take a slot label")
)

type Kind string

const (
	KindFacilityTourA Kind = "facility_tour_A"
	KindFacilityTourB Kind = "facility_tour_B"
	KindGolfOuting    Kind = "golf_outing"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindFacilityTourA, KindFacilityTourB, KindGolfOuting:
		return true
	default:
		return false
	}
}

func ParseKind(s string) (Kind, error) {
	k := Kind(strings.TrimSpace(s))
	if !k.IsValid() {
		return "", ErrUnknownEvent
	}
	return k, nil
}

type Slot struct {
	Label    string `yaml:"label" json:"label"`
	Capacity int    `yaml:"capacity" json:"capacity"`
}

// Event is static for the lifetime of the process.
type Event struct {
	Kind     Kind   `yaml:"kind"`
	Title    string `yaml:"title"`
	IDPrefix string `yaml:"idPrefix"`
	// Capacity must be zero for slotted events; each slot carries its own.
	Capacity        int    `yaml:"capacity"`
	Group           bool   `yaml:"group"`
	MaxGroupMembers int    `yaml:"maxGroupMembers"`
	Slots           []Slot `yaml:"slots"`
}

func (e Event) IsSlotted() bool {
	return len(e.Slots) > 0
}

func (e Event) Slot(label string) (Slot, bool) {
	for _, s := range e.Slots {
		if s.Label == label {
			return s, true
		}
	}
	return Slot{}, false
}

// ResolveSlot checks slotLabel against the event shape and returns the normalized label.
func (e Event) ResolveSlot(slotLabel string) (string, error) {
	label := strings.TrimSpace(slotLabel)
	if !e.IsSlotted() {
		if label != "" {
			return "", ErrSlotNotAllowed
		}
		return "", nil
	}
	if label == "" {
		return "", ErrSlotRequired
	}
	if _, ok := e.Slot(label); !ok {
		return "", ErrUnknownSlot
	}
	return label, nil
}

// CapacityFor returns the seat limit that admission is checked against.
func (e Event) CapacityFor(slotLabel string) (int, error) {
	label, err := e.ResolveSlot(slotLabel)
	if err != nil {
		return 0, err
	}
	if label == "" {
		return e.Capacity, nil
	}
	s, _ := e.Slot(label)
	return s.Capacity, nil
}

func (e Event) TotalCapacity() int {
	if !e.IsSlotted() {
		return e.Capacity
	}
	total := 0
	for _, s := range e.Slots {
		total += s.Capacity
	}
	return total
}
