package response

import (
	"time"

	"event-registration/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type CapacityResponse struct {
	EventKind      string    `json:"eventKind"`
	SlotLabel      string    `json:"slotLabel,omitempty"`
	CurrentCount   int       `json:"currentCount"`
	MaxEntries     int       `json:"maxEntries"`
	RemainingSlots int       `json:"remainingSlots"`
	IsAvailable    bool      `json:"isAvailable"`
	HasError       bool      `json:"hasError,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

func FromCapacityView(v *queries.CapacityView) (*CapacityResponse, error) {
	var out CapacityResponse
	if err := copier.Copy(&out, v); err != nil {
		return nil, err
	}
	return &out, nil
}

type SlotResponse struct {
	Label    string `json:"label"`
	Capacity int    `json:"capacity"`
}

type EventResponse struct {
	Kind            string         `json:"kind"`
	Title           string         `json:"title"`
	Capacity        int            `json:"capacity"`
	Group           bool           `json:"group"`
	MaxGroupMembers int            `json:"maxGroupMembers,omitempty"`
	Slots           []SlotResponse `json:"slots,omitempty"`
}

func FromEventViews(views []queries.EventView) ([]EventResponse, error) {
	out := make([]EventResponse, 0, len(views))
	if err := copier.CopyWithOption(&out, &views, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return out, nil
}
