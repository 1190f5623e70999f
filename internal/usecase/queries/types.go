package queries

import "time"

type MemberView struct {
	Name string `json:"name"`
	Kana string `json:"kana"`
}

// RegistrationView is a read-optimized registration row. Legacy rows without a status read as "active".
type RegistrationView struct {
	ID             string       `json:"id"`
	EventKind      string       `json:"eventKind"`
	SlotLabel      string       `json:"slotLabel,omitempty"`
	ContactEmail   string       `json:"contactEmail"`
	FamilyName     string       `json:"familyName"`
	GivenName      string       `json:"givenName"`
	FamilyNameKana string       `json:"familyNameKana"`
	GivenNameKana  string       `json:"givenNameKana"`
	Phone          string       `json:"phone"`
	Organization   string       `json:"organization"`
	GroupMembers   []MemberView `json:"groupMembers"`
	Seats          int          `json:"seats"`
	Status         string       `json:"status"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
	CancelledAt    *time.Time   `json:"cancelledAt,omitempty"`
	CancelReason   *string      `json:"cancelReason,omitempty"`
}

type ListFilter struct {
	EventKind string
	// Empty SlotLabel and Status mean "all".
	SlotLabel string
	Status    string
}

type ListResult struct {
	TotalCount   int
	TotalSeats   int
	Participants []RegistrationView
}

type CapacityView struct {
	EventKind      string
	SlotLabel      string
	CurrentCount   int
	MaxEntries     int
	RemainingSlots int
	IsAvailable    bool
	HasError       bool
	Timestamp      time.Time
}

type SlotView struct {
	Label    string
	Capacity int
}

type EventView struct {
	Kind            string
	Title           string
	Capacity        int
	Group           bool
	MaxGroupMembers int
	Slots           []SlotView
}
