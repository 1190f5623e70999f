package response

import (
	"time"

	"event-registration/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type SubmitRegistrationResponse struct {
	ID       string `json:"id"`
	Accepted bool   `json:"accepted"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type GroupMemberResponse struct {
	Name string `json:"name"`
	Kana string `json:"kana"`
}

type ParticipantResponse struct {
	ID             string                `json:"id"`
	EventKind      string                `json:"eventKind"`
	SlotLabel      string                `json:"slotLabel,omitempty"`
	ContactEmail   string                `json:"contactEmail"`
	FamilyName     string                `json:"familyName"`
	GivenName      string                `json:"givenName"`
	FamilyNameKana string                `json:"familyNameKana"`
	GivenNameKana  string                `json:"givenNameKana"`
	Phone          string                `json:"phone"`
	Organization   string                `json:"organization"`
	GroupMembers   []GroupMemberResponse `json:"groupMembers"`
	Seats          int                   `json:"seats"`
	Status         string                `json:"status"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
	CancelledAt    *time.Time            `json:"cancelledAt,omitempty"`
	CancelReason   *string               `json:"cancelReason,omitempty"`
}

type RegistrationListResponse struct {
	TotalCount   int                   `json:"totalCount"`
	TotalSeats   int                   `json:"totalSeats"`
	Participants []ParticipantResponse `json:"participants"`
}

func FromListResult(r *queries.ListResult) (*RegistrationListResponse, error) {
	out := &RegistrationListResponse{
		TotalCount:   r.TotalCount,
		TotalSeats:   r.TotalSeats,
		Participants: make([]ParticipantResponse, 0, len(r.Participants)),
	}
	if err := copier.CopyWithOption(&out.Participants, &r.Participants, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	for i := range out.Participants {
		if out.Participants[i].GroupMembers == nil {
			out.Participants[i].GroupMembers = []GroupMemberResponse{}
		}
	}
	return out, nil
}
