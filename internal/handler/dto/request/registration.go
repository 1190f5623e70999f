package request

import (
	"event-registration/internal/domain/registration"
	"event-registration/internal/usecase/commands"
)

type GroupMemberRequest struct {
	Name string `json:"name" binding:"max=100"`
	Kana string `json:"kana" binding:"max=100"`
}

type SubmitRegistrationRequest struct {
	EventKind      string               `json:"eventKind" binding:"required"`
	SlotLabel      string               `json:"slotLabel,omitempty"`
	ContactEmail   string               `json:"contactEmail" binding:"required,email,max=254"`
	FamilyName     string               `json:"familyName" binding:"required,max=50"`
	GivenName      string               `json:"givenName" binding:"required,max=50"`
	FamilyNameKana string               `json:"familyNameKana" binding:"max=50"`
	GivenNameKana  string               `json:"givenNameKana" binding:"max=50"`
	Phone          string               `json:"phone" binding:"max=20"`
	Organization   string               `json:"organization" binding:"max=100"`
	GroupMembers   []GroupMemberRequest `json:"groupMembers,omitempty" binding:"max=10,dive"`
}

func (r SubmitRegistrationRequest) ToInput() commands.AdmitInput {
	members := make([]registration.GroupMember, 0, len(r.GroupMembers))
	for _, m := range r.GroupMembers {
		members = append(members, registration.GroupMember{Name: m.Name, Kana: m.Kana})
	}
	return commands.AdmitInput{
		EventKind: r.EventKind,
		SlotLabel: r.SlotLabel,
		Email:     r.ContactEmail,
		Applicant: registration.Applicant{
			FamilyName:     r.FamilyName,
			GivenName:      r.GivenName,
			FamilyNameKana: r.FamilyNameKana,
			GivenNameKana:  r.GivenNameKana,
			Phone:          r.Phone,
			Organization:   r.Organization,
		},
		Members: members,
	}
}

type CancelRegistrationRequest struct {
	ID           string `json:"id" binding:"required,max=32"`
	ContactEmail string `json:"contactEmail" binding:"required,email"`
	Reason       string `json:"reason" binding:"max=500"`
}

func (r CancelRegistrationRequest) ToInput() commands.CancelInput {
	return commands.CancelInput{
		ID:     r.ID,
		Email:  r.ContactEmail,
		Reason: r.Reason,
	}
}

type CapacityQuery struct {
	EventKind string `form:"eventKind" binding:"required"`
	SlotLabel string `form:"slotLabel"`
}
