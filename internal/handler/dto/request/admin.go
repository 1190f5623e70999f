package request

import (
	"event-registration/internal/usecase/commands"
	"event-registration/internal/usecase/queries"
)

type ListRegistrationsQuery struct {
	EventKind string `form:"eventKind"`
	SlotLabel string `form:"slotLabel"`
	Status    string `form:"status"`
}

func (q ListRegistrationsQuery) ToFilter() queries.ListFilter {
	return queries.ListFilter{
		EventKind: q.EventKind,
		SlotLabel: q.SlotLabel,
		Status:    q.Status,
	}
}

type ExportRegistrationsQuery struct {
	EventKind string `form:"eventKind" binding:"required"`
}

// UpdateRegistrationRequest carries only the fields an operator may correct.
type UpdateRegistrationRequest struct {
	ContactEmail   *string `json:"contactEmail,omitempty" binding:"omitempty,email,max=254"`
	FamilyName     *string `json:"familyName,omitempty" binding:"omitempty,max=50"`
	GivenName      *string `json:"givenName,omitempty" binding:"omitempty,max=50"`
	FamilyNameKana *string `json:"familyNameKana,omitempty" binding:"omitempty,max=50"`
	GivenNameKana  *string `json:"givenNameKana,omitempty" binding:"omitempty,max=50"`
	Phone          *string `json:"phone,omitempty" binding:"omitempty,max=20"`
	Organization   *string `json:"organization,omitempty" binding:"omitempty,max=100"`
}

func (r UpdateRegistrationRequest) ToPatch() commands.FieldPatch {
	return commands.FieldPatch{
		ContactEmail:   r.ContactEmail,
		FamilyName:     r.FamilyName,
		GivenName:      r.GivenName,
		FamilyNameKana: r.FamilyNameKana,
		GivenNameKana:  r.GivenNameKana,
		Phone:          r.Phone,
		Organization:   r.Organization,
	}
}
