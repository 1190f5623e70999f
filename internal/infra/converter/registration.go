package converter

import (
	"encoding/json"

	"event-registration/internal/domain/event"
	"event-registration/internal/domain/registration"
	"event-registration/internal/infra/sqlstore"
	"event-registration/internal/pkg/errs"
	"event-registration/internal/pkg/pgconv"
	"event-registration/internal/usecase/queries"
)

func RegistrationToInsertParams(reg *registration.Registration) (sqlstore.InsertRegistrationParams, error) {
	members, err := encodeMembers(reg.Members())
	if err != nil {
		return sqlstore.InsertRegistrationParams{}, err
	}

	applicant := reg.Applicant()
	return sqlstore.InsertRegistrationParams{
		ID:             reg.ID(),
		EventKind:      string(reg.EventKind()),
		SlotLabel:      pgconv.OptionalStringToPgtype(reg.SlotLabel()),
		ContactEmail:   reg.Email().Value(),
		FamilyName:     applicant.FamilyName,
		GivenName:      applicant.GivenName,
		FamilyNameKana: applicant.FamilyNameKana,
		GivenNameKana:  applicant.GivenNameKana,
		Phone:          applicant.Phone,
		Organization:   applicant.Organization,
		GroupMembers:   members,
		Seats:          int32(reg.Seats()), // #nosec G115 -- seats is bounded by event capacity
		Status:         reg.Status().String(),
		CreatedAt:      pgconv.TimeToPgtype(reg.CreatedAt()),
	}, nil
}

func RegistrationToUpdateParams(reg *registration.Registration) sqlstore.UpdateRegistrationParams {
	applicant := reg.Applicant()
	return sqlstore.UpdateRegistrationParams{
		ID:             reg.ID(),
		ContactEmail:   reg.Email().Value(),
		FamilyName:     applicant.FamilyName,
		GivenName:      applicant.GivenName,
		FamilyNameKana: applicant.FamilyNameKana,
		GivenNameKana:  applicant.GivenNameKana,
		Phone:          applicant.Phone,
		Organization:   applicant.Organization,
		UpdatedAt:      pgconv.TimeToPgtype(reg.UpdatedAt()),
	}
}

func RowToRegistration(row sqlstore.RegistrationRow) (*registration.Registration, error) {
	members, err := decodeMembers(row.GroupMembers)
	if err != nil {
		return nil, err
	}

	return registration.Reconstruct(
		row.ID,
		event.Kind(row.EventKind),
		pgconv.StringFromPgtype(row.SlotLabel),
		registration.ReconstructEmail(row.ContactEmail),
		registration.Applicant{
			FamilyName:     row.FamilyName,
			GivenName:      row.GivenName,
			FamilyNameKana: row.FamilyNameKana,
			GivenNameKana:  row.GivenNameKana,
			Phone:          row.Phone,
			Organization:   row.Organization,
		},
		members,
		int(row.Seats),
		registration.NormalizeStatus(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
		pgconv.TimePtrFromPgtype(row.CancelledAt),
		pgconv.StringPtrFromPgtype(row.CancelReason),
	), nil
}

func RowToView(row sqlstore.RegistrationRow) (queries.RegistrationView, error) {
	members, err := decodeMembers(row.GroupMembers)
	if err != nil {
		return queries.RegistrationView{}, err
	}

	return queries.RegistrationView{
		ID:             row.ID,
		EventKind:      row.EventKind,
		SlotLabel:      pgconv.StringFromPgtype(row.SlotLabel),
		ContactEmail:   row.ContactEmail,
		FamilyName:     row.FamilyName,
		GivenName:      row.GivenName,
		FamilyNameKana: row.FamilyNameKana,
		GivenNameKana:  row.GivenNameKana,
		Phone:          row.Phone,
		Organization:   row.Organization,
		GroupMembers:   MembersToView(members),
		Seats:          int(row.Seats),
		Status:         registration.NormalizeStatus(row.Status).String(),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
		CancelledAt:    pgconv.TimePtrFromPgtype(row.CancelledAt),
		CancelReason:   pgconv.StringPtrFromPgtype(row.CancelReason),
	}, nil
}

// RegistrationToView is used by the in-memory store, which keeps domain objects.
func RegistrationToView(reg *registration.Registration) queries.RegistrationView {
	applicant := reg.Applicant()
	return queries.RegistrationView{
		ID:             reg.ID(),
		EventKind:      string(reg.EventKind()),
		SlotLabel:      reg.SlotLabel(),
		ContactEmail:   reg.Email().Value(),
		FamilyName:     applicant.FamilyName,
		GivenName:      applicant.GivenName,
		FamilyNameKana: applicant.FamilyNameKana,
		GivenNameKana:  applicant.GivenNameKana,
		Phone:          applicant.Phone,
		Organization:   applicant.Organization,
		GroupMembers:   MembersToView(reg.Members()),
		Seats:          reg.Seats(),
		Status:         reg.Status().String(),
		CreatedAt:      reg.CreatedAt(),
		UpdatedAt:      reg.UpdatedAt(),
		CancelledAt:    reg.CancelledAt(),
		CancelReason:   reg.CancelReason(),
	}
}

func MembersToView(members []registration.GroupMember) []queries.MemberView {
	out := make([]queries.MemberView, len(members))
	for i, m := range members {
		out[i] = queries.MemberView{Name: m.Name, Kana: m.Kana}
	}
	return out
}

func encodeMembers(members []registration.GroupMember) ([]byte, error) {
	if members == nil {
		members = []registration.GroupMember{}
	}
	b, err := json.Marshal(members)
	if err != nil {
		return nil, errs.Wrap(err, "encode group members")
	}
	return b, nil
}

func decodeMembers(raw []byte) ([]registration.GroupMember, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var members []registration.GroupMember
	if err := json.Unmarshal(raw, &members); err != nil {
		return nil, errs.Wrap(err, "decode group members")
	}
	return members, nil
}
