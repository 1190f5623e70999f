//go:build unit || e2e

package builder

import (
	"encoding/json"
	"time"

	"event-registration/internal/domain/event"
	"event-registration/internal/domain/registration"
	reqdto "event-registration/internal/handler/dto/request"
	"event-registration/internal/infra/sqlstore"
	"event-registration/internal/usecase/commands"
	"event-registration/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type RegistrationBuilder struct {
	ID             string
	EventKind      event.Kind
	SlotLabel      string
	Email          string
	FamilyName     string
	GivenName      string
	FamilyNameKana string
	GivenNameKana  string
	Phone          string
	Organization   string
	Members        []registration.GroupMember
	Status         registration.Status
	CreatedAt      time.Time
}

func NewRegistrationBuilder() *RegistrationBuilder {
	return &RegistrationBuilder{
		ID:             "TOURB-A1B2C3",
		EventKind:      event.KindFacilityTourB,
		Email:          "taro.yamada@example.com",
		FamilyName:     "山田",
		GivenName:      "太郎",
		FamilyNameKana: "ヤマダ",
		GivenNameKana:  "タロウ",
		Phone:          "090-1234-5678",
		Organization:   "山田商事",
		Status:         registration.StatusActive,
		CreatedAt:      time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *RegistrationBuilder) With(mutate func(*RegistrationBuilder)) *RegistrationBuilder {
	mutate(b)
	return b
}

func (b *RegistrationBuilder) WithEvent(kind event.Kind, slotLabel string) *RegistrationBuilder {
	b.EventKind = kind
	b.SlotLabel = slotLabel
	return b
}

func (b *RegistrationBuilder) WithEmail(email string) *RegistrationBuilder {
	b.Email = email
	return b
}

func (b *RegistrationBuilder) WithMembers(names ...string) *RegistrationBuilder {
	b.Members = b.Members[:0]
	for _, n := range names {
		b.Members = append(b.Members, registration.GroupMember{Name: n})
	}
	return b
}

func (b *RegistrationBuilder) WithStatus(status registration.Status) *RegistrationBuilder {
	b.Status = status
	return b
}

func (b *RegistrationBuilder) WithID(id string) *RegistrationBuilder {
	b.ID = id
	return b
}

func (b *RegistrationBuilder) applicant() registration.Applicant {
	return registration.Applicant{
		FamilyName:     b.FamilyName,
		GivenName:      b.GivenName,
		FamilyNameKana: b.FamilyNameKana,
		GivenNameKana:  b.GivenNameKana,
		Phone:          b.Phone,
		Organization:   b.Organization,
	}
}

// Build methods
func (b *RegistrationBuilder) BuildApplication(events *event.Registry) (registration.Application, error) {
	ev, err := events.Get(b.EventKind)
	if err != nil {
		return registration.Application{}, err
	}
	email, err := registration.NewEmail(b.Email)
	if err != nil {
		return registration.Application{}, err
	}
	return registration.NewApplication(ev, b.SlotLabel, email, b.applicant(), b.Members)
}

func (b *RegistrationBuilder) BuildDomain() (*registration.Registration, error) {
	app, err := b.BuildApplication(event.DefaultRegistry())
	if err != nil {
		return nil, err
	}
	return registration.NewRegistration(b.ID, app, b.Status, b.CreatedAt), nil
}

func (b *RegistrationBuilder) BuildAdmitInput() commands.AdmitInput {
	return commands.AdmitInput{
		EventKind: string(b.EventKind),
		SlotLabel: b.SlotLabel,
		Email:     b.Email,
		Applicant: b.applicant(),
		Members:   append(make([]registration.GroupMember, 0, len(b.Members)), b.Members...),
	}
}

func (b *RegistrationBuilder) BuildSubmitRequestDTO() reqdto.SubmitRegistrationRequest {
	members := make([]reqdto.GroupMemberRequest, 0, len(b.Members))
	for _, m := range b.Members {
		members = append(members, reqdto.GroupMemberRequest{Name: m.Name, Kana: m.Kana})
	}
	return reqdto.SubmitRegistrationRequest{
		EventKind:      string(b.EventKind),
		SlotLabel:      b.SlotLabel,
		ContactEmail:   b.Email,
		FamilyName:     b.FamilyName,
		GivenName:      b.GivenName,
		FamilyNameKana: b.FamilyNameKana,
		GivenNameKana:  b.GivenNameKana,
		Phone:          b.Phone,
		Organization:   b.Organization,
		GroupMembers:   members,
	}
}

func (b *RegistrationBuilder) BuildInfra() sqlstore.RegistrationRow {
	members := registration.NamedMembers(b.Members)
	raw, _ := json.Marshal(members)
	slot := pgtype.Text{}
	if b.SlotLabel != "" {
		slot = pgtype.Text{String: b.SlotLabel, Valid: true}
	}
	return sqlstore.RegistrationRow{
		ID:             b.ID,
		EventKind:      string(b.EventKind),
		SlotLabel:      slot,
		ContactEmail:   b.Email,
		FamilyName:     b.FamilyName,
		GivenName:      b.GivenName,
		FamilyNameKana: b.FamilyNameKana,
		GivenNameKana:  b.GivenNameKana,
		Phone:          b.Phone,
		Organization:   b.Organization,
		GroupMembers:   raw,
		Seats:          int32(1 + len(members)),
		Status:         string(b.Status),
		CreatedAt:      pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:      pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *RegistrationBuilder) BuildView() queries.RegistrationView {
	members := registration.NamedMembers(b.Members)
	views := make([]queries.MemberView, len(members))
	for i, m := range members {
		views[i] = queries.MemberView{Name: m.Name, Kana: m.Kana}
	}
	return queries.RegistrationView{
		ID:             b.ID,
		EventKind:      string(b.EventKind),
		SlotLabel:      b.SlotLabel,
		ContactEmail:   b.Email,
		FamilyName:     b.FamilyName,
		GivenName:      b.GivenName,
		FamilyNameKana: b.FamilyNameKana,
		GivenNameKana:  b.GivenNameKana,
		Phone:          b.Phone,
		Organization:   b.Organization,
		GroupMembers:   views,
		Seats:          1 + len(members),
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.CreatedAt,
	}
}
