//go:build unit

package converter

import (
	"testing"
	"time"

	"event-registration/internal/domain/event"
	"event-registration/internal/domain/registration"
	"event-registration/internal/infra/sqlstore"
	"event-registration/internal/pkg/pgconv"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func golfRegistration(t *testing.T) *registration.Registration {
	t.Helper()
	ev, err := event.DefaultRegistry().Get(event.KindGolfOuting)
	require.NoError(t, err)
	email, err := registration.NewEmail("Taro@Example.com")
	require.NoError(t, err)

	app, err := registration.NewApplication(ev, "", email,
		registration.Applicant{FamilyName: "山田", GivenName: "太郎", Organization: "山田商事"},
		[]registration.GroupMember{{Name: "佐藤 花子", Kana: "サトウ ハナコ"}, {Name: " "}},
	)
	require.NoError(t, err)
	return registration.NewRegistration("GOLF-ABC123", app, registration.StatusActive, time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC))
}

func TestRegistrationToInsertParams(t *testing.T) {
	reg := golfRegistration(t)

	params, err := RegistrationToInsertParams(reg)
	require.NoError(t, err)

	assert.Equal(t, "GOLF-ABC123", params.ID)
	assert.Equal(t, "golf_outing", params.EventKind)
	assert.False(t, params.SlotLabel.Valid)
	assert.Equal(t, "taro@example.com", params.ContactEmail)
	assert.Equal(t, int32(2), params.Seats)
	assert.Equal(t, "active", params.Status)
	assert.JSONEq(t, `[{"name":"佐藤 花子","kana":"サトウ ハナコ"}]`, string(params.GroupMembers))
}

func TestRowToRegistration_LegacyStatus(t *testing.T) {
	row := sqlstore.RegistrationRow{
		ID:           "TOURB-ZZZ999",
		EventKind:    "facility_tour_B",
		ContactEmail: "legacy@example.com",
		FamilyName:   "鈴木",
		GivenName:    "一郎",
		Seats:        1,
		Status:       "",
		CreatedAt:    pgconv.TimeToPgtype(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
	}

	reg, err := RowToRegistration(row)
	require.NoError(t, err)
	assert.Equal(t, registration.StatusActive, reg.Status())
	assert.Empty(t, reg.Members())

	view, err := RowToView(row)
	require.NoError(t, err)
	assert.Equal(t, "active", view.Status)
	assert.Empty(t, view.GroupMembers)
}

func TestRowToView_MatchesDomainView(t *testing.T) {
	reg := golfRegistration(t)
	params, err := RegistrationToInsertParams(reg)
	require.NoError(t, err)

	row := sqlstore.RegistrationRow{
		ID:             params.ID,
		EventKind:      params.EventKind,
		SlotLabel:      params.SlotLabel,
		ContactEmail:   params.ContactEmail,
		FamilyName:     params.FamilyName,
		GivenName:      params.GivenName,
		FamilyNameKana: params.FamilyNameKana,
		GivenNameKana:  params.GivenNameKana,
		Phone:          params.Phone,
		Organization:   params.Organization,
		GroupMembers:   params.GroupMembers,
		Seats:          params.Seats,
		Status:         params.Status,
		CreatedAt:      params.CreatedAt,
		UpdatedAt:      params.CreatedAt,
	}

	got, err := RowToView(row)
	require.NoError(t, err)
	want := RegistrationToView(reg)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("view mismatch (-want +got):\n%s", diff)
	}
}

func TestRowToRegistration_BadMembers(t *testing.T) {
	_, err := RowToRegistration(sqlstore.RegistrationRow{GroupMembers: []byte("{not json")})
	assert.Error(t, err)
}
