package sqlstore

import "github.com/jackc/pgx/v5/pgtype"

// RegistrationRow.Status is already normalized: NULL and '' come back as "active".
type RegistrationRow struct {
	ID             string
	EventKind      string
	SlotLabel      pgtype.Text
	ContactEmail   string
	FamilyName     string
	GivenName      string
	FamilyNameKana string
	GivenNameKana  string
	Phone          string
	Organization   string
	GroupMembers   []byte
	Seats          int32
	Status         string
	CreatedAt      pgtype.Timestamptz
	UpdatedAt      pgtype.Timestamptz
	CancelledAt    pgtype.Timestamptz
	CancelReason   pgtype.Text
}
