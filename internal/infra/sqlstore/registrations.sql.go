package sqlstore

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const registrationColumns = `id, event_kind, slot_label, contact_email,
    family_name, given_name, family_name_kana, given_name_kana, phone, organization,
    group_members, seats, COALESCE(NULLIF(status, ''), 'active') AS status,
    created_at, updated_at, cancelled_at, cancel_reason`

func scanRegistration(row pgx.Row) (RegistrationRow, error) {
	var i RegistrationRow
	err := row.Scan(
		&i.ID,
		&i.EventKind,
		&i.SlotLabel,
		&i.ContactEmail,
		&i.FamilyName,
		&i.GivenName,
		&i.FamilyNameKana,
		&i.GivenNameKana,
		&i.Phone,
		&i.Organization,
		&i.GroupMembers,
		&i.Seats,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.CancelledAt,
		&i.CancelReason,
	)
	return i, err
}

const lockEventKind = `-- name: LockEventKind :exec
SELECT pg_advisory_xact_lock(hashtext($1))
`

// LockEventKind holds a transaction-scoped advisory lock keyed by the event kind.
func (q *Queries) LockEventKind(ctx context.Context, db DBTX, eventKind string) error {
	_, err := db.Exec(ctx, lockEventKind, eventKind)
	return err
}

const insertRegistration = `-- name: InsertRegistration :execrows
INSERT INTO registrations (
    id, event_kind, slot_label, contact_email,
    family_name, given_name, family_name_kana, given_name_kana, phone, organization,
    group_members, seats, status, created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14
)
ON CONFLICT (id) DO NOTHING
`

type InsertRegistrationParams struct {
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
}

// InsertRegistration returns 0 rows affected when the id already exists.
func (q *Queries) InsertRegistration(ctx context.Context, db DBTX, arg InsertRegistrationParams) (int64, error) {
	result, err := db.Exec(ctx, insertRegistration,
		arg.ID,
		arg.EventKind,
		arg.SlotLabel,
		arg.ContactEmail,
		arg.FamilyName,
		arg.GivenName,
		arg.FamilyNameKana,
		arg.GivenNameKana,
		arg.Phone,
		arg.Organization,
		arg.GroupMembers,
		arg.Seats,
		arg.Status,
		arg.CreatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const sumActiveSeats = `-- name: SumActiveSeats :one
SELECT COALESCE(SUM(seats), 0)::bigint
FROM registrations
WHERE event_kind = $1
  AND ($2::text IS NULL OR slot_label = $2::text)
  AND COALESCE(NULLIF(status, ''), 'active') = 'active'
`

type SumActiveSeatsParams struct {
	EventKind string
	SlotLabel pgtype.Text
}

func (q *Queries) SumActiveSeats(ctx context.Context, db DBTX, arg SumActiveSeatsParams) (int64, error) {
	row := db.QueryRow(ctx, sumActiveSeats, arg.EventKind, arg.SlotLabel)
	var total int64
	err := row.Scan(&total)
	return total, err
}

const activeEmailExists = `-- name: ActiveEmailExists :one
SELECT EXISTS (
    SELECT 1 FROM registrations
    WHERE event_kind = $1
      AND contact_email = $2
      AND COALESCE(NULLIF(status, ''), 'active') = 'active'
)
`

type ActiveEmailExistsParams struct {
	EventKind    string
	ContactEmail string
}

func (q *Queries) ActiveEmailExists(ctx context.Context, db DBTX, arg ActiveEmailExistsParams) (bool, error) {
	row := db.QueryRow(ctx, activeEmailExists, arg.EventKind, arg.ContactEmail)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const getRegistrationByID = `-- name: GetRegistrationByID :one
SELECT ` + registrationColumns + `
FROM registrations
WHERE id = $1
`

func (q *Queries) GetRegistrationByID(ctx context.Context, db DBTX, id string) (RegistrationRow, error) {
	return scanRegistration(db.QueryRow(ctx, getRegistrationByID, id))
}

const getRegistrationByIDForUpdate = `-- name: GetRegistrationByIDForUpdate :one
SELECT ` + registrationColumns + `
FROM registrations
WHERE id = $1
FOR UPDATE
`

func (q *Queries) GetRegistrationByIDForUpdate(ctx context.Context, db DBTX, id string) (RegistrationRow, error) {
	return scanRegistration(db.QueryRow(ctx, getRegistrationByIDForUpdate, id))
}

const cancelRegistration = `-- name: CancelRegistration :one
UPDATE registrations
SET status = 'cancelled',
    cancelled_at = $3,
    cancel_reason = $4,
    updated_at = $3
WHERE id = $1
  AND contact_email = $2
  AND COALESCE(NULLIF(status, ''), 'active') = 'active'
RETURNING ` + registrationColumns + `
`

type CancelRegistrationParams struct {
	ID           string
	ContactEmail string
	CancelledAt  pgtype.Timestamptz
	CancelReason pgtype.Text
}

// CancelRegistration returns pgx.ErrNoRows when no active row matches both id and email.
func (q *Queries) CancelRegistration(ctx context.Context, db DBTX, arg CancelRegistrationParams) (RegistrationRow, error) {
	return scanRegistration(db.QueryRow(ctx, cancelRegistration,
		arg.ID,
		arg.ContactEmail,
		arg.CancelledAt,
		arg.CancelReason,
	))
}

const updateRegistration = `-- name: UpdateRegistration :execrows
UPDATE registrations
SET contact_email = $2,
    family_name = $3,
    given_name = $4,
    family_name_kana = $5,
    given_name_kana = $6,
    phone = $7,
    organization = $8,
    updated_at = $9
WHERE id = $1
`

type UpdateRegistrationParams struct {
	ID             string
	ContactEmail   string
	FamilyName     string
	GivenName      string
	FamilyNameKana string
	GivenNameKana  string
	Phone          string
	Organization   string
	UpdatedAt      pgtype.Timestamptz
}

func (q *Queries) UpdateRegistration(ctx context.Context, db DBTX, arg UpdateRegistrationParams) (int64, error) {
	result, err := db.Exec(ctx, updateRegistration,
		arg.ID,
		arg.ContactEmail,
		arg.FamilyName,
		arg.GivenName,
		arg.FamilyNameKana,
		arg.GivenNameKana,
		arg.Phone,
		arg.Organization,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const listRegistrations = `-- name: ListRegistrations :many
SELECT ` + registrationColumns + `
FROM registrations
WHERE ($1::text IS NULL OR event_kind = $1::text)
  AND ($2::text IS NULL OR slot_label = $2::text)
  AND ($3::text IS NULL OR COALESCE(NULLIF(status, ''), 'active') = $3::text)
ORDER BY created_at, id
`

type ListRegistrationsParams struct {
	EventKind pgtype.Text
	SlotLabel pgtype.Text
	Status    pgtype.Text
}

func (q *Queries) ListRegistrations(ctx context.Context, db DBTX, arg ListRegistrationsParams) ([]RegistrationRow, error) {
	rows, err := db.Query(ctx, listRegistrations, arg.EventKind, arg.SlotLabel, arg.Status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []RegistrationRow{}
	for rows.Next() {
		i, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
