package registration

import (
	"errors"
	"strings"
	"time"

	"event-registration/internal/domain/event"
)

var ErrNotActive = errors.New("registration is not active")

// Registration is one row of the system of record. Status only ever moves active -> cancelled.
type Registration struct {
	id           string
	eventKind    event.Kind
	slotLabel    string
	email        Email
	applicant    Applicant
	members      []GroupMember
	seats        int
	status       Status
	createdAt    time.Time
	updatedAt    time.Time
	cancelledAt  *time.Time
	cancelReason *string
}

func NewRegistration(id string, app Application, status Status, now time.Time) *Registration {
	return &Registration{
		id:        id,
		eventKind: app.EventKind(),
		slotLabel: app.SlotLabel(),
		email:     app.Email(),
		applicant: app.Applicant(),
		members:   app.Members(),
		seats:     app.Seats(),
		status:    status,
		createdAt: now,
		updatedAt: now,
	}
}

func Reconstruct(
	id string,
	eventKind event.Kind,
	slotLabel string,
	email Email,
	applicant Applicant,
	members []GroupMember,
	seats int,
	status Status,
	createdAt, updatedAt time.Time,
	cancelledAt *time.Time,
	cancelReason *string,
) *Registration {
	return &Registration{
		id:           id,
		eventKind:    eventKind,
		slotLabel:    slotLabel,
		email:        email,
		applicant:    applicant,
		members:      members,
		seats:        seats,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		cancelledAt:  cancelledAt,
		cancelReason: cancelReason,
	}
}

// WithID is used when the store reports an id collision and a fresh id is drawn.
func (r *Registration) WithID(id string) *Registration {
	cp := *r
	cp.id = id
	return &cp
}

func (r *Registration) Cancel(now time.Time, reason string) error {
	if r.status != StatusActive {
		return ErrNotActive
	}
	r.status = StatusCancelled
	r.cancelledAt = &now
	r.updatedAt = now
	if reason = strings.TrimSpace(reason); reason != "" {
		r.cancelReason = &reason
	}
	return nil
}

// Edit holds admin field corrections; nil fields are left untouched.
type Edit struct {
	Email          *Email
	FamilyName     *string
	GivenName      *string
	FamilyNameKana *string
	GivenNameKana  *string
	Phone          *string
	Organization   *string
}

func (e Edit) IsEmpty() bool {
	return e.Email == nil && e.FamilyName == nil && e.GivenName == nil &&
		e.FamilyNameKana == nil && e.GivenNameKana == nil && e.Phone == nil && e.Organization == nil
}

func (r *Registration) ApplyEdit(e Edit, now time.Time) error {
	next := r.applicant
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&next.FamilyName, e.FamilyName)
	set(&next.GivenName, e.GivenName)
	set(&next.FamilyNameKana, e.FamilyNameKana)
	set(&next.GivenNameKana, e.GivenNameKana)
	set(&next.Phone, e.Phone)
	set(&next.Organization, e.Organization)
	if next.FamilyName == "" || next.GivenName == "" {
		return ErrApplicantNameRequired
	}

	r.applicant = next
	if e.Email != nil {
		r.email = *e.Email
	}
	r.updatedAt = now
	return nil
}

func (r *Registration) IsActive() bool {
	return r.status == StatusActive
}

func (r *Registration) ID() string              { return r.id }
func (r *Registration) EventKind() event.Kind   { return r.eventKind }
func (r *Registration) SlotLabel() string       { return r.slotLabel }
func (r *Registration) Email() Email            { return r.email }
func (r *Registration) Applicant() Applicant    { return r.applicant }
func (r *Registration) Members() []GroupMember  { return append([]GroupMember(nil), r.members...) }
func (r *Registration) Seats() int              { return r.seats }
func (r *Registration) Status() Status          { return r.status }
func (r *Registration) CreatedAt() time.Time    { return r.createdAt }
func (r *Registration) UpdatedAt() time.Time    { return r.updatedAt }
func (r *Registration) CancelledAt() *time.Time { return r.cancelledAt }
func (r *Registration) CancelReason() *string   { return r.cancelReason }
