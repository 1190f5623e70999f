package notify

import (
	"context"
	"time"

	"event-registration/internal/domain/event"
	"event-registration/internal/domain/registration"

	"github.com/google/uuid"
)

type Kind string

const (
	KindAdmission    Kind = "admission"
	KindCancellation Kind = "cancellation"
)

const (
	StepTicket = "ticket"
	StepEmail  = "email"
	StepChat   = "chat"
)

// Message is a snapshot taken at commit time; workers never go back to the store.
type Message struct {
	ID             uuid.UUID
	Kind           Kind
	RegistrationID string
	EventKind      event.Kind
	EventTitle     string
	SlotLabel      string
	Email          string
	FullName       string
	Organization   string
	Members        []registration.GroupMember
	Seats          int
	CancelReason   string
	OccurredAt     time.Time
}

func NewAdmissionMessage(ev event.Event, reg *registration.Registration) Message {
	return newMessage(KindAdmission, ev, reg, reg.CreatedAt())
}

func NewCancellationMessage(ev event.Event, reg *registration.Registration) Message {
	msg := newMessage(KindCancellation, ev, reg, reg.UpdatedAt())
	if reg.CancelledAt() != nil {
		msg.OccurredAt = *reg.CancelledAt()
	}
	if reg.CancelReason() != nil {
		msg.CancelReason = *reg.CancelReason()
	}
	return msg
}

func newMessage(kind Kind, ev event.Event, reg *registration.Registration, at time.Time) Message {
	return Message{
		ID:             uuid.New(),
		Kind:           kind,
		RegistrationID: reg.ID(),
		EventKind:      ev.Kind,
		EventTitle:     ev.Title,
		SlotLabel:      reg.SlotLabel(),
		Email:          reg.Email().Value(),
		FullName:       reg.Applicant().FullName(),
		Organization:   reg.Applicant().Organization,
		Members:        reg.Members(),
		Seats:          reg.Seats(),
		OccurredAt:     at,
	}
}

// Publisher never blocks the caller; false means the message was dropped.
type Publisher interface {
	Publish(msg Message) bool
}

type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

type Mail struct {
	To          string
	Subject     string
	Body        string
	Attachments []Attachment
}

type Mailer interface {
	Send(ctx context.Context, mail Mail) error
}

type TicketRenderer interface {
	Render(ctx context.Context, msg Message) (Attachment, error)
}

type ChatNotifier interface {
	Notify(ctx context.Context, text string) error
}

type Recorder interface {
	RecordNotificationSent(kind, step string)
	RecordNotificationFailure(kind, step string)
	RecordNotificationDropped(kind string)
}
