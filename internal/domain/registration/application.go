package registration

import (
	"strings"

	"event-registration/internal/domain/event"
)

// Application is a validated submission that has not been admitted yet.
type Application struct {
	event     event.Event
	slotLabel string
	email     Email
	applicant Applicant
	members   []GroupMember
}

func NewApplication(
	ev event.Event,
	slotLabel string,
	email Email,
	applicant Applicant,
	members []GroupMember,
) (Application, error) {
	label, err := ev.ResolveSlot(slotLabel)
	if err != nil {
		return Application{}, err
	}

	applicant = applicant.normalized()
	if applicant.FamilyName == "" || applicant.GivenName == "" {
		return Application{}, ErrApplicantNameRequired
	}

	named := NamedMembers(members)
	if !ev.Group && len(named) > 0 {
		return Application{}, ErrMembersNotAllowed
	}
	if ev.Group && ev.MaxGroupMembers > 0 && len(named) > ev.MaxGroupMembers {
		return Application{}, ErrTooManyMembers
	}

	return Application{
		event:     ev,
		slotLabel: label,
		email:     email,
		applicant: applicant,
		members:   named,
	}, nil
}

// Seats is the representative plus every named member.
func (a Application) Seats() int {
	return 1 + len(a.members)
}

func (a Application) Event() event.Event     { return a.event }
func (a Application) EventKind() event.Kind  { return a.event.Kind }
func (a Application) SlotLabel() string      { return a.slotLabel }
func (a Application) Email() Email           { return a.email }
func (a Application) Applicant() Applicant   { return a.applicant }
func (a Application) Members() []GroupMember { return append([]GroupMember(nil), a.members...) }
func (a Application) IDPrefix() string       { return strings.ToUpper(a.event.IDPrefix) }
