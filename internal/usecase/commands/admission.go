package commands

import (
	"context"
	"errors"
	"log/slog"

	"event-registration/internal/domain/event"
	"event-registration/internal/domain/registration"
	"event-registration/internal/infra"
	"event-registration/internal/pkg/clock"
	"event-registration/internal/pkg/errs"
	"event-registration/internal/pkg/metrics"
	"event-registration/internal/usecase/notify"
	"event-registration/internal/usecase/shared"
)

const maxIDAttempts = 5

type Reason string

const ReasonCapacityExceeded Reason = "CapacityExceeded"

type AdmitInput struct {
	EventKind string
	SlotLabel string
	Email     string
	Applicant registration.Applicant
	Members   []registration.GroupMember
}

// AdmissionResult: ID is empty unless Accepted.
type AdmissionResult struct {
	Accepted bool
	ID       string
	Reason   Reason
	Seats    int
}

type AdmissionCommands interface {
	Admit(ctx context.Context, in AdmitInput) (*AdmissionResult, error)
}

type admissionCommandsImpl struct {
	uow       shared.UnitOfWork
	events    *event.Registry
	codes     registration.CodeGenerator
	publisher notify.Publisher
	recorder  Recorder
	clock     clock.Clock
}

func NewAdmissionCommands(
	uow shared.UnitOfWork,
	events *event.Registry,
	codes registration.CodeGenerator,
	publisher notify.Publisher,
	recorder Recorder,
	clock clock.Clock,
) AdmissionCommands {
	return &admissionCommandsImpl{
		uow:       uow,
		events:    events,
		codes:     codes,
		publisher: publisher,
		recorder:  recorder,
		clock:     clock,
	}
}

func (a *admissionCommandsImpl) Admit(ctx context.Context, in AdmitInput) (*AdmissionResult, error) {
	ev, app, err := a.buildApplication(in)
	if err != nil {
		return nil, err
	}

	capacity, err := ev.CapacityFor(app.SlotLabel())
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	var admitted *registration.Registration
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		admitted = nil
		if err := tx.Registrations().LockEvent(ctx, ev.Kind); err != nil {
			return err
		}

		exists, err := tx.Reads().ActiveEmailExists(ctx, ev.Kind, app.Email())
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicateEmail
		}

		occupancy, err := tx.Reads().Occupancy(ctx, ev.Kind, app.SlotLabel())
		if err != nil {
			return err
		}

		status := registration.StatusActive
		if occupancy+app.Seats() > capacity {
			status = registration.StatusWaitlisted
		}

		reg, err := a.insertWithFreshID(ctx, tx.Registrations(), app, status)
		if err != nil {
			return err
		}
		admitted = reg
		return nil
	})
	if err != nil {
		return nil, a.admissionError(ev, err)
	}

	if !admitted.IsActive() {
		a.recorder.RecordAdmission(string(ev.Kind), metrics.OutcomeWaitlisted)
		slog.Info("registration waitlisted",
			"event", ev.Kind,
			"slot", app.SlotLabel(),
			"registration_id", admitted.ID(),
			"seats", app.Seats())
		return &AdmissionResult{Accepted: false, Reason: ReasonCapacityExceeded, Seats: app.Seats()}, nil
	}

	a.recorder.RecordAdmission(string(ev.Kind), metrics.OutcomeAdmitted)
	slog.Info("registration admitted",
		"event", ev.Kind,
		"slot", app.SlotLabel(),
		"registration_id", admitted.ID(),
		"seats", app.Seats())

	a.publisher.Publish(notify.NewAdmissionMessage(ev, admitted))

	return &AdmissionResult{Accepted: true, ID: admitted.ID(), Seats: app.Seats()}, nil
}

func (a *admissionCommandsImpl) buildApplication(in AdmitInput) (event.Event, registration.Application, error) {
	ev, err := a.events.Lookup(in.EventKind)
	if err != nil {
		return event.Event{}, registration.Application{}, errs.Mark(err, ErrValidation)
	}

	email, err := registration.NewEmail(in.Email)
	if err != nil {
		return event.Event{}, registration.Application{}, errs.Mark(err, ErrValidation)
	}

	app, err := registration.NewApplication(ev, in.SlotLabel, email, in.Applicant, in.Members)
	if err != nil {
		return event.Event{}, registration.Application{}, errs.Mark(err, ErrValidation)
	}
	return ev, app, nil
}

// insertWithFreshID draws a new id whenever the store reports the previous one as taken.
func (a *admissionCommandsImpl) insertWithFreshID(
	ctx context.Context,
	repo shared.RegistrationRepository,
	app registration.Application,
	status registration.Status,
) (*registration.Registration, error) {
	now := a.clock.Now()
	for attempt := 1; attempt <= maxIDAttempts; attempt++ {
		id, err := a.codes.Generate(app.IDPrefix())
		if err != nil {
			return nil, errs.Wrap(err, "generate registration id")
		}

		reg := registration.NewRegistration(id, app, status, now)
		inserted, err := repo.Insert(ctx, reg)
		if err != nil {
			return nil, err
		}
		if inserted {
			return reg, nil
		}
		slog.Warn("registration id collision, regenerating", "id", id, "attempt", attempt)
	}
	return nil, ErrIDExhausted
}

func (a *admissionCommandsImpl) admissionError(ev event.Event, err error) error {
	switch {
	case errors.Is(err, ErrDuplicateEmail), infra.IsKind(err, infra.KindDuplicateKey):
		a.recorder.RecordAdmission(string(ev.Kind), metrics.OutcomeDuplicate)
		slog.Info("registration rejected: duplicate email", "event", ev.Kind)
		return ErrDuplicateEmail
	default:
		a.recorder.RecordAdmission(string(ev.Kind), metrics.OutcomeFailed)
		slog.Error("admission failed",
			"event", ev.Kind,
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 12))
		return errs.Mark(err, ErrStoreUnavailable)
	}
}
