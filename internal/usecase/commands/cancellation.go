package commands

import (
	"context"
	"log/slog"
	"strings"

	"event-registration/internal/domain/event"
	"event-registration/internal/domain/registration"
	"event-registration/internal/infra"
	"event-registration/internal/pkg/clock"
	"event-registration/internal/pkg/errs"
	"event-registration/internal/usecase/notify"
	"event-registration/internal/usecase/shared"
)

type CancelInput struct {
	ID     string
	Email  string
	Reason string
}

type CancellationCommands interface {
	// Cancel succeeds at most once per (id, email); later calls return ErrRegistrationNotFound.
	Cancel(ctx context.Context, in CancelInput) error
}

type cancellationCommandsImpl struct {
	uow       shared.UnitOfWork
	events    *event.Registry
	publisher notify.Publisher
	recorder  Recorder
	clock     clock.Clock
}

func NewCancellationCommands(
	uow shared.UnitOfWork,
	events *event.Registry,
	publisher notify.Publisher,
	recorder Recorder,
	clock clock.Clock,
) CancellationCommands {
	return &cancellationCommandsImpl{
		uow:       uow,
		events:    events,
		publisher: publisher,
		recorder:  recorder,
		clock:     clock,
	}
}

func (c *cancellationCommandsImpl) Cancel(ctx context.Context, in CancelInput) error {
	id := strings.ToUpper(strings.TrimSpace(in.ID))
	if id == "" {
		return errs.Mark(errs.New("registration id is required"), ErrValidation)
	}
	email, err := registration.NewEmail(in.Email)
	if err != nil {
		return errs.Mark(err, ErrValidation)
	}

	var reason *string
	if r := strings.TrimSpace(in.Reason); r != "" {
		reason = &r
	}

	var cancelled *registration.Registration
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reg, err := tx.Registrations().Cancel(ctx, id, email, c.clock.Now(), reason)
		if err != nil {
			return err
		}
		cancelled = reg
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.Info("cancellation rejected: no active registration", "registration_id", id)
			return ErrRegistrationNotFound
		}
		slog.Error("cancellation failed",
			"registration_id", id,
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 12))
		return errs.Mark(err, ErrStoreUnavailable)
	}

	c.recorder.RecordCancellation(string(cancelled.EventKind()))
	slog.Info("registration cancelled",
		"event", cancelled.EventKind(),
		"registration_id", cancelled.ID(),
		"seats", cancelled.Seats())

	if ev, err := c.events.Get(cancelled.EventKind()); err == nil {
		c.publisher.Publish(notify.NewCancellationMessage(ev, cancelled))
	} else {
		slog.Warn("cancellation notification skipped: event no longer configured", "event", cancelled.EventKind())
	}
	return nil
}
