package commands

import (
	"context"
	"log/slog"
	"strings"

	"event-registration/internal/domain/registration"
	"event-registration/internal/infra"
	"event-registration/internal/pkg/clock"
	"event-registration/internal/pkg/errs"
	"event-registration/internal/pkg/patch"
	"event-registration/internal/usecase/shared"
)

// FieldPatch mirrors the admin edit form; nil or blank fields are ignored.
type FieldPatch struct {
	ContactEmail   *string
	FamilyName     *string
	GivenName      *string
	FamilyNameKana *string
	GivenNameKana  *string
	Phone          *string
	Organization   *string
}

type AdminCommands interface {
	// UpdateFields corrects applicant fields. Status is never changed here.
	UpdateFields(ctx context.Context, id string, p FieldPatch) error
}

type adminCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAdminCommands(uow shared.UnitOfWork, clock clock.Clock) AdminCommands {
	return &adminCommandsImpl{
		uow:   uow,
		clock: clock,
	}
}

func (a *adminCommandsImpl) UpdateFields(ctx context.Context, id string, p FieldPatch) error {
	edit, err := toEdit(p)
	if err != nil {
		return err
	}
	id = strings.ToUpper(strings.TrimSpace(id))

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reg, err := tx.Registrations().GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := reg.ApplyEdit(edit, a.clock.Now()); err != nil {
			return errs.Mark(err, ErrValidation)
		}
		return tx.Registrations().Update(ctx, reg)
	})
	switch {
	case err == nil:
		slog.Info("registration fields updated", "registration_id", id)
		return nil
	case errs.Is(err, ErrValidation):
		return err
	case infra.IsKind(err, infra.KindNotFound):
		return ErrRegistrationNotFound
	case infra.IsKind(err, infra.KindDuplicateKey):
		return ErrDuplicateEmail
	default:
		slog.Error("registration update failed",
			"registration_id", id,
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 12))
		return errs.Mark(err, ErrStoreUnavailable)
	}
}

func toEdit(p FieldPatch) (registration.Edit, error) {
	edit := registration.Edit{
		FamilyName:     patch.Trimmed(p.FamilyName),
		GivenName:      patch.Trimmed(p.GivenName),
		FamilyNameKana: patch.Trimmed(p.FamilyNameKana),
		GivenNameKana:  patch.Trimmed(p.GivenNameKana),
		Phone:          patch.Trimmed(p.Phone),
		Organization:   patch.Trimmed(p.Organization),
	}
	if raw := patch.Trimmed(p.ContactEmail); raw != nil {
		email, err := registration.NewEmail(*raw)
		if err != nil {
			return registration.Edit{}, errs.Mark(err, ErrValidation)
		}
		edit.Email = &email
	}
	if edit.IsEmpty() {
		return registration.Edit{}, errs.Mark(ErrNothingToUpdate, ErrValidation)
	}
	return edit, nil
}
