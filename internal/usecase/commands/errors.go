package commands

import "event-registration/internal/pkg/errs"

var (
	ErrValidation           = errs.New("validation error")
	ErrDuplicateEmail       = errs.New("email already has an active registration")
	ErrRegistrationNotFound = errs.New("registration not found")
	ErrStoreUnavailable     = errs.New("record store unavailable")
	ErrIDExhausted          = errs.New("could not allocate a unique registration id")
	ErrNothingToUpdate      = errs.New("no fields to update")
)

// Recorder is satisfied by *metrics.Metrics.
type Recorder interface {
	RecordAdmission(event, outcome string)
	RecordCancellation(event string)
}
