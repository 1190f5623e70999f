package registration

import "strings"

type Status string

const (
	StatusActive     Status = "active"
	StatusCancelled  Status = "cancelled"
	StatusWaitlisted Status = "waitlisted"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusCancelled, StatusWaitlisted:
		return true
	default:
		return false
	}
}

// NormalizeStatus reads legacy rows without a status as active.
func NormalizeStatus(raw string) Status {
	s := Status(strings.TrimSpace(raw))
	if s == "" {
		return StatusActive
	}
	return s
}

func ParseStatus(raw string) (Status, error) {
	s := Status(strings.TrimSpace(raw))
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
