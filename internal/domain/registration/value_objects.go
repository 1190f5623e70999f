package registration

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail          = errors.New("invalid email format")
	ErrInvalidStatus         = errors.New("invalid registration status")
	ErrApplicantNameRequired = errors.New("applicant family and given names are required")
	ErrMembersNotAllowed     = errors.New("event does not accept group members")
	ErrTooManyMembers        = errors.New("too many group members")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email is compared case-insensitively, so it is stored lowercased.
type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Applicant struct {
	FamilyName     string `json:"familyName"`
	GivenName      string `json:"givenName"`
	FamilyNameKana string `json:"familyNameKana"`
	GivenNameKana  string `json:"givenNameKana"`
	Phone          string `json:"phone"`
	Organization   string `json:"organization"`
}

func (a Applicant) normalized() Applicant {
	return Applicant{
		FamilyName:     strings.TrimSpace(a.FamilyName),
		GivenName:      strings.TrimSpace(a.GivenName),
		FamilyNameKana: strings.TrimSpace(a.FamilyNameKana),
		GivenNameKana:  strings.TrimSpace(a.GivenNameKana),
		Phone:          strings.TrimSpace(a.Phone),
		Organization:   strings.TrimSpace(a.Organization),
	}
}

func (a Applicant) FullName() string {
	return strings.TrimSpace(a.FamilyName + " " + a.GivenName)
}

type GroupMember struct {
	Name string `json:"name"`
	Kana string `json:"kana"`
}

// NamedMembers drops members whose name is blank; only named members take a seat.
func NamedMembers(members []GroupMember) []GroupMember {
	out := make([]GroupMember, 0, len(members))
	for _, m := range members {
		name := strings.TrimSpace(m.Name)
		if name == "" {
			continue
		}
		out = append(out, GroupMember{Name: name, Kana: strings.TrimSpace(m.Kana)})
	}
	return out
}

// ReconstructEmail skips validation; rows already in the store are taken as-is.
func ReconstructEmail(s string) Email {
	return Email{value: strings.ToLower(strings.TrimSpace(s))}
}
