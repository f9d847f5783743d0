// Package models defines the data model persisted by TaskFlow.
// JSON field names are part of the on-disk contract and must not change:
// existing installations carry data written with exactly these keys.
package models

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode"
)

// DateLayout is the lexical format used for birthdate and memberSince.
// It is distinct from the RFC 3339 form used for todo due dates.
const DateLayout = "02.01.2006"

// Account is a registered user. Email is the primary key across the
// dataset; session state and todos reference accounts by email value.
type Account struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Username  string `json:"username"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Birthdate string `json:"birthdate"`

	// MemberSince and MemberID are assigned once at creation and are
	// immutable for the lifetime of the account. Update paths must
	// preserve the stored values regardless of caller input.
	MemberSince string `json:"memberSince,omitempty"`
	MemberID    int    `json:"memberID,omitempty"`
}

var (
	emailRe     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	birthdateRe = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)
)

// FormatDate renders t in the DD.MM.YYYY form used for account dates.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a DD.MM.YYYY string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ValidateRegistration checks the rules enforced at account creation.
// Updates are deliberately not re-validated.
func (a Account) ValidateRegistration() error {
	if !emailRe.MatchString(a.Email) {
		return errors.New("email address is not valid")
	}
	if !isPasswordValid(a.Password) {
		return errors.New("password must be at least 6 characters and contain an upper-case letter, a digit and one of !@#$%^&*")
	}
	if len(a.Username) < 3 {
		return errors.New("username must be at least 3 characters")
	}
	if len(a.Firstname) < 2 || len(a.Lastname) < 2 {
		return errors.New("first and last name must be at least 2 characters")
	}
	if !birthdateRe.MatchString(a.Birthdate) {
		return errors.New("birthdate must be in DD.MM.YYYY format")
	}
	return nil
}

// isPasswordValid applies the registration password policy: minimum
// six characters drawn from letters, digits and !@#$%^&*, with at
// least one upper-case letter, one digit and one special character.
func isPasswordValid(p string) bool {
	if len(p) < 6 {
		return false
	}
	var upper, digit, special bool
	for _, r := range p {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune("!@#$%^&*", r):
			special = true
		case unicode.IsLower(r):
		default:
			return false
		}
	}
	return upper && digit && special
}
