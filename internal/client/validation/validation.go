// Package validation holds the pure field validators used by the login and
// register screens before they dispatch anything into the session store.
//
// Validators never panic and never touch state: each returns nil or one of
// the sentinel errors below, whose text is what the screen shows under the
// field.
package validation

import (
	"errors"
	"strings"
	"unicode"
)

var (
	ErrEmptyEmail         = errors.New("Please enter your email")
	ErrInvalidEmailFormat = errors.New("Please enter a valid email")
	ErrEmptyPassword      = errors.New("Enter your password")
	ErrEmptyFirstName     = errors.New("Please enter your first name")
	ErrEmptyLastName      = errors.New("Enter your last name")
)

// ValidateEmail reports ErrEmptyEmail for blank input and
// ErrInvalidEmailFormat unless the trimmed value looks like local@domain.tld.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmptyEmail
	}
	if !isEmail(email) {
		return ErrInvalidEmailFormat
	}
	return nil
}

func ValidatePassword(password string) error {
	if strings.TrimSpace(password) == "" {
		return ErrEmptyPassword
	}
	return nil
}

func ValidateFirstName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyFirstName
	}
	return nil
}

func ValidateLastName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyLastName
	}
	return nil
}

// isEmail accepts exactly one '@', a non-empty local part and a dotted
// domain whose labels are all non-empty. Whitespace anywhere is rejected.
func isEmail(s string) bool {
	if strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return false
	}
	local, domain, ok := strings.Cut(s, "@")
	if !ok || local == "" || strings.Contains(domain, "@") {
		return false
	}
	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return false
	}
	for _, l := range labels {
		if l == "" {
			return false
		}
	}
	return true
}
