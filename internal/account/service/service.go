package service

import (
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"
)

// Clock returns the current time. Nil means time.Now.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now().UTC()
	}
	return c().UTC()
}

// validEmail accepts a bare address with a dotted domain, the shape the
// registration form has always required.
func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}
	_, domain, ok := strings.Cut(email, "@")
	return ok && strings.Contains(strings.Trim(domain, "."), ".")
}

func passwordTooShort(password string) bool {
	return utf8.RuneCountInString(password) < MinPasswordLength
}
