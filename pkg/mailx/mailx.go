// Package mailx sends transactional email. Delivery failures are classified as
// ErrTransient or ErrPermanent so callers can decide whether a retry makes sense.
package mailx

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

var (
	ErrTransient = errors.New("mailx: transient delivery failure")
	ErrPermanent = errors.New("mailx: permanent delivery failure")
)

// Message is a plain text email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer delivers messages.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Validate checks the recipient and rejects header injection in the subject.
func (m Message) Validate() error {
	if _, err := mail.ParseAddress(m.To); err != nil {
		return fmt.Errorf("%w: recipient %q: %v", ErrPermanent, m.To, err)
	}
	if strings.ContainsAny(m.Subject, "\r\n") {
		return fmt.Errorf("%w: subject contains line breaks", ErrPermanent)
	}
	return nil
}
