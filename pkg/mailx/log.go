package mailx

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/gearbox/pkg/slogx"
)

// Log writes messages to the request logger instead of sending them. Use it
// in development when no SMTP relay is configured.
type Log struct{}

func (Log) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	slogx.FromContext(ctx).Info("mail not sent, logging instead",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("body", msg.Body),
	)
	return nil
}
