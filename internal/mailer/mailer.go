// Package mailer is the outbound notification sender. Delivery is always
// best-effort from the caller's point of view: errors are returned, never
// panicked, and call sites decide whether to surface or swallow them.
package mailer

import (
	"context"
	"fmt"
	"log/slog"

	mail "github.com/wneessen/go-mail"
)

type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

type smtpSender struct {
	client *mail.Client
	from   string
}

// NewSMTPSender builds a STARTTLS sender against the configured relay.
func NewSMTPSender(host string, port int, username, password, from string) (Sender, error) {
	client, err := mail.NewClient(host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(username),
		mail.WithPassword(password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return nil, err
	}
	return &smtpSender{client: client, from: from}, nil
}

func (s *smtpSender) Send(ctx context.Context, to, subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("mail to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)
	return s.client.DialAndSendWithContext(ctx, msg)
}

type nopSender struct {
	log *slog.Logger
}

// NewNopSender logs instead of sending. Used when SMTP credentials are not
// configured so a dev instance boots without a relay.
func NewNopSender(log *slog.Logger) Sender {
	return &nopSender{log: log}
}

func (s *nopSender) Send(_ context.Context, to, subject, _ string) error {
	s.log.Debug("mail sending disabled", "to", to, "subject", subject)
	return nil
}
