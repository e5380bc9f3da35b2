package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/waibhq/waib/internal/mailer"
	"github.com/waibhq/waib/internal/metrics"
	"github.com/waibhq/waib/internal/models"
	repo "github.com/waibhq/waib/internal/repository"
	"github.com/waibhq/waib/internal/session"
)

type ContactService struct {
	messages     repo.ContactMessages
	mailer       mailer.Sender
	operatorAddr string
	log          *slog.Logger
}

func NewContactService(messages repo.ContactMessages, m mailer.Sender, operatorAddr string, log *slog.Logger) *ContactService {
	return &ContactService{messages: messages, mailer: m, operatorAddr: operatorAddr, log: log}
}

// SubmitResult carries the persisted message plus the outcome of the
// best-effort relay. A non-nil RelayErr means the relay failed but the
// message was stored anyway.
type SubmitResult struct {
	Message  models.ContactMessage
	RelayErr error
}

// Submit validates and persists a contact message. An authenticated identity
// overrides any client-supplied name and email.
func (s *ContactService) Submit(ctx context.Context, ident session.Identity, name, email, message string) (SubmitResult, error) {
	if ident.LoggedIn() {
		name = ident.User.Username
		email = ident.User.Email
	} else {
		name = strings.TrimSpace(name)
		email = strings.TrimSpace(email)
	}
	message = strings.TrimSpace(message)

	if message == "" {
		return SubmitResult{}, invalid("Please write something to send a message.")
	}
	if name == "" || email == "" {
		return SubmitResult{}, invalid("Please fill in all fields.")
	}

	m, err := s.messages.Create(ctx, models.ContactMessage{Name: name, Email: email, Message: message})
	if err != nil {
		return SubmitResult{}, err
	}
	metrics.ContactMessagesTotal.Inc()

	res := SubmitResult{Message: m}
	if err := s.mailer.Send(ctx, s.operatorAddr, "New Contact Message", relayBody(name, email, message)); err != nil {
		metrics.MailFailuresTotal.WithLabelValues("contact").Inc()
		s.log.Warn("contact relay failed", "err", err)
		res.RelayErr = err
	}
	return res, nil
}

func relayBody(name, email, message string) string {
	return fmt.Sprintf("From: %s <%s>\n\n%s", name, email, message)
}
