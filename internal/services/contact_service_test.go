package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/waibhq/waib/internal/models"
	"github.com/waibhq/waib/internal/repository/memory"
	"github.com/waibhq/waib/internal/services"
	"github.com/waibhq/waib/internal/session"
)

const operatorAddr = "ops@waib.com"

func newContact(t *testing.T, sender *recordSender) (*services.ContactService, *memory.ContactMessages) {
	t.Helper()
	repo := memory.NewContactMessages()
	return services.NewContactService(repo, sender, operatorAddr, testLogger()), repo
}

func TestContactValidationOrder(t *testing.T) {
	ctx := context.Background()
	svc, repo := newContact(t, &recordSender{})

	// empty message wins over empty name/email
	_, err := svc.Submit(ctx, session.Identity{}, "", "", "   ")
	requireValidation(t, err, session.FlashDanger, "Please write something to send a message.")

	_, err = svc.Submit(ctx, session.Identity{}, "", "bob@gmail.com", "hello")
	requireValidation(t, err, session.FlashDanger, "Please fill in all fields.")

	require.Empty(t, repo.Messages)
}

func TestContactSubmitAnonymous(t *testing.T) {
	ctx := context.Background()
	sender := &recordSender{}
	svc, repo := newContact(t, sender)

	res, err := svc.Submit(ctx, session.Identity{}, "  Bob  ", " bob@gmail.com ", " need a site ")
	require.NoError(t, err)
	require.NoError(t, res.RelayErr)
	require.Equal(t, "Bob", res.Message.Name)
	require.Equal(t, "bob@gmail.com", res.Message.Email)
	require.Equal(t, "need a site", res.Message.Message)
	require.Len(t, repo.Messages, 1)

	sent := sender.all()
	require.Len(t, sent, 1)
	require.Equal(t, operatorAddr, sent[0].To)
	require.Contains(t, sent[0].Body, "Bob <bob@gmail.com>")
}

func TestContactAuthenticatedOverridesFormIdentity(t *testing.T) {
	ctx := context.Background()
	svc, repo := newContact(t, &recordSender{})

	ident := session.Identity{User: &models.User{Username: "alice", Email: "alice@gmail.com"}}
	res, err := svc.Submit(ctx, ident, "Mallory", "mallory@evil.example", "hi there")
	require.NoError(t, err)
	require.Equal(t, "alice", res.Message.Name)
	require.Equal(t, "alice@gmail.com", res.Message.Email)

	require.Len(t, repo.Messages, 1)
	require.Equal(t, "alice", repo.Messages[0].Name)
}

func TestContactRelayFailureStillPersists(t *testing.T) {
	ctx := context.Background()
	svc, repo := newContact(t, &recordSender{err: errors.New("smtp unreachable")})

	res, err := svc.Submit(ctx, session.Identity{}, "Bob", "bob@gmail.com", "hello")
	require.NoError(t, err)
	require.Error(t, res.RelayErr)
	require.Len(t, repo.Messages, 1)
}
