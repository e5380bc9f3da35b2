// Package session implements the cookie-backed session layer: an opaque
// session id travels in a signed cookie, the session state itself (logged-in
// username, queued flash messages) lives in an external store.
package session

import (
	"context"

	"github.com/waibhq/waib/internal/models"
)

// Flash severity levels, rendered as-is by the views.
const (
	FlashSuccess = "success"
	FlashInfo    = "info"
	FlashWarning = "warning"
	FlashDanger  = "danger"
)

// Flash is a one-shot notice shown on the next rendered view.
type Flash struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Store is the external key/value backend for session state.
type Store interface {
	// SetUser marks the session as logged in.
	SetUser(ctx context.Context, sid, username string) error
	// User returns the logged-in username, or "" for anonymous sessions.
	User(ctx context.Context, sid string) (string, error)
	// ClearUser removes the identity key only; flashes survive logout.
	ClearUser(ctx context.Context, sid string) error
	// AddFlash queues a flash message.
	AddFlash(ctx context.Context, sid string, f Flash) error
	// Flashes drains and returns all queued flash messages.
	Flashes(ctx context.Context, sid string) ([]Flash, error)
}

// Identity is the per-request resolved user. A nil User means anonymous.
type Identity struct {
	User *models.User
}

func (id Identity) LoggedIn() bool { return id.User != nil }

type sidKey struct{}
type identityKey struct{}

func WithSID(ctx context.Context, sid string) context.Context {
	return context.WithValue(ctx, sidKey{}, sid)
}

func SIDFrom(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(sidKey{}).(string)
	return s, ok && s != ""
}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func IdentityFrom(ctx context.Context) Identity {
	if v, ok := ctx.Value(identityKey{}).(Identity); ok {
		return v
	}
	return Identity{}
}
