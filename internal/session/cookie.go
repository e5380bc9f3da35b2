package session

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const cookieName = "waib_session"

// Manager maps between the session cookie and the session id. The cookie
// value is an HS256-signed token carrying the id, so a tampered cookie is
// rejected before the store is ever consulted.
type Manager struct {
	secret []byte
	secure bool
}

func NewManager(secret string, secure bool) *Manager {
	return &Manager{secret: []byte(secret), secure: secure}
}

// SID extracts and verifies the session id from the request cookie.
func (m *Manager) SID(r *http.Request) (string, bool) {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return "", false
	}
	tok, err := jwt.ParseWithClaims(c.Value, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !tok.Valid {
		return "", false
	}
	claims, ok := tok.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.ID == "" {
		return "", false
	}
	return claims.ID, true
}

// Issue creates a fresh session id and sets the signed cookie.
func (m *Manager) Issue(w http.ResponseWriter) (string, error) {
	sid := uuid.NewString()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:       sid,
		IssuedAt: jwt.NewNumericDate(time.Now()),
	})
	signed, err := tok.SignedString(m.secret)
	if err != nil {
		return "", err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(sessionTTL / time.Second),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return sid, nil
}
