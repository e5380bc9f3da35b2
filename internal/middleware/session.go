package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	repo "github.com/waibhq/waib/internal/repository"
	"github.com/waibhq/waib/internal/session"
)

// Session resolves the per-request identity once and places the session id
// and the resolved Identity in the context. A missing or tampered cookie
// yields a fresh anonymous session; a session pointing at a user that no
// longer exists resolves to anonymous as well.
func Session(mgr *session.Manager, store session.Store, users repo.Users, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sid, ok := mgr.SID(r)
			if !ok {
				var err error
				sid, err = mgr.Issue(w)
				if err != nil {
					log.Error("session issue", "err", err)
					next.ServeHTTP(w, r)
					return
				}
			}

			ctx := session.WithSID(r.Context(), sid)

			ident := session.Identity{}
			username, err := store.User(ctx, sid)
			if err != nil {
				log.Warn("session lookup", "err", err)
			}
			if username != "" {
				u, err := users.GetByUsername(ctx, username)
				switch {
				case err == nil:
					ident.User = &u
				case errors.Is(err, repo.ErrNotFound):
					// stale session, treat as anonymous
				default:
					log.Warn("identity lookup", "err", err)
				}
			}

			ctx = session.WithIdentity(ctx, ident)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
