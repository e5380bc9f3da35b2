package web

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/waibhq/waib/internal/config"
	"github.com/waibhq/waib/internal/metrics"
	"github.com/waibhq/waib/internal/middleware"
	repo "github.com/waibhq/waib/internal/repository"
	"github.com/waibhq/waib/internal/session"
)

func NewRouter(cfg config.Config, log *slog.Logger, h *Handlers, mgr *session.Manager, store session.Store, users repo.Users) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover(h.ServerError), middleware.RateLimit(cfg.RateRPS), middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))
	r.Use(middleware.Session(mgr, store, users, log))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	r.Get("/", h.Home)
	r.Get("/about", h.About)
	r.Get("/faq", h.FAQ)
	r.Get("/templates", h.Templates)

	r.Get("/contact", h.ContactForm)
	r.Post("/contact", h.ContactSubmit)

	r.Get("/login", h.LoginForm)
	r.Post("/login", h.LoginSubmit)

	r.Get("/register", h.RegisterForm)
	r.Post("/register", h.RegisterSubmit)

	r.Get("/logout", h.Logout)

	r.NotFound(h.NotFound)

	return r
}
