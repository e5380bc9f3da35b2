package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/waibhq/waib/internal/models"
	"github.com/waibhq/waib/internal/services"
	"github.com/waibhq/waib/internal/session"
)

type Handlers struct {
	catalog  *services.CatalogService
	users    *services.UserService
	contact  *services.ContactService
	sessions session.Store
	rn       *Renderer
	log      *slog.Logger
}

func NewHandlers(catalog *services.CatalogService, users *services.UserService, contact *services.ContactService, sessions session.Store, rn *Renderer, log *slog.Logger) *Handlers {
	return &Handlers{catalog: catalog, users: users, contact: contact, sessions: sessions, rn: rn, log: log}
}

func (h *Handlers) flash(r *http.Request, level, msg string) {
	sid, ok := session.SIDFrom(r.Context())
	if !ok {
		return
	}
	if err := h.sessions.AddFlash(r.Context(), sid, session.Flash{Level: level, Message: msg}); err != nil {
		h.log.Warn("flash add", "err", err)
	}
}

// flashError maps a service error onto a flash: validation errors keep their
// level and message, anything else becomes a generic danger notice.
func (h *Handlers) flashError(r *http.Request, err error) {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		h.flash(r, verr.Level, verr.Message)
		return
	}
	h.log.Error("handler", "path", r.URL.Path, "err", err)
	h.flash(r, session.FlashDanger, "Something went wrong. Please try again.")
}

func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	showcase, err := h.catalog.Showcase(r.Context())
	if err != nil {
		h.log.Error("showcase", "err", err)
	}
	h.rn.Render(w, r, http.StatusOK, "index.html", PageData{Showcase: showcase})
}

func (h *Handlers) About(w http.ResponseWriter, r *http.Request) {
	h.rn.Render(w, r, http.StatusOK, "about.html", PageData{})
}

func (h *Handlers) FAQ(w http.ResponseWriter, r *http.Request) {
	h.rn.Render(w, r, http.StatusOK, "faq.html", PageData{})
}

func (h *Handlers) Templates(w http.ResponseWriter, r *http.Request) {
	band := models.ParsePriceBand(r.URL.Query().Get("price"))
	items, err := h.catalog.List(r.Context(), band)
	if err != nil {
		h.log.Error("catalog list", "err", err)
	}
	h.rn.Render(w, r, http.StatusOK, "templates.html", PageData{Items: items, ActivePrice: band.String()})
}

func (h *Handlers) ContactForm(w http.ResponseWriter, r *http.Request) {
	h.rn.Render(w, r, http.StatusOK, "contact.html", PageData{})
}

func (h *Handlers) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	ident := session.IdentityFrom(r.Context())
	res, err := h.contact.Submit(r.Context(), ident,
		r.PostFormValue("name"), r.PostFormValue("email"), r.PostFormValue("message"))
	if err != nil {
		h.flashError(r, err)
		http.Redirect(w, r, "/contact", http.StatusSeeOther)
		return
	}
	if res.RelayErr != nil {
		h.flash(r, session.FlashDanger, "Failed to send info email: "+res.RelayErr.Error())
	}
	h.flash(r, session.FlashSuccess, "Thanks! Your message has been received. We'll get back to you soon.")
	http.Redirect(w, r, "/contact", http.StatusSeeOther)
}

func (h *Handlers) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.rn.Render(w, r, http.StatusOK, "login.html", PageData{})
}

func (h *Handlers) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	u, err := h.users.Login(r.Context(), r.PostFormValue("username"), r.PostFormValue("password"))
	if err != nil {
		h.flashError(r, err)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if sid, ok := session.SIDFrom(r.Context()); ok {
		if err := h.sessions.SetUser(r.Context(), sid, u.Username); err != nil {
			h.flashError(r, err)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
	}
	h.flash(r, session.FlashSuccess, "Welcome back!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handlers) RegisterForm(w http.ResponseWriter, r *http.Request) {
	h.rn.Render(w, r, http.StatusOK, "register.html", PageData{})
}

func (h *Handlers) RegisterSubmit(w http.ResponseWriter, r *http.Request) {
	_, err := h.users.Register(r.Context(),
		r.PostFormValue("username"), r.PostFormValue("email"),
		r.PostFormValue("password"), r.PostFormValue("confirm"))
	if err != nil {
		h.flashError(r, err)
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}
	h.flash(r, session.FlashSuccess, "Registration successful. You can now log in.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if sid, ok := session.SIDFrom(r.Context()); ok {
		if err := h.sessions.ClearUser(r.Context(), sid); err != nil {
			h.log.Warn("logout", "err", err)
		}
	}
	h.flash(r, session.FlashInfo, "Logged out.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.rn.Render(w, r, http.StatusNotFound, "404.html", PageData{})
}

// ServerError is the recover target: rendered on panic only.
func (h *Handlers) ServerError(w http.ResponseWriter, r *http.Request) {
	h.rn.Render(w, r, http.StatusInternalServerError, "500.html", PageData{})
}
