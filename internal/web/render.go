package web

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/waibhq/waib/internal/models"
	"github.com/waibhq/waib/internal/session"
)

//go:embed templates/*.html
var viewsFS embed.FS

// PageData is the bag handed to every view. User and Flashes are filled in
// by Render from the request context.
type PageData struct {
	User        *models.User
	Flashes     []session.Flash
	Showcase    []models.Template
	Items       []models.Template
	ActivePrice string
}

type Renderer struct {
	tmpl     *template.Template
	sessions session.Store
	log      *slog.Logger
}

func NewRenderer(sessions session.Store, log *slog.Logger) (*Renderer, error) {
	tmpl, err := template.ParseFS(viewsFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl, sessions: sessions, log: log}, nil
}

// Render executes the named view. Queued flash messages are drained here,
// so they show exactly once.
func (rn *Renderer) Render(w http.ResponseWriter, r *http.Request, status int, view string, data PageData) {
	ctx := r.Context()
	data.User = session.IdentityFrom(ctx).User
	if sid, ok := session.SIDFrom(ctx); ok {
		flashes, err := rn.sessions.Flashes(ctx, sid)
		if err != nil {
			rn.log.Warn("flash drain", "err", err)
		}
		data.Flashes = flashes
	}

	var buf bytes.Buffer
	if err := rn.tmpl.ExecuteTemplate(&buf, view, data); err != nil {
		rn.log.Error("render", "view", view, "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
