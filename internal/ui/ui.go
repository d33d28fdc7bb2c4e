// Package ui renders the embedded HTML templates. Pages are parsed against
// the shared base layout; partials render standalone for HTMX swaps.
package ui

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/alfieapp/quarterly/internal/config"
	"github.com/alfieapp/quarterly/internal/ctxkeys"
	"github.com/alfieapp/quarterly/internal/model"
)

//go:embed templates/*.html templates/partials/*.html
var templatesFS embed.FS

var funcs = template.FuncMap{
	"money":    Money,
	"percent":  Percent,
	"date":     func(t time.Time) string { return t.Format("Jan 2, 2006") },
	"dateval":  func(t time.Time) string { return t.Format("2006-01-02") },
	"outcomes": func() []string { return model.Outcomes },
}

var (
	pages    = map[string]*template.Template{}
	partials *template.Template
)

func init() {
	entries, err := templatesFS.ReadDir("templates")
	if err != nil {
		panic(fmt.Sprintf("ui: read templates: %v", err))
	}

	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == "base.html" {
			continue
		}
		name := entry.Name()
		tmpl := template.New(name).Funcs(funcs)
		tmpl = template.Must(tmpl.ParseFS(templatesFS,
			"templates/base.html",
			"templates/partials/*.html",
			"templates/"+name,
		))
		pages[name] = tmpl
	}

	partials = template.Must(template.New("partials").Funcs(funcs).
		ParseFS(templatesFS, "templates/partials/*.html"))
}

// PageData wraps per-page data with the request-scoped values every
// template needs.
type PageData struct {
	Data      any
	User      *model.User
	Cfg       *config.Config
	CSRFToken string
	Path      string
}

// Render executes a full page (base layout plus the named page template).
func Render(w http.ResponseWriter, r *http.Request, page string, data any) {
	tmpl, ok := pages[page]
	if !ok {
		slog.Error("unknown page template", "page", page)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	pd := PageData{
		Data:      data,
		User:      ctxkeys.User(r.Context()),
		Cfg:       ctxkeys.Config(r.Context()),
		CSRFToken: ctxkeys.CSRFToken(r.Context()),
		Path:      ctxkeys.URLPath(r.Context()),
	}

	// Buffer so a template error never produces a half-written page
	var buf bytes.Buffer
	err := tmpl.ExecuteTemplate(&buf, "base.html", pd)
	if err != nil {
		slog.Error("failed to render page", "page", page, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// RenderPartial executes a named partial template for an HTMX swap.
func RenderPartial(w http.ResponseWriter, r *http.Request, name string, data any) {
	pd := PageData{
		Data:      data,
		User:      ctxkeys.User(r.Context()),
		Cfg:       ctxkeys.Config(r.Context()),
		CSRFToken: ctxkeys.CSRFToken(r.Context()),
		Path:      ctxkeys.URLPath(r.Context()),
	}

	var buf bytes.Buffer
	err := partials.ExecuteTemplate(&buf, name, pd)
	if err != nil {
		slog.Error("failed to render partial", "partial", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
