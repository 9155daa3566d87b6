// internal/view/render.go
//
// Central view engine: embedded templates, func-map injection, and one
// parsed *template.Template* per page.
//
// Public helpers
// --------------
//   - Render    – write a page with a status code.
//   - NotFound  – the shared 404 page.
//   - Error     – the shared upstream-failure page (502).
//
// Layout
// ------
// templates/layout.html defines "layout", which calls {{ template "content" }}.
// Every other file defines "content" for one page, so each page is parsed
// into its own clone of the layout.  Pages are parsed once at startup;
// a parse error is a boot failure, never a request-time surprise.
//
// Style
// -----
// • Oxford commas, two spaces after periods.

package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"go.uber.org/zap"

	"github.com/yanizio/babynames/internal/head"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page is the value every template receives.
type Page struct {
	Site string
	Head *head.Builder
	Data any
}

// Renderer holds the parsed page set.  Safe for concurrent use.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses every page template against the shared layout.
func New() (*Renderer, error) {
	layout, err := template.New("layout").Funcs(funcMap()).
		ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("view: parse layout: %w", err)
	}

	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(files))}
	for _, f := range files {
		name := strings.TrimSuffix(path.Base(f), ".html")
		if name == "layout" {
			continue
		}
		t, err := template.Must(layout.Clone()).ParseFS(templateFS, f)
		if err != nil {
			return nil, fmt.Errorf("view: parse %s: %w", f, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render executes page into a buffer first so a template error never sends
// a half-written 200.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, p Page) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("view: unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", p); err != nil {
		return fmt.Errorf("view: render %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// NotFound renders the 404 page, falling back to plain text.
func (r *Renderer) NotFound(w http.ResponseWriter, req *http.Request, p Page) {
	p.Head.SetTitle("Page not found")
	if err := r.Render(w, http.StatusNotFound, "notfound", p); err != nil {
		zap.L().Error("render 404", zap.Error(err))
		http.NotFound(w, req)
	}
}

// Error renders the 502 page used when the content API fails.
func (r *Renderer) Error(w http.ResponseWriter, p Page) {
	p.Head.SetTitle("Temporarily unavailable")
	if err := r.Render(w, http.StatusBadGateway, "error", p); err != nil {
		zap.L().Error("render 502", zap.Error(err))
		http.Error(w, "upstream error", http.StatusBadGateway)
	}
}
