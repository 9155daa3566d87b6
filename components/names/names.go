// components/names/names.go
//
// Name pages: one detail page per name and one index page per letter.
//
//	GET /names/{religion}/{slug}
//	GET /names/{religion}/letter/{letter}
//
// The canonical middleware has already redirected anything fixable, so a
// slug that is still not canonical here is a 404, not a redirect.
package names

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/yanizio/babynames/internal/component"
	"github.com/yanizio/babynames/internal/content"
	"github.com/yanizio/babynames/internal/routing"
)

var _ component.Component = (*Comp)(nil)

// Comp implements component.Component.
type Comp struct{}

func (c *Comp) Name() string { return "names" }

func (c *Comp) Routes(d component.Deps) chi.Router {
	h := handler{d}
	r := chi.NewRouter()
	r.Get("/{religion}/letter/{letter}", h.letter)
	r.Get("/{religion}/{slug}", h.detail)
	return r
}

func init() { component.Register(&Comp{}) }

// LetterData feeds the letter template.
type LetterData struct {
	Religion string
	Letter   string
	Names    []content.Name
}

type handler struct{ d component.Deps }

func (h handler) detail(w http.ResponseWriter, r *http.Request) {
	religion := chi.URLParam(r, "religion")
	slug := chi.URLParam(r, "slug")
	if !routing.IsCanonical(religion) || !routing.IsCanonical(slug) {
		h.d.NotFound(w, r)
		return
	}

	n, err := h.d.Content.Name(r.Context(), religion, slug)
	if err != nil {
		h.d.Fail(w, r, err)
		return
	}

	p := h.d.Page(r, n)
	p.Head.SetTitle(n.Name + " meaning")
	if n.Meaning != "" {
		p.Head.Meta(`<meta name="description" content="` + template.HTMLEscapeString(n.Name+": "+n.Meaning) + `">`)
	}
	h.d.Render(w, r, "name", p)
}

func (h handler) letter(w http.ResponseWriter, r *http.Request) {
	religion := chi.URLParam(r, "religion")
	letter := chi.URLParam(r, "letter")
	if !routing.IsCanonical(religion) || len(letter) != 1 || letter[0] < 'a' || letter[0] > 'z' {
		h.d.NotFound(w, r)
		return
	}

	list, err := h.d.Content.NamesByLetter(r.Context(), religion, letter)
	if err != nil {
		h.d.Fail(w, r, err)
		return
	}

	p := h.d.Page(r, LetterData{Religion: religion, Letter: letter, Names: list})
	p.Head.SetTitle(titleCase(religion) + " names starting with " + strings.ToUpper(letter))
	h.d.Render(w, r, "letter", p)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
