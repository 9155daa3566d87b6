// components/articles/articles.go
//
// Article index and detail pages.
//
//	GET /articles
//	GET /articles/{slug}
package articles

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yanizio/babynames/internal/component"
	"github.com/yanizio/babynames/internal/routing"
)

var _ component.Component = (*Comp)(nil)

type Comp struct{}

func (c *Comp) Name() string { return "articles" }

func (c *Comp) Routes(d component.Deps) chi.Router {
	r := chi.NewRouter()

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		list, err := d.Content.Articles(r.Context())
		if err != nil {
			d.Fail(w, r, err)
			return
		}
		p := d.Page(r, list)
		p.Head.SetTitle("Articles")
		d.Render(w, r, "articles", p)
	})

	r.Get("/{slug}", func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if !routing.IsCanonical(slug) {
			d.NotFound(w, r)
			return
		}
		a, err := d.Content.Article(r.Context(), slug)
		if err != nil {
			d.Fail(w, r, err)
			return
		}
		p := d.Page(r, a)
		p.Head.SetTitle(a.Title)
		d.Render(w, r, "article", p)
	})

	return r
}

func init() { component.Register(&Comp{}) }
