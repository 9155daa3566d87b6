// components/stories/stories.go
//
// Story index and detail pages.
//
//	GET /stories
//	GET /stories/{slug}
package stories

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yanizio/babynames/internal/component"
	"github.com/yanizio/babynames/internal/routing"
)

var _ component.Component = (*Comp)(nil)

type Comp struct{}

func (c *Comp) Name() string { return "stories" }

func (c *Comp) Routes(d component.Deps) chi.Router {
	r := chi.NewRouter()

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		list, err := d.Content.Stories(r.Context())
		if err != nil {
			d.Fail(w, r, err)
			return
		}
		p := d.Page(r, list)
		p.Head.SetTitle("Stories")
		d.Render(w, r, "stories", p)
	})

	r.Get("/{slug}", func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if !routing.IsCanonical(slug) {
			d.NotFound(w, r)
			return
		}
		s, err := d.Content.Story(r.Context(), slug)
		if err != nil {
			d.Fail(w, r, err)
			return
		}
		p := d.Page(r, s)
		p.Head.SetTitle(s.Title)
		d.Render(w, r, "story", p)
	})

	return r
}

func init() { component.Register(&Comp{}) }
