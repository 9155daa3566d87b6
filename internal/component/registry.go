// internal/component/registry.go
//
// Component registry (cycle-free).
//
// Each page family lives under components/<name> and calls
// component.Register() in an init() function.  cmd/web blank-imports the
// packages and mounts every component’s Routes() at “/<Name()>”, so route
// patterns inside a component are relative to its name.
//
// Components receive their collaborators through Deps rather than package
// globals, so tests can mount one component against a fake Content.

package component

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/yanizio/babynames/internal/content"
	"github.com/yanizio/babynames/internal/head"
	"github.com/yanizio/babynames/internal/view"
)

// Content is the slice of the content API that page components use.
// *content.Client satisfies it.
type Content interface {
	Name(ctx context.Context, religion, slug string) (*content.Name, error)
	NamesByLetter(ctx context.Context, religion, letter string) ([]content.Name, error)
	Articles(ctx context.Context) ([]content.Article, error)
	Article(ctx context.Context, slug string) (*content.Article, error)
	Stories(ctx context.Context) ([]content.Story, error)
	Story(ctx context.Context, slug string) (*content.Story, error)
}

var _ Content = (*content.Client)(nil)

// Deps is handed to every component when its routes are built.
type Deps struct {
	Content  Content
	View     *view.Renderer
	SiteName string
	BaseURL  string
}

// Page starts a view.Page for r with the canonical link already set.
func (d Deps) Page(r *http.Request, data any) view.Page {
	hb := head.New(d.SiteName, d.BaseURL)
	hb.SetCanonical(r.URL.Path)
	return view.Page{Site: d.SiteName, Head: hb, Data: data}
}

// NotFound renders the shared 404 page.
func (d Deps) NotFound(w http.ResponseWriter, r *http.Request) {
	d.View.NotFound(w, r, d.Page(r, nil))
}

// Fail answers a content error: ErrNotFound is a 404, anything else is
// logged and rendered as a 502.
func (d Deps) Fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, content.ErrNotFound) {
		d.NotFound(w, r)
		return
	}
	zap.L().Error("content fetch failed",
		zap.String("path", r.URL.Path),
		zap.String("req_id", middleware.GetReqID(r.Context())),
		zap.Error(err))
	d.View.Error(w, d.Page(r, nil))
}

// Render writes page with status 200, logging template failures.
func (d Deps) Render(w http.ResponseWriter, r *http.Request, page string, p view.Page) {
	if err := d.View.Render(w, http.StatusOK, page, p); err != nil {
		zap.L().Error("render", zap.String("page", page), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// Component contract.
//
// Routes() should mount page endpoints only, e.g:
//
//	r := chi.NewRouter()
//	r.Get("/{slug}", h.article) // served as /articles/{slug}
//	return r
type Component interface {
	Name() string
	Routes(Deps) chi.Router
}

var (
	mu       sync.RWMutex
	registry = map[string]Component{}
)

// Register is invoked from component init() functions.
func Register(c Component) {
	mu.Lock()
	registry[c.Name()] = c
	mu.Unlock()
}

// All returns every registered component sorted by name, so mount order is
// stable across runs.
func All() []Component {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Component, 0, len(registry))
	for _, c := range registry {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}
