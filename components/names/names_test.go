package names

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yanizio/babynames/internal/component"
	"github.com/yanizio/babynames/internal/content"
	"github.com/yanizio/babynames/internal/view"
)

type fakeContent struct {
	names map[string]*content.Name
	err   error
	calls int
}

func (f *fakeContent) Name(_ context.Context, religion, slug string) (*content.Name, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	n, ok := f.names[religion+"/"+slug]
	if !ok {
		return nil, content.ErrNotFound
	}
	return n, nil
}

func (f *fakeContent) NamesByLetter(_ context.Context, religion, letter string) ([]content.Name, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	var out []content.Name
	for _, n := range f.names {
		if n.Religion == religion && n.Slug[:1] == letter {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (f *fakeContent) Articles(context.Context) ([]content.Article, error)        { return nil, nil }
func (f *fakeContent) Article(context.Context, string) (*content.Article, error)  { return nil, content.ErrNotFound }
func (f *fakeContent) Stories(context.Context) ([]content.Story, error)            { return nil, nil }
func (f *fakeContent) Story(context.Context, string) (*content.Story, error)      { return nil, content.ErrNotFound }

func newRouter(t *testing.T, fc *fakeContent) http.Handler {
	t.Helper()
	v, err := view.New()
	require.NoError(t, err)
	d := component.Deps{Content: fc, View: v, SiteName: "Little Names", BaseURL: "https://names.example"}

	r := chi.NewRouter()
	r.NotFound(d.NotFound)
	c := &Comp{}
	r.Mount("/"+c.Name(), c.Routes(d))
	return r
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr
}

func sample() *fakeContent {
	return &fakeContent{names: map[string]*content.Name{
		"islamic/ali":   {Name: "Ali", Slug: "ali", Religion: "islamic", Meaning: "Exalted", Gender: "boy"},
		"islamic/amina": {Name: "Amina", Slug: "amina", Religion: "islamic", Meaning: "Trustworthy", Gender: "girl"},
		"islamic/zara":  {Name: "Zara", Slug: "zara", Religion: "islamic", Meaning: "Princess", Gender: "girl"},
	}}
}

func TestDetail(t *testing.T) {
	h := newRouter(t, sample())

	rr := get(h, "/names/islamic/ali")
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "<title>Ali meaning | Little Names</title>")
	assert.Contains(t, body, `<link rel="canonical" href="https://names.example/names/islamic/ali">`)
	assert.Contains(t, body, `<meta name="description" content="Ali: Exalted">`)
	assert.Contains(t, body, "Exalted")
}

func TestDetail_NotFound(t *testing.T) {
	fc := sample()
	h := newRouter(t, fc)

	rr := get(h, "/names/islamic/nobody")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "Page not found")
}

func TestDetail_NonCanonicalSlugSkipsAPI(t *testing.T) {
	fc := sample()
	h := newRouter(t, fc)

	for _, p := range []string{"/names/islamic/Ali", "/names/islamic/a--b", "/names/islamic/-ali"} {
		rr := get(h, p)
		assert.Equal(t, http.StatusNotFound, rr.Code, p)
	}
	assert.Zero(t, fc.calls)
}

func TestDetail_UpstreamError(t *testing.T) {
	fc := sample()
	fc.err = errors.New("connection refused")
	h := newRouter(t, fc)

	rr := get(h, "/names/islamic/ali")
	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestLetter(t *testing.T) {
	h := newRouter(t, sample())

	rr := get(h, "/names/islamic/letter/a")
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "<title>Islamic names starting with A | Little Names</title>")
	assert.Contains(t, body, `href="/names/islamic/ali"`)
	assert.Contains(t, body, `href="/names/islamic/amina"`)
	assert.NotContains(t, body, `href="/names/islamic/zara"`)
}

func TestLetter_Invalid(t *testing.T) {
	fc := sample()
	h := newRouter(t, fc)

	for _, p := range []string{"/names/islamic/letter/ab", "/names/islamic/letter/A", "/names/islamic/letter/1"} {
		rr := get(h, p)
		assert.Equal(t, http.StatusNotFound, rr.Code, p)
	}
	assert.Zero(t, fc.calls)
}
