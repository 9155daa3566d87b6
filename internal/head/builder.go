// internal/head/builder.go
//
// The Builder collects what a page puts inside its <head> element: the
// <title> and the canonical <link>.  It is scoped to a single request.
// Page handlers fill it, then the base layout emits it.
//
// Features
// --------
//   - SetTitle     – single <title>, suffixed with the site name.
//   - Canonical    – absolute canonical URL built from the site base URL
//     and the request path.  Crawlers that reach a page through an alias or
//     a query-string variant learn the one URL to index.
//   - Meta         – arbitrary pre-escaped tags with deduplication.
package head

import (
	"html/template"
	"strings"
)

// Builder is used by one goroutine per request; no locking.
type Builder struct {
	site      string
	baseURL   string
	title     string
	canonical string
	metas     []string
	seen      map[string]struct{}
}

// New returns a Builder for the named site rooted at baseURL.
func New(siteName, baseURL string) *Builder {
	return &Builder{
		site:    siteName,
		baseURL: strings.TrimRight(baseURL, "/"),
		seen:    make(map[string]struct{}),
	}
}

// SetTitle overrides the page title.  The last caller wins.
func (b *Builder) SetTitle(t string) { b.title = t }

// SetCanonical records the canonical path (query strings never belong in
// it).
func (b *Builder) SetCanonical(path string) {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	b.canonical = b.baseURL + path
}

// Meta adds a pre-escaped tag once.
func (b *Builder) Meta(tag string) {
	if _, dup := b.seen[tag]; dup {
		return
	}
	b.seen[tag] = struct{}{}
	b.metas = append(b.metas, tag)
}

// Title returns a fully formed <title> tag.
func (b *Builder) Title() template.HTML {
	t := b.site
	if b.title != "" && b.site != "" {
		t = b.title + " | " + b.site
	} else if b.title != "" {
		t = b.title
	}
	if t == "" {
		return ""
	}
	return template.HTML("<title>" + template.HTMLEscapeString(t) + "</title>")
}

// CanonicalLink returns <link rel="canonical"> or an empty string.
func (b *Builder) CanonicalLink() template.HTML {
	if b.canonical == "" {
		return ""
	}
	return template.HTML(`<link rel="canonical" href="` +
		template.HTMLEscapeString(b.canonical) + `">`)
}

// Metas concatenates the collected tags.
func (b *Builder) Metas() template.HTML { return template.HTML(strings.Join(b.metas, "")) }
