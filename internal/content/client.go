// internal/content/client.go
//
// Client for the remote content API (names, articles, stories).
//
/*
Context
--------
Every page on the site is a thin render over one API call.  The client:

  1. Normalises the configured base URL once (purell).
  2. Sends requests through go-retryablehttp, which retries connection
     errors and 5xx responses with exponential backoff.
  3. Caches decoded responses in a caller-owned cache.TTL keyed by Key.
  4. Collapses concurrent misses for the same Key into one upstream call
     (singleflight), so a crawler burst on a cold page costs one request.

Errors
------
  • Upstream 404 → ErrNotFound (handlers answer 404).
  • Any other non-2xx → *StatusError.
  • Errors are never cached.

Notes
-----
  • Oxford commas, two spaces after periods.  No em dash.
*/
package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/purell"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/yanizio/babynames/internal/cache"
	"github.com/yanizio/babynames/internal/metrics"
)

// ErrNotFound is returned when the API has no record for the request.
var ErrNotFound = errors.New("content not found")

// StatusError reports an unexpected upstream status.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("content api: %s returned %d", e.URL, e.Code)
}

// Key identifies one cached API response.
type Key struct {
	Resource string // "name", "letter", "articles", ...
	ID       string
}

// Cache is the cache type the client expects to be injected.
type Cache = cache.TTL[Key, any]

// Options configure New.
type Options struct {
	BaseURL string
	Timeout time.Duration
	Retries int
	Cache   *Cache
}

// Client fetches and caches content.  Safe for concurrent use.
type Client struct {
	base  string
	http  *retryablehttp.Client
	cache *Cache
	group singleflight.Group
}

const baseURLFlags = purell.FlagLowercaseScheme |
	purell.FlagLowercaseHost |
	purell.FlagRemoveDefaultPort |
	purell.FlagRemoveDuplicateSlashes |
	purell.FlagRemoveDotSegments |
	purell.FlagRemoveTrailingSlash

// New validates opts and returns a ready Client.
func New(opts Options) (*Client, error) {
	if opts.Cache == nil {
		return nil, errors.New("content: cache is required")
	}
	base, err := purell.NormalizeURLString(opts.BaseURL, baseURLFlags)
	if err != nil {
		return nil, fmt.Errorf("content: base url: %w", err)
	}
	u, err := url.Parse(base)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("content: base url %q must be absolute http(s)", opts.BaseURL)
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = opts.Retries
	rc.RetryWaitMin = 100 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second
	rc.HTTPClient.Timeout = opts.Timeout
	rc.ErrorHandler = keepLastResponse
	rc.Logger = leveled{zap.S().Named("content")}

	return &Client{base: strings.TrimRight(base, "/"), http: rc, cache: opts.Cache}, nil
}

// BaseURL returns the normalised API root.
func (c *Client) BaseURL() string { return c.base }

// Name returns one name record.
func (c *Client) Name(ctx context.Context, religion, slug string) (*Name, error) {
	n, err := fetch[Name](ctx, c, Key{"name", religion + "/" + slug},
		"/names/"+url.PathEscape(religion)+"/"+url.PathEscape(slug), nil)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// NamesByLetter lists names of one religion starting with letter.
func (c *Client) NamesByLetter(ctx context.Context, religion, letter string) ([]Name, error) {
	l, err := fetch[list[Name]](ctx, c, Key{"letter", religion + "/" + letter},
		"/names/"+url.PathEscape(religion), url.Values{"letter": {letter}})
	return l.Data, err
}

// Articles lists blog posts, newest first as served by the API.
func (c *Client) Articles(ctx context.Context) ([]Article, error) {
	l, err := fetch[list[Article]](ctx, c, Key{"articles", ""}, "/articles", nil)
	return l.Data, err
}

// Article returns one blog post.
func (c *Client) Article(ctx context.Context, slug string) (*Article, error) {
	a, err := fetch[Article](ctx, c, Key{"article", slug}, "/articles/"+url.PathEscape(slug), nil)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Stories lists stories.
func (c *Client) Stories(ctx context.Context) ([]Story, error) {
	l, err := fetch[list[Story]](ctx, c, Key{"stories", ""}, "/stories", nil)
	return l.Data, err
}

// Story returns one story.
func (c *Client) Story(ctx context.Context, slug string) (*Story, error) {
	s, err := fetch[Story](ctx, c, Key{"story", slug}, "/stories/"+url.PathEscape(slug), nil)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// fetch serves key from cache or performs one shared upstream GET.
func fetch[T any](ctx context.Context, c *Client, key Key, path string, q url.Values) (T, error) {
	var zero T

	if v, ok := c.cache.Get(key); ok {
		if t, ok := v.(T); ok {
			metrics.ContentCache.WithLabelValues("hit").Inc()
			return t, nil
		}
	}
	metrics.ContentCache.WithLabelValues("miss").Inc()

	// The shared call must outlive any single caller's cancellation; the
	// HTTP client timeout still bounds it.
	shared := context.WithoutCancel(ctx)
	v, err, _ := c.group.Do(key.Resource+"\x00"+key.ID, func() (any, error) {
		var out T
		if err := c.get(shared, key.Resource, path, q, &out); err != nil {
			return nil, err
		}
		c.cache.Add(key, out)
		return out, nil
	})
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

// get performs one GET and decodes the JSON body into dst.
func (c *Client) get(ctx context.Context, resource, path string, q url.Values, dst any) error {
	target := c.base + path
	if len(q) > 0 {
		target += "?" + q.Encode()
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.ContentFetches.WithLabelValues(resource, "error").Inc()
		return fmt.Errorf("content api: get %s: %w", target, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		metrics.ContentFetches.WithLabelValues(resource, "not_found").Inc()
		return ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		metrics.ContentFetches.WithLabelValues(resource, "error").Inc()
		return &StatusError{Code: resp.StatusCode, URL: target}
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		metrics.ContentFetches.WithLabelValues(resource, "error").Inc()
		return fmt.Errorf("content api: decode %s: %w", target, err)
	}
	metrics.ContentFetches.WithLabelValues(resource, "ok").Inc()
	return nil
}

// keepLastResponse hands the final response back once retries run out, so
// get can map a persistent 5xx to *StatusError.  Transport errors have no
// response and pass through.
func keepLastResponse(resp *http.Response, err error, _ int) (*http.Response, error) {
	if resp != nil {
		return resp, nil
	}
	return nil, err
}

// leveled adapts zap to retryablehttp.LeveledLogger.
type leveled struct{ s *zap.SugaredLogger }

func (l leveled) Error(msg string, kv ...interface{}) { l.s.Errorw(msg, kv...) }
func (l leveled) Info(msg string, kv ...interface{})  { l.s.Debugw(msg, kv...) }
func (l leveled) Debug(msg string, kv ...interface{}) { l.s.Debugw(msg, kv...) }
func (l leveled) Warn(msg string, kv ...interface{})  { l.s.Warnw(msg, kv...) }
