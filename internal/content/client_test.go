package content

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yanizio/babynames/internal/cache"
)

func newTestClient(t *testing.T, h http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := New(Options{
		BaseURL: srv.URL + "/api/",
		Timeout: 2 * time.Second,
		Retries: 0,
		Cache:   cache.New[Key, any](32, time.Minute),
	})
	require.NoError(t, err)
	return c
}

func TestClient_NameIsCached(t *testing.T) {
	var hits atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "/api/names/islamic/ali", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"Ali","slug":"ali","religion":"islamic","meaning":"Exalted"}`))
	}))

	for i := 0; i < 3; i++ {
		n, err := c.Name(context.Background(), "islamic", "ali")
		require.NoError(t, err)
		assert.Equal(t, "Ali", n.Name)
		assert.Equal(t, "Exalted", n.Meaning)
	}
	assert.Equal(t, int32(1), hits.Load())
}

func TestClient_NamesByLetter(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/names/hindu", r.URL.Path)
		assert.Equal(t, "a", r.URL.Query().Get("letter"))
		_, _ = w.Write([]byte(`{"data":[{"name":"Arjun","slug":"arjun"},{"name":"Asha","slug":"asha"}]}`))
	}))

	names, err := c.NamesByLetter(context.Background(), "hindu", "a")
	require.NoError(t, err)
	require.Len(t, names, 2)
	assert.Equal(t, "asha", names[1].Slug)
}

func TestClient_NotFound(t *testing.T) {
	var hits atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.NotFound(w, r)
	}))

	_, err := c.Article(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	// Errors are not cached.
	_, err = c.Article(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, int32(2), hits.Load())
}

func TestClient_UpstreamFailure(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := c.Stories(context.Background())
	var se *StatusError
	require.True(t, errors.As(err, &se), "got %v", err)
	assert.Equal(t, http.StatusBadGateway, se.Code)
}

func TestClient_BadJSON(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":`))
	}))

	_, err := c.Articles(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestClient_ConcurrentCallersShareResult(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(20 * time.Millisecond)
		_, _ = w.Write([]byte(`{"title":"Naming Traditions","slug":"naming-traditions"}`))
	}))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := c.Story(context.Background(), "naming-traditions")
			assert.NoError(t, err)
			assert.Equal(t, "Naming Traditions", s.Title)
		}()
	}
	wg.Wait()
}

func TestNew_NormalisesBaseURL(t *testing.T) {
	c, err := New(Options{
		BaseURL: "HTTPS://API.Example.COM:443//v1/",
		Timeout: time.Second,
		Cache:   cache.New[Key, any](1, time.Minute),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/v1", c.BaseURL())
}

func TestNew_Rejects(t *testing.T) {
	_, err := New(Options{BaseURL: "http://example.com"})
	assert.Error(t, err, "missing cache")

	_, err = New(Options{BaseURL: "ftp://example.com", Cache: cache.New[Key, any](1, time.Minute)})
	assert.Error(t, err, "bad scheme")
}
