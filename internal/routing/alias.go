// internal/routing/alias.go
//
// Alias redirect cache and middleware.
//
// Context
// -------
// Editors rename names, articles, and stories.  The old URL lives on as a
// row in route_alias(alias_path, target_path) and must answer with a 301 to
// the new one.  The table is small, so it is held in memory and reloaded
// when the TTL lapses.
//
// Workflow
// --------
//   1. main opens the site DB and builds the cache via NewAliasCache().
//   2. The router wires AliasRedirect(cache) right after Canonicalize.
//   3. A stale cache reloads in the request path; one request reloads while
//      the rest keep reading the previous snapshot.
//
// Notes
// -----
// • Only canonical targets are accepted (Resolve must pass them through),
//   so an alias can never start a redirect chain.  Bad rows are skipped.
// • Keys are canonical paths; Canonicalize has already run.
// • Oxford commas, two spaces after periods.

package routing

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/yanizio/babynames/internal/metrics"
)

// -----------------------------------------------------------------------------
// AliasCache
// -----------------------------------------------------------------------------

// AliasCache stores alias→target pairs plus TTL state.  Zero value is
// unusable; construct with NewAliasCache.
type AliasCache struct {
	mu       sync.RWMutex
	data     map[string]string
	loadedAt time.Time
	ttl      time.Duration
	db       *sql.DB

	reload sync.Mutex // held by the one request doing a refresh
}

// NewAliasCache returns an empty cache with the specified TTL.  The first
// request after construction triggers a load.
func NewAliasCache(db *sql.DB, ttl time.Duration) *AliasCache {
	return &AliasCache{data: map[string]string{}, db: db, ttl: ttl}
}

// Load refreshes all aliases from route_alias.
func (c *AliasCache) Load(ctx context.Context) error {
	rows, err := c.db.QueryContext(ctx, `SELECT alias_path, target_path FROM route_alias`)
	if err != nil {
		return err
	}
	defer rows.Close()

	fresh := make(map[string]string)
	for rows.Next() {
		var alias, target string
		if err := rows.Scan(&alias, &target); err != nil {
			return err
		}
		if !validAliasTarget(alias, target) {
			zap.L().Warn("alias skipped",
				zap.String("alias", alias),
				zap.String("target", target))
			continue
		}
		fresh[alias] = target
	}
	if err := rows.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	c.data = fresh
	c.loadedAt = time.Now()
	c.mu.Unlock()

	zap.L().Debug("alias cache load", zap.Int("count", len(fresh)))
	return nil
}

// Len reports how many aliases are loaded.
func (c *AliasCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}

func (c *AliasCache) lookup(path string) (string, bool) {
	c.mu.RLock()
	target, ok := c.data[path]
	c.mu.RUnlock()
	return target, ok
}

func (c *AliasCache) stale() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return time.Since(c.loadedAt) > c.ttl
}

// refresh reloads when stale.  Callers that lose the TryLock race keep
// serving the current snapshot.
func (c *AliasCache) refresh(ctx context.Context) {
	if !c.stale() || !c.reload.TryLock() {
		return
	}
	defer c.reload.Unlock()

	if err := c.Load(ctx); err != nil {
		metrics.AliasLoadErrorsTotal.Inc()
		zap.L().Warn("alias cache reload failed", zap.Error(err))

		// Push loadedAt forward so a dead DB is not hit on every request.
		c.mu.Lock()
		c.loadedAt = time.Now()
		c.mu.Unlock()
	}
}

// validAliasTarget rejects self-loops, non-path targets, and targets that
// would themselves be redirected.
func validAliasTarget(alias, target string) bool {
	if alias == target || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return false
	}
	return Resolve(target).Action == Passthrough
}

// -----------------------------------------------------------------------------
// Middleware factory
// -----------------------------------------------------------------------------

// AliasRedirect returns a chi middleware that 301s known aliases.
func AliasRedirect(cache *AliasCache) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cache.refresh(r.Context())

			target, ok := cache.lookup(r.URL.Path)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			metrics.AliasRedirects.Inc()
			zap.L().Debug("alias redirect",
				zap.String("from", r.URL.Path),
				zap.String("to", target))

			writeRedirect(w, r, target, http.StatusMovedPermanently)
		})
	}
}
