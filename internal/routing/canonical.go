// internal/routing/canonical.go
//
// Canonical-URL middleware.
//
// Context
// -------
// Runs before any page route.  Resolve() decides the request's fate:
//
//   • Redirect    → write Location (query string kept) and the decided
//                   301 / 308, stop the chain.
//   • Passthrough → next handler.
//   • NotFound    → next handler; the page route renders its own 404.
//
// Notes
// -----
// • Location is a path-absolute reference built with url.URL so odd bytes
//   in the path are escaped, never echoed raw.
// • Oxford commas, two spaces after periods.

package routing

import (
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/yanizio/babynames/internal/metrics"
	"github.com/yanizio/babynames/internal/requestinfo"
)

// Canonicalize returns a chi-compatible middleware that applies Resolve.
func Canonicalize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d := Resolve(r.URL.Path)
		if d.Action != Redirect {
			next.ServeHTTP(w, r)
			return
		}

		bot := false
		if info := requestinfo.FromContext(r.Context()); info != nil {
			bot = info.UA.IsBot
		}

		metrics.CanonicalRedirects.
			WithLabelValues(d.Kind.String(), strconv.Itoa(d.Status), strconv.FormatBool(bot)).
			Inc()
		zap.L().Debug("canonical redirect",
			zap.String("from", r.URL.Path),
			zap.String("to", d.Target),
			zap.Int("status", d.Status),
			zap.Bool("bot", bot))

		writeRedirect(w, r, d.Target, d.Status)
	})
}

// writeRedirect sends status with Location = target plus the original query.
func writeRedirect(w http.ResponseWriter, r *http.Request, target string, status int) {
	loc := url.URL{Path: target, RawQuery: r.URL.RawQuery}
	w.Header().Set("Location", loc.EscapedPath()+querySuffix(loc.RawQuery))
	w.WriteHeader(status)
}

func querySuffix(q string) string {
	if q == "" {
		return ""
	}
	return "?" + q
}
