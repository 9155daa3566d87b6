// Package middleware holds small, composable HTTP wrappers.
package middleware

import (
	"net"
	"net/http"
)

// ForceHTTPS returns a middleware that issues a 308 Permanent Redirect to
// the HTTPS version of the same URL when the request arrived over plain
// HTTP and the host is not a loopback name.  When enabled is false it is a
// pass-through, which is what local development and TLS-terminating proxies
// that already redirect want.
//
// X-Forwarded-Proto is honoured so the site can run behind a proxy.
func ForceHTTPS(enabled bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !enabled {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isHTTPS(r) || isLoopback(stripPort(r.Host)) {
				next.ServeHTTP(w, r)
				return
			}
			target := "https://" + stripPort(r.Host) + r.URL.RequestURI()
			http.Redirect(w, r, target, http.StatusPermanentRedirect)
		})
	}
}

func isHTTPS(r *http.Request) bool {
	return r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https"
}

func isLoopback(host string) bool {
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

// stripPort removes the :port suffix from Host when present.
func stripPort(h string) string {
	if host, _, err := net.SplitHostPort(h); err == nil {
		return host
	}
	return h
}
