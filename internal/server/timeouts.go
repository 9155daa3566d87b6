// internal/server/timeouts.go
//
// HTTP server helper with robust timeouts.
//
// Production hardening recommends:
//
//   • ReadTimeout   – abort slow-loris headers (default 10 s)
//   • WriteTimeout  – cap total response time, content API calls included
//                     (default 15 s)
//   • IdleTimeout   – close keep-alives on idle clients (default 60 s)
//
// Values come from the `http` config section; zero falls back to the
// defaults so tests can pass an empty Timeouts.
//

package server

import (
	"net/http"
	"time"
)

// Timeouts mirrors the duration fields of config.HTTP.
type Timeouts struct {
	Read, Write, Idle time.Duration
}

// New constructs an *http.Server with sensible defaults.
func New(addr string, handler http.Handler, t Timeouts) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: or(t.Read, 10*time.Second),
		ReadTimeout:       or(t.Read, 10*time.Second),
		WriteTimeout:      or(t.Write, 15*time.Second),
		IdleTimeout:       or(t.Idle, 60*time.Second),
	}
}

func or(v, def time.Duration) time.Duration {
	if v > 0 {
		return v
	}
	return def
}
