// internal/requestinfo/middleware.go
//
// HTTP middleware that enriches each request with *RequestInfo.
//
/*
Context
--------
This handler sits after chi's RealIP and before the canonical-URL stage.
For every request it:

  1. Parses the User-Agent header and Accept-Language list.
  2. Takes the client IP from r.RemoteAddr (RealIP has already applied
     X-Forwarded-For / X-Real-IP).
  3. Performs a GeoLite2 lookup when a database was opened.
  4. Stores a `*RequestInfo` in the request context.

Notes
-----
  • The geo reader is owned by the Enricher, not a package global, so tests
    run without a MaxMind file and main decides when to Close it.
  • Oxford commas, two spaces after periods.  No em dash.
*/
package requestinfo

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/oschwald/geoip2-golang"
	"go.uber.org/zap"
)

// Enricher builds RequestInfo values.  The zero value works without geo.
type Enricher struct {
	geo *geoip2.Reader
}

// NewEnricher opens the GeoLite2-City database at geoPath.  An empty path
// disables geolocation.
func NewEnricher(geoPath string) (*Enricher, error) {
	if geoPath == "" {
		return &Enricher{}, nil
	}
	r, err := geoip2.Open(geoPath)
	if err != nil {
		return nil, fmt.Errorf("requestinfo: open GeoLite2 db: %w", err)
	}
	return &Enricher{geo: r}, nil
}

// Close releases the geo database, if any.
func (e *Enricher) Close() error {
	if e.geo == nil {
		return nil
	}
	return e.geo.Close()
}

// Middleware wraps an http.Handler, attaches *RequestInfo, and forwards.
func (e *Enricher) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info := &RequestInfo{
			UA:        parseUA(r.UserAgent(), r.Header.Get("Accept-Language")),
			Geo:       e.lookup(remoteIP(r)),
			Timestamp: time.Now().UTC(),
		}

		zap.S().Debugw("request info",
			"ip", info.Geo.IP,
			"country", info.Geo.CountryISO,
			"browser", info.UA.Browser,
			"device", info.UA.Device,
			"bot", info.UA.IsBot,
			"path", r.URL.Path,
		)

		next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), info)))
	})
}

// lookup returns best-effort Geo data.
func (e *Enricher) lookup(ip net.IP) Geo {
	if e.geo == nil || ip == nil {
		return Geo{IP: ip}
	}
	rec, err := e.geo.City(ip)
	if err != nil {
		return Geo{IP: ip}
	}
	return Geo{
		IP:         ip,
		CountryISO: rec.Country.IsoCode,
		City:       rec.City.Names["en"],
	}
}

// remoteIP parses r.RemoteAddr, with or without a port.
func remoteIP(r *http.Request) net.IP {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return net.ParseIP(host)
	}
	return net.ParseIP(r.RemoteAddr)
}
