//
//  internal/requestinfo/requestinfo.go
//
//  Lightweight per-request metadata: user-agent fingerprint, client IP with
//  best-effort geolocation, and the request timestamp.  The canonical-URL
//  middleware reads it to label redirects served to crawlers, which is the
//  number that matters when legacy URLs are being retired.
//
//  Dependencies
//  • github.com/avct/uasurfer          (UA parsing)
//  • github.com/oschwald/geoip2-golang (MaxMind lookup, optional)
//

package requestinfo

import (
	"context"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/avct/uasurfer"
)

// UA holds the parsed user-agent properties.
type UA struct {
	Raw         string // Entire User-Agent header
	Browser     string // "Chrome", "Firefox", "Safari", etc.
	Version     string // "124.0.6367"
	OS          string // "macOS", "Windows", "Android", "iOS", etc.
	Device      string // "Desktop", "Phone", "Tablet", "TV", ...
	IsBot       bool   // Googlebot, Bingbot, and friends
	PrimaryLang string // First tag from Accept-Language ("en", "ur", ...)
}

// Geo holds IP-based geolocation hints.  Empty when no GeoLite2 database is
// configured or the address has no match.
type Geo struct {
	IP         net.IP
	CountryISO string
	City       string
}

// RequestInfo is stored in the request context by Enricher.Middleware.
type RequestInfo struct {
	UA        UA
	Geo       Geo
	Timestamp time.Time
}

type ctxKey struct{} // unexported, collision-proof

// FromContext returns the pointer previously stored by the middleware, or
// nil if it has not run.
func FromContext(ctx context.Context) *RequestInfo {
	v, _ := ctx.Value(ctxKey{}).(*RequestInfo)
	return v
}

// NewContext returns ctx carrying info.  Tests use it to fake crawler hits.
func NewContext(ctx context.Context, info *RequestInfo) context.Context {
	return context.WithValue(ctx, ctxKey{}, info)
}

// parseUA converts a raw header into our UA struct using uasurfer.
func parseUA(uaHeader, acceptLang string) UA {
	u := uasurfer.Parse(uaHeader)

	osName := strings.TrimPrefix(u.OS.Name.String(), "OS")
	if osName == "MacOSX" {
		osName = "macOS"
	}

	return UA{
		Raw:         uaHeader,
		Browser:     strings.TrimPrefix(u.Browser.Name.String(), "Browser"),
		Version:     trimVersion(u.Browser.Version),
		OS:          osName,
		Device:      deviceTypeToString(u.DeviceType),
		IsBot:       u.IsBot(),
		PrimaryLang: primaryLang(acceptLang),
	}
}

// trimVersion builds "major.minor.patch" and removes trailing ".0" parts.
func trimVersion(v uasurfer.Version) string {
	parts := []string{strconv.Itoa(v.Major), strconv.Itoa(v.Minor), strconv.Itoa(v.Patch)}
	for len(parts) > 1 && parts[len(parts)-1] == "0" {
		parts = parts[:len(parts)-1]
	}
	return strings.Join(parts, ".")
}

func deviceTypeToString(dt uasurfer.DeviceType) string {
	switch dt {
	case uasurfer.DeviceComputer:
		return "Desktop"
	case uasurfer.DevicePhone:
		return "Phone"
	case uasurfer.DeviceTablet:
		return "Tablet"
	case uasurfer.DeviceConsole:
		return "Console"
	case uasurfer.DeviceWearable:
		return "Wearable"
	case uasurfer.DeviceTV:
		return "TV"
	default:
		return "Unknown"
	}
}

// primaryLang extracts the primary subtag of the first Accept-Language entry
// ("en-GB,en;q=0.8" → "en").
func primaryLang(al string) string {
	tag, _, _ := strings.Cut(al, ",")
	tag, _, _ = strings.Cut(tag, ";")
	tag, _, _ = strings.Cut(tag, "-")
	return strings.ToLower(strings.TrimSpace(tag))
}
