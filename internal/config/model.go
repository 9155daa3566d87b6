// internal/config/model.go
//
// Typed configuration model for the names site.
//
// Context
// -------
// These structs define the shape of the configuration tree that
// `internal/config/loader.go` builds from three overlay layers:
//
//   • optional `.env`                          – dotenv values,
//   • `conf/global.yaml`                       – primary static file,
//   • `NAMES_`-prefixed environment overrides  – highest precedence.
//
// Validation happens immediately after unmarshal; the app fails fast if
// required fields are missing.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"`.
//   • The `Paths` block is filled at runtime; YAML must not try to set it.
//   • Oxford commas, two spaces after periods.  No em-dash.

package config

import "time"

//
// HTTP section
//

// HTTP holds web-server tunables.
type HTTP struct {
	ListenAddr   string        `koanf:"listen_addr"   validate:"required,hostname_port"`
	ForceHTTPS   bool          `koanf:"force_https"`
	ReadTimeout  time.Duration `koanf:"read_timeout"  validate:"gte=0"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"gte=0"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"  validate:"gte=0"`
}

//
// Site section
//

// Site describes the public face of the site.  BaseURL feeds canonical
// <link> tags.
type Site struct {
	Name    string `koanf:"name"     validate:"required"`
	BaseURL string `koanf:"base_url" validate:"required,url"`
}

//
// Content API section
//

// Content configures the upstream content API client and its cache.
type Content struct {
	BaseURL   string        `koanf:"base_url"   validate:"required,url"`
	Timeout   time.Duration `koanf:"timeout"    validate:"gt=0"`
	Retries   int           `koanf:"retries"    validate:"gte=0,lte=10"`
	CacheTTL  time.Duration `koanf:"cache_ttl"  validate:"gt=0"`
	CacheSize int           `koanf:"cache_size" validate:"gte=1"`
}

//
// Database section
//

// Database is optional.  When DSN is empty the route_alias redirects are
// disabled and the site runs without MySQL.
type Database struct {
	DSN      string        `koanf:"dsn"`
	AliasTTL time.Duration `koanf:"alias_ttl" validate:"required_with=DSN"`
}

//
// Geo and Log sections
//

// Geo points at an optional GeoLite2-City database.
type Geo struct {
	DBPath string `koanf:"db_path" validate:"omitempty,file"`
}

// Log tunes the zap logger.
type Log struct {
	Level string `koanf:"level" validate:"omitempty,oneof=debug info warn error"`
}

//
// Paths section (runtime only)
//

// Paths is resolved at runtime, never set in YAML or env.
type Paths struct {
	Root string // NAMES_ROOT or discovered parent
}

//
// Root aggregate
//

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads throughout the app lifetime.
type Config struct {
	HTTP     HTTP     `koanf:"http"`
	Site     Site     `koanf:"site"`
	Content  Content  `koanf:"content"`
	Database Database `koanf:"database"`
	Geo      Geo      `koanf:"geo"`
	Log      Log      `koanf:"log"`
	Paths    Paths    `koanf:"-"` // not loaded from config files
}

// defaults are loaded before the YAML file so operators only set what
// differs.
var defaults = map[string]any{
	"http.listen_addr":   ":8080",
	"http.read_timeout":  "10s",
	"http.write_timeout": "15s",
	"http.idle_timeout":  "60s",
	"content.timeout":    "5s",
	"content.retries":    2,
	"content.cache_ttl":  "5m",
	"content.cache_size": 2048,
	"database.alias_ttl": "1m",
	"log.level":          "info",
}
