// internal/config/validator.go
//
// Thin wrapper around go-playground/validator.
//
// Context
// -------
// `internal/config/loader.go` calls `validateStruct` immediately after it
// unmarshals the merged Koanf tree into a `Config` instance.  Any tag
// mismatch or validation error aborts startup.
//
// Beyond the built-in tags, one struct-level rule is registered: the site
// and content base URLs must be http(s), since the `url` tag alone accepts
// any scheme.
//
// Notes
// -----
//   • Oxford commas, two spaces after periods.

package config

import (
	"net/url"

	"github.com/go-playground/validator/v10"
)

//
// validator instance (package-level singleton)
//

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New()
	val.RegisterStructValidation(func(sl validator.StructLevel) {
		c := sl.Current().Interface().(Config)
		if !isHTTPURL(c.Site.BaseURL) {
			sl.ReportError(c.Site.BaseURL, "Site.BaseURL", "BaseURL", "httpurl", "")
		}
		if !isHTTPURL(c.Content.BaseURL) {
			sl.ReportError(c.Content.BaseURL, "Content.BaseURL", "BaseURL", "httpurl", "")
		}
	}, Config{})
	return val
}

func isHTTPURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

//
// public API
//

// validateStruct returns the first validation error, or nil on success.
func validateStruct(c *Config) error {
	return v.Struct(c)
}
