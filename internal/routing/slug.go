// internal/routing/slug.go
//
// Slug and path helpers.
//
// • Sanitize(raw)          ─ normalises an incoming URL segment into the
//   canonical slug form, or rejects it.  The one rule shared by the redirect
//   pipeline and every page handler.
// • IsCanonical(s)         ─ true when s is already its own sanitized form.
// • MakeSlug(title)        ─ converts free text into a lower-kebab ASCII slug
//   (content layer, cache keys).
// • BuildPath(parent, slug) ─ joins parent path + slug with a single “/”.
//
// Rules (Sanitize)
// ----------------
// 1. Trim surrounding whitespace.
// 2. Strip any leading and any trailing run of “-” / “_”.
// 3. Reject if empty, if any byte falls outside [a-zA-Z0-9_-], or if two
//    separators touch (“a--b”, “a_-b”).
// 4. Lower-case.
//
// Notes
// -----
// • A rejected slug is data, not an error.  Callers defer to the page 404.
// • Oxford commas, two spaces after periods.

package routing

import (
	"regexp"
	"strings"
)

var (
	slugChars     = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	slugDoubleSep = regexp.MustCompile(`[-_]{2,}`)
)

// Sanitize returns the canonical form of raw and true, or "" and false when
// raw cannot be turned into a valid slug.
func Sanitize(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimLeft(s, "-_")
	s = strings.TrimRight(s, "-_")

	if s == "" || !slugChars.MatchString(s) || slugDoubleSep.MatchString(s) {
		return "", false
	}
	return strings.ToLower(s), true
}

// IsCanonical reports whether s sanitizes to itself.
func IsCanonical(s string) bool {
	got, ok := Sanitize(s)
	return ok && got == s
}

// MakeSlug converts title → lower-kebab ASCII.
func MakeSlug(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	lastWasDash := false
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastWasDash = false
		default:
			// any non-ASCII or punctuation becomes a single dash
			if !lastWasDash {
				b.WriteRune('-')
				lastWasDash = true
			}
		}
	}

	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "item"
	}
	if len(slug) > 100 {
		slug = strings.TrimRight(slug[:100], "-")
	}
	return slug
}

// BuildPath joins parent + slug ensuring exactly one leading slash and no
// duplicate separators.
func BuildPath(parent, slug string) string {
	parent = strings.Trim(parent, "/")
	slug = strings.Trim(slug, "/")

	switch {
	case parent == "" && slug == "":
		return "/"
	case parent == "":
		return "/" + slug
	case slug == "":
		return "/" + parent
	default:
		return "/" + parent + "/" + slug
	}
}
