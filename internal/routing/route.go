// internal/routing/route.go
//
// Route matcher for the canonical-URL pipeline.
//
// Classify tags a request path with the one Shape that governs it.  Rules are
// tried in the order of the `rules` table below, first hit wins:
//
//   1. legacy    /names/{religion}/{lang}/{slug}     → LegacyLangName
//   2. letter    /names/{religion}/letter/{letter}   → LetterPage
//   3. name      /names/{religion}/{slug}            → NameDetail
//   4. slash     any non-root path ending in “/”     → TrailingSlash
//   5. fallback                                      → Unmatched
//
// Notes
// -----
// • Religion and lang are lower-case letters only and are never case-folded;
//   “/names/Islamic/ali” is Unmatched and left to the page layer.
// • “letter” is reserved and never treated as a language segment.
// • Oxford commas, two spaces after periods.

package routing

import (
	"regexp"
	"strings"
)

// Kind identifies which route shape a path matched.
type Kind int

const (
	Unmatched Kind = iota
	LegacyLangName
	LetterPage
	NameDetail
	TrailingSlash
)

func (k Kind) String() string {
	switch k {
	case LegacyLangName:
		return "legacy"
	case LetterPage:
		return "letter"
	case NameDetail:
		return "name"
	case TrailingSlash:
		return "slash"
	default:
		return "unmatched"
	}
}

// Shape is the classified form of one request path.  Only the fields that
// belong to Kind are set.
type Shape struct {
	Kind     Kind
	Religion string
	Lang     string
	Slug     string
	Letter   string
}

// Valid is false only for a letter page whose letter segment is not a single
// ASCII letter.  Such paths are matched, never redirected, and end in a 404.
func (s Shape) Valid() bool {
	if s.Kind != LetterPage {
		return true
	}
	return isASCIILetter(s.Letter)
}

var (
	legacyRe = regexp.MustCompile(`^/names/([a-z]+)/([a-z]+)/([^/]+)$`)
	letterRe = regexp.MustCompile(`^/names/([a-z]+)/letter/([^/]+)$`)
	nameRe   = regexp.MustCompile(`^/names/([a-z]+)/([^/]+)$`)
)

type rule struct {
	kind  Kind
	match func(path string) (Shape, bool)
}

// rules is the single source of matching priority.
var rules = []rule{
	{LegacyLangName, matchLegacy},
	{LetterPage, matchLetter},
	{NameDetail, matchName},
	{TrailingSlash, matchTrailingSlash},
}

// Classify returns the Shape for path.  It never fails; unknown paths are
// Unmatched.
func Classify(path string) Shape {
	for _, r := range rules {
		if s, ok := r.match(path); ok {
			s.Kind = r.kind
			return s
		}
	}
	return Shape{Kind: Unmatched}
}

func matchLegacy(path string) (Shape, bool) {
	m := legacyRe.FindStringSubmatch(path)
	if m == nil || m[2] == "letter" {
		return Shape{}, false
	}
	return Shape{Religion: m[1], Lang: m[2], Slug: m[3]}, true
}

func matchLetter(path string) (Shape, bool) {
	m := letterRe.FindStringSubmatch(path)
	if m == nil {
		return Shape{}, false
	}
	return Shape{Religion: m[1], Letter: m[2]}, true
}

func matchName(path string) (Shape, bool) {
	m := nameRe.FindStringSubmatch(path)
	if m == nil {
		return Shape{}, false
	}
	return Shape{Religion: m[1], Slug: m[2]}, true
}

func matchTrailingSlash(path string) (Shape, bool) {
	if path == "/" || !strings.HasSuffix(path, "/") {
		return Shape{}, false
	}
	return Shape{}, true
}

func isASCIILetter(s string) bool {
	if len(s) != 1 {
		return false
	}
	c := s[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
