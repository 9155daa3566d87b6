// internal/routing/decide.go
//
// Redirect decision for the canonical-URL pipeline.
//
// Decide maps one classified Shape to an Action:
//
//   • NameDetail      – sanitize slug; invalid → NotFound, equal →
//                       Passthrough, else 301 to /names/{religion}/{slug}.
//   • LetterPage      – not one ASCII letter → NotFound, lower-case →
//                       Passthrough, else 301 to the lower-case letter.
//   • LegacyLangName  – always 308 to /names/{religion}/{slug}; the slug is
//                       checked on the next hop, not here.
//   • TrailingSlash   – 301 to the path without trailing slashes (a run of
//                       leading slashes also collapses to one).
//   • Unmatched       – Passthrough.
//
// Resolve chains Classify and Decide over the redirect target until the
// target settles, so a client is sent to the final URL in one response and
// never bounces twice.  A hop list that touched the legacy rewrite keeps 308;
// otherwise the result is 301.
//
// Notes
// -----
// • Pure functions.  No I/O, no logging, no shared state.
// • Oxford commas, two spaces after periods.

package routing

import (
	"net/http"
	"strings"
)

// Action is the outcome of the pipeline for one path.
type Action int

const (
	Passthrough Action = iota
	Redirect
	NotFound
)

func (a Action) String() string {
	switch a {
	case Redirect:
		return "redirect"
	case NotFound:
		return "not_found"
	default:
		return "passthrough"
	}
}

// Decision carries the Action plus, for Redirect, the target path and
// status code.  Kind records the shape that triggered the first hop.
type Decision struct {
	Action Action
	Target string
	Status int
	Kind   Kind
}

// maxHops bounds Resolve.  The longest real chain is slash → legacy → name.
const maxHops = 4

func passthrough(k Kind) Decision { return Decision{Action: Passthrough, Kind: k} }
func notFound(k Kind) Decision    { return Decision{Action: NotFound, Kind: k} }

func redirectTo(k Kind, target string, status int) Decision {
	return Decision{Action: Redirect, Target: target, Status: status, Kind: k}
}

// Decide returns the single-step decision for shape.  path is the raw
// request path the shape was classified from.
func Decide(shape Shape, path string) Decision {
	switch shape.Kind {
	case NameDetail:
		slug, ok := Sanitize(shape.Slug)
		if !ok {
			return notFound(shape.Kind)
		}
		if slug == shape.Slug {
			return passthrough(shape.Kind)
		}
		return redirectTo(shape.Kind,
			"/names/"+shape.Religion+"/"+slug, http.StatusMovedPermanently)

	case LetterPage:
		if !shape.Valid() {
			return notFound(shape.Kind)
		}
		lower := strings.ToLower(shape.Letter)
		if lower == shape.Letter {
			return passthrough(shape.Kind)
		}
		return redirectTo(shape.Kind,
			"/names/"+shape.Religion+"/letter/"+lower, http.StatusMovedPermanently)

	case LegacyLangName:
		return redirectTo(shape.Kind,
			"/names/"+shape.Religion+"/"+shape.Slug, http.StatusPermanentRedirect)

	case TrailingSlash:
		// Leading slashes collapse too: "//host" in Location is
		// protocol-relative and would leave the site.
		target := "/" + strings.Trim(path, "/")
		return redirectTo(shape.Kind, target, http.StatusMovedPermanently)
	}
	return passthrough(shape.Kind)
}

// Resolve runs the whole pipeline for path and returns the final decision.
func Resolve(path string) Decision {
	first := Decide(Classify(path), path)
	if first.Action != Redirect {
		return first
	}

	final := first
	for hop := 1; hop < maxHops; hop++ {
		next := Decide(Classify(final.Target), final.Target)
		if next.Action != Redirect {
			break
		}
		final.Target = next.Target
		if next.Status == http.StatusPermanentRedirect {
			final.Status = http.StatusPermanentRedirect
		}
	}
	return final
}
