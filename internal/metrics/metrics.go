// Package metrics holds Prometheus instruments that are used across the
// site.  All collectors are registered with the global registry, so
// importing this package in main.go is enough to expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// CanonicalRedirects counts redirects issued by the canonical-URL
	// pipeline, labelled by first-hop route kind, status code, and whether
	// the client looked like a crawler.
	CanonicalRedirects = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "canonical_redirects_total",
			Help: "Redirects issued by the canonical-URL middleware.",
		}, []string{"kind", "code", "bot"})

	AliasRedirects = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "alias_redirects_total",
			Help: "Redirects issued from the route_alias table.",
		})

	AliasLoadErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "alias_load_errors_total",
			Help: "Failed reloads of the route_alias table.",
		})

	ContentFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_fetch_total",
			Help: "Content API requests by resource and result.",
		}, []string{"resource", "result"})

	ContentCache = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_cache_total",
			Help: "Content cache lookups by result (hit or miss).",
		}, []string{"result"})
)

func init() {
	prometheus.MustRegister(
		CanonicalRedirects,
		AliasRedirects,
		AliasLoadErrorsTotal,
		ContentFetches,
		ContentCache,
	)
}
