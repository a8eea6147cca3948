// Package metrics defines and registers all custom Prometheus metrics for the
// weather API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics are registered with the default registry via promauto at package
// initialisation; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "weather"

// ── Account metrics ───────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "ok" or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of user registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// FavoriteMutationsTotal counts favorites list mutations.
// Labels:
//   - op: "add" or "remove"
//   - result: "ok" or "error"
var FavoriteMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "favorite_mutations_total",
		Help:      "Total number of favorite add/remove operations, by result.",
	},
	[]string{"op", "result"},
)

// ── Upstream provider metrics ─────────────────────────────────────────────────

// UpstreamRequestsTotal counts calls to the weather provider.
// Labels:
//   - endpoint: "current" or "forecast"
//   - result: "ok" or "error"
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of weather provider calls, by endpoint and result.",
	},
	[]string{"endpoint", "result"},
)

// UpstreamRequestDuration measures provider call latency.
// Label:
//   - endpoint: "current" or "forecast"
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of weather provider calls.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"endpoint"},
)

// CacheLookupsTotal counts weather cache lookups.
// Label:
//   - result: "hit" or "miss"
var CacheLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_lookups_total",
		Help:      "Total number of weather cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
