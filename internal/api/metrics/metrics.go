// Package metrics defines the custom Prometheus metrics of the directory API.
// All metrics register with the default registry at init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "directory"

// ── Access guard ──────────────────────────────────────────────────────────────

// GuardRejectionsTotal counts requests stopped by the access guard.
// Label:
//   - reason: "missing_token", "invalid_token", "unauthenticated", "not_admin" or "role"
var GuardRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_rejections_total",
		Help:      "Total number of requests rejected by the access guard.",
	},
	[]string{"reason"},
)

// TokensIssuedTotal counts session tokens handed out.
// Label:
//   - operation: "register" or "login"
var TokensIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of session tokens issued.",
	},
	[]string{"operation"},
)

// ── Cascade deletion ──────────────────────────────────────────────────────────

// CascadeDeletionsTotal counts cascade deletions by terminal state.
// Anything other than "both_deleted" marks a partial-failure window.
var CascadeDeletionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cascade_deletions_total",
		Help:      "Total number of freelancer/user cascade deletions, by terminal state.",
	},
	[]string{"state"},
)

// CascadeDeletionDuration measures a cascade deletion from lookup to both
// deletes returning.
var CascadeDeletionDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "cascade_deletion_duration_seconds",
		Help:      "Duration of freelancer/user cascade deletions.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"state"},
)
