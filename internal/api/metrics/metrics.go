// Package metrics defines and registers all custom Prometheus metrics for
// the gift-exchange service. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time; the
// router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "giftexchange"

// ── Matching metrics ──────────────────────────────────────────────────────────

// AssignmentsGeneratedTotal counts freshly generated (not replayed)
// assignments per group.
var AssignmentsGeneratedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assignments_generated_total",
		Help:      "Total number of assignments generated, by group.",
	},
	[]string{"group_id"},
)

// MatchAttempts observes how many shuffles the matcher needed before a
// valid derangement was accepted.
var MatchAttempts = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "match_attempts",
		Help:      "Number of shuffle attempts per successful match.",
		Buckets:   []float64{1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
	},
)

// MatchFailuresTotal counts groups whose constraints could not be satisfied
// within the attempt bound.
var MatchFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "match_failures_total",
		Help:      "Total number of failed match generations, by group.",
	},
	[]string{"group_id"},
)

// ── Registry metrics ──────────────────────────────────────────────────────────

// GroupsRetiredTotal counts persisted groups whose assignment records were
// deleted because the group left the configuration.
var GroupsRetiredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "groups_retired_total",
		Help:      "Total number of group assignment record sets retired during reconcile.",
	},
)

// ReconcileFailuresTotal counts groups whose startup initialization failed.
// Label:
//   - group_id: the group left without an assignment
var ReconcileFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reconcile_failures_total",
		Help:      "Total number of group initializations that failed during reconcile.",
	},
	[]string{"group_id"},
)

// ── Request metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts authentication attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// WishListUpdatesTotal counts full-replace wish list writes.
var WishListUpdatesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "wishlist_updates_total",
		Help:      "Total number of wish list save operations.",
	},
)
