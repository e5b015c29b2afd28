// Package metrics defines and registers all custom Prometheus metrics for the
// journal admin API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// init through promauto and exposed by the router on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "journal_admin"

// ── User action metrics ───────────────────────────────────────────────────────

// UserActionsTotal counts dispatched user actions.
// Labels:
//   - action: the resolved action token ("create", "upgrade"), or "unknown"
//   - outcome: "succeeded", "failed" or "rejected"
var UserActionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_actions_total",
		Help:      "Total number of user actions dispatched, by action and outcome.",
	},
	[]string{"action", "outcome"},
)

// UserActionDuration measures how long an action takes from resolution to
// completion of the store call.
var UserActionDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "user_action_duration_seconds",
		Help:      "Duration of user action execution.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"action"},
)

// ── Cache metrics ─────────────────────────────────────────────────────────────

// CacheResetsTotal counts app cache resets.
// Label:
//   - result: "ok" or "error"
var CacheResetsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "app_cache_resets_total",
		Help:      "Total number of application cache resets, by result.",
	},
	[]string{"result"},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditQueueDepth tracks the number of audit entries waiting in each worker channel.
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit entries pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// AuditDroppedTotal counts audit entries dropped because a worker queue was full.
var AuditDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_dropped_total",
		Help:      "Total number of audit entries dropped due to a full queue.",
	},
)
