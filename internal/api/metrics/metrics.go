// Package metrics defines and registers all custom Prometheus metrics for the
// agency API. It is the single source of truth for metric names, labels, and
// help strings.
//
// All metrics register themselves with the default Prometheus registry at
// package init via promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "agency"

// ── Task metrics ──────────────────────────────────────────────────────────────

// TasksCreatedTotal counts newly created tasks.
// Label:
//   - priority: "LOW", "MEDIUM", "HIGH", or "URGENT"
var TasksCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_created_total",
		Help:      "Total number of tasks created, by priority.",
	},
	[]string{"priority"},
)

// TransitionsAppliedTotal counts workflow transitions that were applied and
// persisted successfully.
// Labels:
//   - from: the status the task left (e.g. "IN_PROGRESS")
//   - to: the status the task entered (e.g. "WAITING_APPROVAL")
var TransitionsAppliedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transitions_applied_total",
		Help:      "Total number of task status transitions successfully applied.",
	},
	[]string{"from", "to"},
)

// TransitionErrorsTotal counts transitions that were rejected or failed.
// Label:
//   - reason: short description of the failure (e.g. "invalid_transition", "update_failed")
var TransitionErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transition_errors_total",
		Help:      "Total number of task status transitions that were rejected or failed.",
	},
	[]string{"reason"},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsThrottledTotal counts throttle decisions for status-change
// notifications.
// Label:
//   - result: "hit" (repeat, suppressed) or "miss" (new, delivered)
var NotificationsThrottledTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_throttled_total",
		Help:      "Total number of notification throttle checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// NotificationsQueueDepth tracks the current number of notifications waiting
// in each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var NotificationsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notifications_queue_depth",
		Help:      "Current number of notifications pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// NotificationDeliveryDuration measures how long a single notification takes
// from dequeue to persistence.
// Label:
//   - result: "ok" or "error"
var NotificationDeliveryDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "notification_delivery_duration_seconds",
		Help:      "Duration of notification delivery from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"result"},
)
