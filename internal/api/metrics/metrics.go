// Package metrics defines all custom Prometheus metrics for the consultancy
// API. It is the single source of truth for metric names, labels, and help
// strings; metrics register themselves with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "consultancy"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts authentication operations by outcome.
// Labels:
//   - operation: "register", "login", "refresh", "logout", "verify"
//   - outcome: "success" or "failure"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of authentication operations, by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

// BlacklistChecksTotal counts request-gate blacklist lookups.
// Label:
//   - result: "hit" (token revoked, request rejected) or "miss"
var BlacklistChecksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "blacklist_checks_total",
		Help:      "Total number of token blacklist lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ── Mail metrics ──────────────────────────────────────────────────────────────

// MailQueueDepth tracks emails waiting in each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var MailQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "mail_queue_depth",
		Help:      "Current number of emails pending in each mail dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// MailSentTotal counts emails delivered successfully.
var MailSentTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mail_sent_total",
		Help:      "Total number of emails delivered.",
	},
)

// MailFailedTotal counts emails abandoned after exhausting retries.
var MailFailedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mail_failed_total",
		Help:      "Total number of emails abandoned after all delivery attempts failed.",
	},
)

// MailDroppedTotal counts emails dropped because a worker queue was full.
var MailDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mail_dropped_total",
		Help:      "Total number of emails dropped at enqueue time due to a full worker queue.",
	},
)
