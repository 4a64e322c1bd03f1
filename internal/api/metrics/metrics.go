// Package metrics defines and registers all custom Prometheus metrics for the
// back-office API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "backoffice"

// ── Reminder worker metrics ───────────────────────────────────────────────────

// RemindersPublishedTotal counts due-date reminders published to the inbox.
// Label:
//   - scope: "global" for company-wide documents, "concession" otherwise
var RemindersPublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reminders_published_total",
		Help:      "Total number of due-date reminders published.",
	},
	[]string{"scope"},
)

// ReminderDedupTotal counts deduplication decisions made by the reminder worker.
// Label:
//   - result: "hit" (already reminded today, skipped) or "miss" (published)
var ReminderDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reminder_dedup_total",
		Help:      "Total number of reminder deduplication checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ReminderScanDuration measures how long one reminder scan pass takes.
var ReminderScanDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "reminder_scan_duration_seconds",
		Help:      "Duration of a full reminder scan pass.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ── Payroll metrics ───────────────────────────────────────────────────────────

// PayrollCreatedTotal counts recorded payroll payments.
// Label:
//   - method: "cash" or "transfer"
var PayrollCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payroll_created_total",
		Help:      "Total number of payroll payments recorded, by method.",
	},
	[]string{"method"},
)

// PayerLookupsTotal counts current-payer resolutions.
// Label:
//   - result: "found" or "none"
var PayerLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payer_lookups_total",
		Help:      "Total number of weekly payer lookups, by resolution result.",
	},
	[]string{"result"},
)
