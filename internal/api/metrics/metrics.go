// Package metrics defines and registers all custom Prometheus metrics for the
// job tracker API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default Prometheus registry at package init via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jobtracker"

// ApplicationsCreatedTotal counts newly created applications.
// Label:
//   - source: how the application entered the system ("api" or "csv_import")
var ApplicationsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_created_total",
		Help:      "Total number of applications created, by entry source.",
	},
	[]string{"source"},
)

// StageChangesTotal counts stage transitions.
// Label:
//   - new_stage: the stage the application moved to (e.g. "Interview")
var StageChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stage_changes_total",
		Help:      "Total number of application stage changes, by resulting stage.",
	},
	[]string{"new_stage"},
)

// CSVImportRowsTotal counts processed CSV import rows.
// Label:
//   - result: "imported" or "rejected"
var CSVImportRowsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "csv_import_rows_total",
		Help:      "Total number of CSV import rows processed, by result.",
	},
	[]string{"result"},
)

// RemindersSentTotal counts reminder emails by outcome.
// Label:
//   - result: "sent", "skipped" (already sent today) or "failed"
var RemindersSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reminders_sent_total",
		Help:      "Total number of daily reminder emails, by outcome.",
	},
	[]string{"result"},
)

// TimelineEventsTotal counts timeline events recorded alongside mutations.
// Label:
//   - event_type: "created", "updated", "stage_changed", "note_added",
//     "contact_added" or "file_added"
var TimelineEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "timeline_events_total",
		Help:      "Total number of timeline events recorded, by event type.",
	},
	[]string{"event_type"},
)
