// Package metrics registers the Prometheus instruments for the budget
// engine. Counters are package-level so every layer shares one registration.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Ledger metrics
	EntriesCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gobudget_entries_created_total",
			Help: "Total ledger entries created by kind",
		},
		[]string{"kind"},
	)
	EntriesRemoved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gobudget_entries_removed_total",
			Help: "Total ledger entries removed by kind",
		},
		[]string{"kind"},
	)
	LimitUpdates = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gobudget_limit_updates_total",
		Help: "Total monthly limit updates",
	})

	// Strategy metrics
	ReportsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gobudget_reports_generated_total",
			Help: "Total reports generated by mode",
		},
		[]string{"mode"},
	)
	Predictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gobudget_predictions_total",
			Help: "Total expense predictions by mode",
		},
		[]string{"mode"},
	)
	Exports = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gobudget_exports_total",
			Help: "Total data exports by format",
		},
		[]string{"format"},
	)

	// Snapshot store metrics
	SnapshotSaves = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gobudget_snapshot_saves_total",
			Help: "Total snapshot save attempts by status",
		},
		[]string{"status"},
	)
)
