// Package metrics registers the Prometheus instruments for the ledger core.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// JournalEntriesPosted counts successfully persisted journal entries by
	// reference type.
	JournalEntriesPosted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_journal_entries_posted_total",
		Help: "Total journal entries durably posted",
	}, []string{"reference_type"})

	// JournalPostFailures counts rejected or failed posting attempts.
	JournalPostFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_journal_post_failures_total",
		Help: "Total journal posting attempts that were rejected or failed",
	}, []string{"reason"})

	// RepairedEntries counts entries backfilled by the repair service.
	RepairedEntries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_repaired_entries_total",
		Help: "Total journal entries backfilled by repair runs",
	}, []string{"reference_type"})

	// CleanedEntries counts orphaned entries removed by cleanup runs.
	CleanedEntries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ledger_cleaned_orphan_entries_total",
		Help: "Total orphaned journal entries removed by cleanup runs",
	})

	// StatementCacheHits / StatementCacheMisses track the statement cache.
	StatementCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_statement_cache_hits_total",
		Help: "Statement cache hits",
	}, []string{"kind"})
	StatementCacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_statement_cache_misses_total",
		Help: "Statement cache misses",
	}, []string{"kind"})

	// StatementLatency times statement derivation, cache misses only.
	StatementLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ledger_statement_build_duration_seconds",
		Help:    "Statement derivation latency on cache miss",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	}, []string{"kind"})
)
