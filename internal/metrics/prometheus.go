package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the maintenance service

var (
	// Integrity check metrics
	IntegrityChecksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nba_integrity_checks_total",
			Help: "Total number of integrity check sessions",
		},
		[]string{"status"},
	)

	IntegrityCheckDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "nba_integrity_check_duration_seconds",
			Help:    "Duration of integrity check sessions in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	DiscrepanciesFound = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "nba_integrity_discrepancies",
			Help: "Discrepancies found by the most recent check, by table",
		},
		[]string{"table"},
	)

	NearDuplicateNames = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "nba_integrity_similar_names",
			Help: "Near-duplicate name pairs found by the most recent check",
		},
	)

	// Name conversion metrics
	NamesCleanedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nba_names_cleaned_total",
			Help: "Total names passed through the converter, by outcome",
		},
		[]string{"outcome"},
	)

	NameUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nba_name_updates_total",
			Help: "Total name-update statements executed, by table and status",
		},
		[]string{"table", "status"},
	)

	// Database metrics
	DBQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nba_db_queries_total",
			Help: "Total number of database queries",
		},
		[]string{"operation", "table", "status"},
	)

	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nba_db_query_duration_seconds",
			Help:    "Duration of database queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	// Cache metrics
	CacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nba_cache_hits_total",
			Help: "Total number of reference-data cache hits",
		},
	)

	CacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nba_cache_misses_total",
			Help: "Total number of reference-data cache misses",
		},
	)

	// System metrics
	SystemUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "nba_system_uptime_seconds",
			Help: "Uptime of the maintenance worker in seconds",
		},
	)
)
