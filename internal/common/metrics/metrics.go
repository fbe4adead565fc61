// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ActionsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_actions_completed_total",
			Help: "Total number of actions completed",
		},
		[]string{"action"},
	)

	ActionsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_actions_failed_total",
			Help: "Total number of actions that degraded into an apology",
		},
		[]string{"action", "error_code"},
	)

	ActionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "assistant_action_duration_seconds",
			Help:    "Duration of action handling in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"action"},
	)

	ActionsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "assistant_actions_active",
			Help: "Number of actions currently running",
		},
		[]string{"action"},
	)

	CatalogueRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_catalogue_requests_total",
			Help: "Requests sent to the vaccine catalogue API by outcome",
		},
		[]string{"endpoint", "outcome"},
	)

	FactCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_fact_cache_lookups_total",
			Help: "Remote fact cache lookups by result",
		},
		[]string{"result"},
	)

	FactSources = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_fact_source_total",
			Help: "Where fetched vaccine facts came from",
		},
		[]string{"source"},
	)

	OutOfScopeQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_out_of_scope_queries_total",
			Help: "Out-of-scope queries by recording outcome",
		},
		[]string{"outcome"},
	)

	TurnsHandled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_turns_total",
			Help: "Conversation turns handled by entry point",
		},
		[]string{"entry"},
	)
)
