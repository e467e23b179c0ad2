// Package metrics provides centralized Prometheus metrics for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track request patterns and performance.
var (
	// HTTPRequestsTotal counts HTTP requests by method, path and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// Business metrics track the generation and news pipelines.
var (
	// PostsGeneratedTotal counts generation requests by outcome.
	PostsGeneratedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "posts_generated_total",
			Help: "Total number of post generation attempts",
		},
		[]string{"status"},
	)

	// PostGenerationDuration measures upstream generation call latency.
	PostGenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "post_generation_duration_seconds",
			Help:    "Duration of post generation LLM calls in seconds",
			Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60},
		},
	)

	// NewsSearchesTotal counts news search runs by outcome.
	NewsSearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_searches_total",
			Help: "Total number of news search runs",
		},
		[]string{"status"},
	)

	// NewsItemsSavedTotal counts news items written to the store.
	NewsItemsSavedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "news_items_saved_total",
			Help: "Total number of news items persisted",
		},
	)

	// NewsItemSaveFailuresTotal counts per-item write failures. Failures
	// here never fail the originating request.
	NewsItemSaveFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "news_item_save_failures_total",
			Help: "Total number of failed news item writes",
		},
	)

	// ScheduledSearchRunsTotal counts worker cron runs by outcome.
	ScheduledSearchRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scheduled_search_runs_total",
			Help: "Total number of scheduled news search runs",
		},
		[]string{"status"},
	)
)
