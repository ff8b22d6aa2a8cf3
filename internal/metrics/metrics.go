// Package metrics defines the Prometheus collectors for scoring, optimization and the API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jonathan/resume-optimizer/internal/types"
)

const namespace = "resume_optimizer"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	CompositeScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "composite_score",
			Help:      "Distribution of composite ATS scores",
			Buckets:   prometheus.LinearBuckets(10, 10, 10),
		},
	)

	ChangesProposed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "changes_proposed_total",
			Help:      "Total number of proposed changes by kind",
		},
		[]string{"kind"},
	)

	Optimizations = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "optimizations_total",
			Help:      "Total number of optimization runs",
		},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "score_cache_lookups_total",
			Help:      "Score cache lookups by result (hit, miss, error)",
		},
		[]string{"result"},
	)

	PostingFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "posting_fetches_total",
			Help:      "Job posting fetches by source and outcome",
		},
		[]string{"source", "outcome"},
	)

	RateLimited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_requests_total",
			Help:      "Requests rejected by the rate limiter",
		},
		[]string{"route"},
	)
)

// ObserveScore records the composite score of a report
func ObserveScore(report types.ScoreReport) {
	CompositeScore.Observe(report.Breakdown.Composite)
}

// ObserveOptimization records one optimization run and its change counts
func ObserveOptimization(result *types.OptimizationResult) {
	if result == nil {
		return
	}
	Optimizations.Inc()
	CompositeScore.Observe(result.OriginalScore)
	for _, c := range result.Changes {
		ChangesProposed.WithLabelValues(string(c.Kind)).Inc()
	}
}

// ObserveRequest records one served HTTP request
func ObserveRequest(method, route string, status int, elapsed time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler exposes the default registry in the Prometheus text format
func Handler() http.Handler {
	return promhttp.Handler()
}
