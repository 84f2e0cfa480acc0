package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recommendation pipeline metrics.
var (
	PassDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recommend_pass_duration_seconds",
			Help:      "Fetch and score duration of one record-type pass",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"type"},
	)

	CandidatesScored = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommend_candidates_scored_total",
			Help:      "Records scored against a query",
		},
		[]string{"type"},
	)

	MatchesKept = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommend_matches_kept_total",
			Help:      "Records returned after threshold and truncation",
		},
		[]string{"type"},
	)

	QueryTokens = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommend_query_tokens_total",
			Help:      "Query tokens by assigned category",
		},
		[]string{"category"},
	)

	StoreErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_errors_total",
			Help:      "Failed store fetches by record type",
		},
		[]string{"type"},
	)
)

var registerOnce sync.Once

// RegisterRecommendMetrics registers the recommendation metrics. Safe to call more than once.
func RegisterRecommendMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(PassDuration, CandidatesScored, MatchesKept, QueryTokens, StoreErrors)
	})
}

// ObservePass records one completed record-type pass.
func ObservePass(recordType string, d time.Duration, scored, kept int) {
	PassDuration.WithLabelValues(recordType).Observe(d.Seconds())
	CandidatesScored.WithLabelValues(recordType).Add(float64(scored))
	MatchesKept.WithLabelValues(recordType).Add(float64(kept))
}
