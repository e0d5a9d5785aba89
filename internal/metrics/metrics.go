// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package metrics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tomtom215/reelmatch/internal/recommend"
	"github.com/tomtom215/reelmatch/internal/validation"
)

// Request outcomes used for the status label.
const (
	StatusSuccess  = "success"
	StatusInvalid  = "invalid"
	StatusCanceled = "canceled"
	StatusError    = "error"
)

var (
	// RecommendRequests counts recommendation requests by resolved strategy and outcome.
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total number of recommendation requests",
		},
		[]string{"strategy", "status"},
	)

	// RecommendDuration tracks end-to-end request latency.
	RecommendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_duration_seconds",
			Help:    "Duration of recommendation requests in seconds",
			Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"strategy"},
	)

	// RecommendResults tracks the number of recommendations returned.
	RecommendResults = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_results",
			Help:    "Number of recommendations returned per request",
			Buckets: []float64{0, 1, 5, 10, 20, 50, 100},
		},
		[]string{"strategy"},
	)

	// RecommendStrategySelections counts how requested strategies resolve.
	RecommendStrategySelections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_strategy_selections_total",
			Help: "Total number of strategy resolutions by requested and resolved strategy",
		},
		[]string{"requested", "resolved"},
	)

	// RecommendCandidates tracks candidate list sizes per source.
	RecommendCandidates = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_candidates",
			Help:    "Number of candidates produced per source",
			Buckets: []float64{0, 1, 5, 10, 20, 50, 100, 200},
		},
		[]string{"source"},
	)
)

// RecordRecommendation records a completed recommendation request.
func RecordRecommendation(strategy string, duration time.Duration, results int, err error) {
	status := statusOf(err)
	RecommendRequests.WithLabelValues(strategy, status).Inc()
	RecommendDuration.WithLabelValues(strategy).Observe(duration.Seconds())
	if err == nil {
		RecommendResults.WithLabelValues(strategy).Observe(float64(results))
	}
}

// RecordStrategySelection records how a requested strategy was resolved.
func RecordStrategySelection(requested, resolved string) {
	RecommendStrategySelections.WithLabelValues(requested, resolved).Inc()
}

// RecordCandidates records the size of a candidate list.
func RecordCandidates(source string, count int) {
	RecommendCandidates.WithLabelValues(source).Observe(float64(count))
}

func statusOf(err error) string {
	var verr *validation.RequestValidationError
	switch {
	case err == nil:
		return StatusSuccess
	case errors.As(err, &verr):
		return StatusInvalid
	case isCanceled(err):
		return StatusCanceled
	default:
		return StatusError
	}
}

func isCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// Recorder adapts the package-level metrics to recommend.Recorder.
type Recorder struct{}

// NewRecorder creates a Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// ObserveRecommendation implements recommend.Recorder.
func (r *Recorder) ObserveRecommendation(strategy string, duration time.Duration, results int, err error) {
	RecordRecommendation(strategy, duration, results, err)
}

// ObserveStrategySelection implements recommend.Recorder.
func (r *Recorder) ObserveStrategySelection(requested, resolved string) {
	RecordStrategySelection(requested, resolved)
}

// ObserveCandidates implements recommend.Recorder.
func (r *Recorder) ObserveCandidates(source string, count int) {
	RecordCandidates(source, count)
}

var _ recommend.Recorder = (*Recorder)(nil)

// WriteTextfile writes every metric of the default gatherer to path in the
// Prometheus text format, for collection by the node exporter textfile
// collector.
func WriteTextfile(path string) error {
	return WriteTextfileFrom(prometheus.DefaultGatherer, path)
}

// WriteTextfileFrom writes the metrics of g to path.
func WriteTextfileFrom(g prometheus.Gatherer, path string) error {
	if path == "" {
		return fmt.Errorf("metrics textfile path is empty")
	}
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
