// Package metrics holds the Prometheus collectors for the ask pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "memberqa"

var (
	// asksTotal counts answered questions by intent and outcome.
	asksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "asks_total",
		Help:      "Total asks by intent and outcome",
	}, []string{"intent", "outcome"})

	askDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "ask_duration_seconds",
		Help:      "End-to-end ask latency including corpus load and completion",
		Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
	})

	// completionCallsTotal counts completion fallback calls.
	// Labels: status (answered, abstained, failed)
	completionCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "completion",
		Name:      "calls_total",
		Help:      "Total completion fallback calls by status",
	}, []string{"status"})

	// corpusFetchTotal counts upstream corpus fetches.
	// Labels: status (ok, error)
	corpusFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "corpus",
		Name:      "fetch_total",
		Help:      "Total corpus fetches from the messages API by status",
	}, []string{"status"})
)

const (
	CompletionAnswered  = "answered"
	CompletionAbstained = "abstained"
	CompletionFailed    = "failed"
)

func RecordAsk(intent, outcome string, elapsed time.Duration) {
	asksTotal.WithLabelValues(intent, outcome).Inc()
	askDurationSeconds.Observe(elapsed.Seconds())
}

func RecordCompletion(status string) {
	completionCallsTotal.WithLabelValues(status).Inc()
}

func RecordCorpusFetch(err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	corpusFetchTotal.WithLabelValues(status).Inc()
}
