package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// SourceAttempts counts balance-source attempts by source identifier.
	SourceAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "advisor",
			Name:      "balance_source_attempts_total",
			Help:      "Number of balance fetch attempts per source.",
		},
		[]string{"source"},
	)

	// SourceFailures counts failed balance-source attempts by source.
	SourceFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "advisor",
			Name:      "balance_source_failures_total",
			Help:      "Number of failed balance fetch attempts per source.",
		},
		[]string{"source"},
	)

	// AnalysesTotal counts completed analyses by outcome (success, invalid_address, exhausted).
	AnalysesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "advisor",
			Name:      "analyses_total",
			Help:      "Number of wallet analyses by outcome.",
		},
		[]string{"outcome"},
	)

	// AnalysisDuration observes end-to-end analysis latency.
	AnalysisDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "advisor",
			Name:      "analysis_duration_seconds",
			Help:      "Wallet analysis duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
	)

	// ChatMessages counts inbound chat messages by envelope type.
	ChatMessages = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "advisor",
			Name:      "chat_messages_total",
			Help:      "Number of inbound chat messages by type.",
		},
		[]string{"type"},
	)
)

// MustRegisterMetrics registers every collector on the default registry.
// Call once from main before the server starts.
func MustRegisterMetrics() {
	prometheus.MustRegister(
		SourceAttempts,
		SourceFailures,
		AnalysesTotal,
		AnalysisDuration,
		ChatMessages,
	)
}
