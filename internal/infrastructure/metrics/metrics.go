// Package metrics exposes Prometheus metrics for the quoting service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Pricing engine metrics
	QuotesPriced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quote_pricing_total",
			Help: "Total number of instant-quote pricing attempts",
		},
		[]string{"outcome"},
	)

	PricingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "quote_pricing_duration_seconds",
			Help:    "Time taken to resolve inputs and compute a price",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
	)

	PaymentsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quote_payments_total",
			Help: "Total number of payments taken against quotes",
		},
		[]string{"status"},
	)
)

// Pricing outcome label values.
const (
	OutcomePriced      = "priced"
	OutcomeUnpriceable = "unpriceable"
	OutcomeError       = "error"
)

// ObservePricing records one pricing attempt.
func ObservePricing(outcome string, start time.Time) {
	QuotesPriced.WithLabelValues(outcome).Inc()
	PricingDuration.Observe(time.Since(start).Seconds())
}
