package mux

import (
	"handstrength-server/pkg/poker"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	registry        *prometheus.Registry
	evaluations     *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// newMetrics returns metrics on a registry owned by a single mux
func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "handstrength",
			Name:      "evaluations_total",
			Help:      "Number of evaluated hands by category",
		}, []string{"category"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "handstrength",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests by route",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12),
		}, []string{"route"}),
	}

	m.registry.MustRegister(m.evaluations, m.requestDuration)

	// every category is exported, even at zero
	for _, c := range poker.Categories {
		m.evaluations.WithLabelValues(c.String())
	}

	return m
}

func (m *metrics) observeScore(score poker.Score) {
	m.evaluations.WithLabelValues(score.Category().String()).Inc()
}
