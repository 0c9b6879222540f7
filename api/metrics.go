package api

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "indexadvisor"

var (
	// requestDuration tracks HTTP request latency by route
	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route, method and status code",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route", "method", "code"},
	)

	// recommendationsTotal tracks recommendations served by index family
	recommendationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "recommendations_total",
			Help:      "Recommendations served by index family",
		},
		[]string{"family"},
	)

	// validationsTotal tracks parameter validations by outcome
	validationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "validations_total",
			Help:      "Parameter validations by outcome",
		},
		[]string{"status"},
	)
)

var registerMetricsOnce sync.Once

// registerMetrics registers the API metrics with the default registry.
// Safe to call from every NewServer; registration happens once.
func registerMetrics() {
	registerMetricsOnce.Do(func() {
		prometheus.MustRegister(requestDuration)
		prometheus.MustRegister(recommendationsTotal)
		prometheus.MustRegister(validationsTotal)
	})
}
