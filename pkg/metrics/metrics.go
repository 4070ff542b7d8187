package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "backend_resources"

var (
	KeycloakRequests = prometheus.NewCounterVec( // nolint: gochecknoglobals
		prometheus.CounterOpts{Namespace: namespace, Name: "keycloak_requests_total", Help: "Number of Keycloak admin API calls by operation and outcome."},
		[]string{"operation", "outcome"},
	)
	KeycloakRequestDuration = prometheus.NewHistogramVec( // nolint: gochecknoglobals
		prometheus.HistogramOpts{Namespace: namespace, Name: "keycloak_request_duration_seconds", Help: "Latency of Keycloak admin API calls.", Buckets: prometheus.DefBuckets},
		[]string{"operation"},
	)
	ErrorResponses = prometheus.NewCounterVec( // nolint: gochecknoglobals
		prometheus.CounterOpts{Namespace: namespace, Name: "error_responses_total", Help: "Number of error responses by HTTP status."},
		[]string{"status"},
	)
)

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(KeycloakRequests)
	reg.MustRegister(KeycloakRequestDuration)
	reg.MustRegister(ErrorResponses)
}

// ObserveKeycloakCall records the outcome and latency of one admin API call started at begin.
func ObserveKeycloakCall(operation string, begin time.Time, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	KeycloakRequests.WithLabelValues(operation, outcome).Inc()
	KeycloakRequestDuration.WithLabelValues(operation).Observe(time.Since(begin).Seconds())
}
