package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce             sync.Once
	contactSubmissionsTotal  *prometheus.CounterVec
	channelDeliveriesTotal   *prometheus.CounterVec
	requestLatencySeconds    *prometheus.HistogramVec
	verificationChecksTotal  *prometheus.CounterVec
)

// RegisterMetrics initialises the Prometheus collectors used by the gateway.
func RegisterMetrics() {
	registerOnce.Do(func() {
		contactSubmissionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "contact_submissions_total",
			Help: "Total number of contact submissions by final result.",
		}, []string{"result"})

		channelDeliveriesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "contact_channel_deliveries_total",
			Help: "Per-channel notification delivery outcomes.",
		}, []string{"channel", "outcome"})

		requestLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "contact_request_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0, 5.0},
		}, []string{"method", "route"})

		verificationChecksTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "contact_verification_checks_total",
			Help: "Bot-verification check outcomes.",
		}, []string{"outcome"})

		prometheus.MustRegister(contactSubmissionsTotal, channelDeliveriesTotal, requestLatencySeconds, verificationChecksTotal)
	})
}

// ContactSubmissions exposes the counter for submission results.
func ContactSubmissions() *prometheus.CounterVec {
	RegisterMetrics()
	return contactSubmissionsTotal
}

// ChannelDeliveries exposes the per-channel delivery outcome counter.
func ChannelDeliveries() *prometheus.CounterVec {
	RegisterMetrics()
	return channelDeliveriesTotal
}

// RequestLatency exposes the latency histogram for API requests.
func RequestLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return requestLatencySeconds
}

// VerificationChecks exposes the counter for bot-verification outcomes.
func VerificationChecks() *prometheus.CounterVec {
	RegisterMetrics()
	return verificationChecksTotal
}
