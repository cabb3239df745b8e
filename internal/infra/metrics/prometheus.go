package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "limited_drop"

type Metrics struct {
	checkouts        *prometheus.CounterVec
	phaseTransitions *prometheus.CounterVec
	escrowRequests   *prometheus.CounterVec
	waitlistJoins    prometheus.Counter

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		checkouts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "checkout_outcomes_total",
				Help:      "Checkout attempts by outcome",
			},
			[]string{"result"},
		),
		phaseTransitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "phase_transitions_total",
				Help:      "Product phase transitions",
			},
			[]string{"from", "to"},
		),
		escrowRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "escrow_requests_processed_total",
				Help:      "Matured echo requests processed by action",
			},
			[]string{"action"},
		),
		waitlistJoins: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "waitlist_joins_total",
				Help:      "Successful waitlist joins",
			},
		),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}

	reg.MustRegister(
		m.checkouts,
		m.phaseTransitions,
		m.escrowRequests,
		m.waitlistJoins,
		m.HTTPRequests,
		m.HTTPDuration,
	)
	return m
}

func (m *Metrics) CheckoutOutcome(result string) {
	m.checkouts.WithLabelValues(result).Inc()
}

func (m *Metrics) PhaseTransition(from, to string) {
	m.phaseTransitions.WithLabelValues(from, to).Inc()
}

func (m *Metrics) EscrowProcessed(action string, requests int) {
	m.escrowRequests.WithLabelValues(action).Add(float64(requests))
}

func (m *Metrics) WaitlistJoined() {
	m.waitlistJoins.Inc()
}

func (m *Metrics) ObserveHTTP(method, path string, status int, seconds float64) {
	m.HTTPRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, path).Observe(seconds)
}
