// Package metrics exposes Prometheus instruments for the signup service.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"signupservice/internal/domain"
)

const namespace = "signup_service"

type Metrics struct {
	signups    *prometheus.CounterVec
	leaves     *prometheus.CounterVec
	rejections *prometheus.CounterVec
	events     *prometheus.CounterVec
	requests   *prometheus.HistogramVec
}

// New registers all instruments on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		signups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "roster",
			Name:      "signups_total",
			Help:      "Successful activity signups.",
		}, []string{"activity"}),
		leaves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "roster",
			Name:      "leaves_total",
			Help:      "Participants removed from an activity.",
		}, []string{"activity"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "roster",
			Name:      "rejections_total",
			Help:      "Join or leave requests rejected by the roster.",
		}, []string{"op", "code"}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "events",
			Name:      "dispatched_total",
			Help:      "Roster events handled by the async event bus.",
		}, []string{"type"}),
		requests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	reg.MustRegister(m.signups, m.leaves, m.rejections, m.events, m.requests)
	return m
}

func (m *Metrics) Joined(activity string) {
	m.signups.WithLabelValues(activity).Inc()
}

func (m *Metrics) Left(activity string) {
	m.leaves.WithLabelValues(activity).Inc()
}

func (m *Metrics) Rejected(op string, code domain.ErrorCode) {
	m.rejections.WithLabelValues(op, string(code)).Inc()
}

func (m *Metrics) EventDispatched(t domain.EventType) {
	m.events.WithLabelValues(string(t)).Inc()
}

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
