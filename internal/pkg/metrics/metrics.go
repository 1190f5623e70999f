package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "event_registration"

const (
	OutcomeAdmitted   = "admitted"
	OutcomeWaitlisted = "waitlisted"
	OutcomeDuplicate  = "duplicate"
	OutcomeFailed     = "failed"
)

// Metrics owns its registry so tests can build isolated instances.
type Metrics struct {
	registry *prometheus.Registry

	admissions           *prometheus.CounterVec
	cancellations        *prometheus.CounterVec
	capacityReadErrors   *prometheus.CounterVec
	notificationFailures *prometheus.CounterVec
	notificationsDropped *prometheus.CounterVec
	notificationsSent    *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		admissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "admissions_total",
				Help:      "Count of admission decisions by event and outcome.",
			},
			[]string{"event", "outcome"},
		),
		cancellations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cancellations_total",
				Help:      "Count of successful self-service cancellations.",
			},
			[]string{"event"},
		),
		capacityReadErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "capacity_read_errors_total",
				Help:      "Count of occupancy reads answered with the degraded fallback.",
			},
			[]string{"event"},
		),
		notificationFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notification_failures_total",
				Help:      "Count of notification steps that failed after every retry.",
			},
			[]string{"kind", "step"},
		),
		notificationsDropped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notifications_dropped_total",
				Help:      "Count of notifications dropped because the queue was full or closed.",
			},
			[]string{"kind"},
		),
		notificationsSent: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notifications_sent_total",
				Help:      "Count of notification steps delivered.",
			},
			[]string{"kind", "step"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.admissions,
		m.cancellations,
		m.capacityReadErrors,
		m.notificationFailures,
		m.notificationsDropped,
		m.notificationsSent,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) RecordAdmission(event, outcome string) {
	m.admissions.WithLabelValues(event, outcome).Inc()
}

func (m *Metrics) RecordCancellation(event string) {
	m.cancellations.WithLabelValues(event).Inc()
}

func (m *Metrics) RecordCapacityReadError(event string) {
	m.capacityReadErrors.WithLabelValues(event).Inc()
}

func (m *Metrics) RecordNotificationFailure(kind, step string) {
	m.notificationFailures.WithLabelValues(kind, step).Inc()
}

func (m *Metrics) RecordNotificationDropped(kind string) {
	m.notificationsDropped.WithLabelValues(kind).Inc()
}

func (m *Metrics) RecordNotificationSent(kind, step string) {
	m.notificationsSent.WithLabelValues(kind, step).Inc()
}
