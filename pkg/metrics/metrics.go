package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Dispatcher holds Prometheus metrics for the domain event dispatcher. A nil
// *Dispatcher is valid and records nothing.
type Dispatcher struct {
	// EventsNotified is the total number of notify calls that reached at
	// least one handler.
	EventsNotified *prometheus.CounterVec

	// HandlerCalls is the total number of handler invocations.
	HandlerCalls *prometheus.CounterVec

	// HandlerDuration is the time spent inside handlers.
	HandlerDuration *prometheus.HistogramVec
}

func NewDispatcher(reg prometheus.Registerer, namespace string) *Dispatcher {
	factory := promauto.With(reg)

	return &Dispatcher{
		EventsNotified: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "events_notified_total",
				Help:      "Total number of dispatched domain events",
			},
			[]string{"event"},
		),

		HandlerCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "event_handler_calls_total",
				Help:      "Total number of event handler invocations",
			},
			[]string{"event", "handler", "status"},
		),

		HandlerDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "event_handler_duration_seconds",
				Help:      "Time spent in event handlers",
				Buckets:   []float64{.0001, .001, .01, .05, .1, .5, 1, 5},
			},
			[]string{"event"},
		),
	}
}

func (m *Dispatcher) Notified(event string) {
	if m == nil {
		return
	}

	m.EventsNotified.WithLabelValues(event).Inc()
}

func (m *Dispatcher) ObserveHandler(event, handler string, took time.Duration, err error) {
	if m == nil {
		return
	}

	status := StatusSuccess
	if err != nil {
		status = StatusFailure
	}

	m.HandlerCalls.WithLabelValues(event, handler, status).Inc()
	m.HandlerDuration.WithLabelValues(event).Observe(took.Seconds())
}
