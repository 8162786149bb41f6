package metrics_test

import (
	"errors"
	"testing"
	"time"

	"github.com/dddlab/backend/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestDispatcherMetrics(t *testing.T) {
	m := metrics.NewDispatcher(prometheus.NewRegistry(), "test")

	m.Notified("CustomerCreatedEvent")
	m.Notified("CustomerCreatedEvent")
	m.ObserveHandler("CustomerCreatedEvent", "listeners.SendConsoleLog1Handler", time.Millisecond, nil)
	m.ObserveHandler("CustomerCreatedEvent", "listeners.SendConsoleLog1Handler", time.Millisecond, errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.EventsNotified.WithLabelValues("CustomerCreatedEvent")))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.HandlerCalls.WithLabelValues("CustomerCreatedEvent", "listeners.SendConsoleLog1Handler", metrics.StatusSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.HandlerCalls.WithLabelValues("CustomerCreatedEvent", "listeners.SendConsoleLog1Handler", metrics.StatusFailure)))
}

func TestNilDispatcherMetrics(t *testing.T) {
	var m *metrics.Dispatcher

	assert.NotPanics(t, func() {
		m.Notified("CustomerCreatedEvent")
		m.ObserveHandler("CustomerCreatedEvent", "h", time.Millisecond, nil)
	})
}
