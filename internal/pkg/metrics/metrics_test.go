//go:build unit

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := New()

	m.BookingCreated()
	m.BookingCreated()
	m.StatusChanged("confirmed")
	m.LoginFailed()
	m.ObserveRequest("POST", "/api/bookings", "201", 0.02)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.bookingsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.statusChanges.WithLabelValues("confirmed")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.statusChanges.WithLabelValues("rejected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.failedLogins))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("POST", "/api/bookings", "201")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.BookingCreated()
		m.StatusChanged("rejected")
		m.LoginFailed()
		m.ObserveRequest("GET", "/health", "200", 0.001)
	})
	assert.Nil(t, m.Registry())
}
