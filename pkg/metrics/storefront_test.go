package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestStorefrontMetricsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewStorefrontMetrics(reg)

	m.IncOrderCreated()
	m.IncOrderCreated()
	m.IncWebhookEvent("checkout.session.completed", "paid")
	m.IncWebhookEvent("", "")
	m.IncEmail("sent")

	require.Equal(t, float64(2), testutil.ToFloat64(m.ordersCreated))
	require.Equal(t, float64(1), testutil.ToFloat64(m.webhookEvents.WithLabelValues("checkout.session.completed", "paid")))
	require.Equal(t, float64(1), testutil.ToFloat64(m.webhookEvents.WithLabelValues("unknown", "unknown")))
	require.Equal(t, float64(1), testutil.ToFloat64(m.emails.WithLabelValues("sent")))
}

func TestStorefrontMetricsNilRegisterer(t *testing.T) {
	m := NewStorefrontMetrics(nil)
	require.NotPanics(t, func() {
		m.IncOrderCreated()
		m.IncWebhookEvent("x", "y")
		m.IncEmail("sent")
	})
	var missing *StorefrontMetrics
	require.NotPanics(t, func() { missing.IncOrderCreated() })
}
