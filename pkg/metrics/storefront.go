package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// StorefrontMetrics records counters for the order and webhook pipeline.
type StorefrontMetrics struct {
	ordersCreated prometheus.Counter
	webhookEvents *prometheus.CounterVec
	emails        *prometheus.CounterVec
}

// NewStorefrontMetrics registers the storefront metrics on the provided registerer.
func NewStorefrontMetrics(reg prometheus.Registerer) *StorefrontMetrics {
	if reg == nil {
		return &StorefrontMetrics{}
	}
	ordersCreated := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_created_total",
		Help: "Order inquiries created through checkout.",
	})
	webhookEvents := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "stripe_webhook_events_total",
		Help: "Stripe webhook events by type and outcome.",
	}, []string{"type", "outcome"})
	emails := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "confirmation_emails_total",
		Help: "Order confirmation emails by result.",
	}, []string{"result"})
	reg.MustRegister(ordersCreated, webhookEvents, emails)
	return &StorefrontMetrics{
		ordersCreated: ordersCreated,
		webhookEvents: webhookEvents,
		emails:        emails,
	}
}

// IncOrderCreated increments the created-orders counter.
func (m *StorefrontMetrics) IncOrderCreated() {
	if m == nil || m.ordersCreated == nil {
		return
	}
	m.ordersCreated.Inc()
}

// IncWebhookEvent records a processed webhook event.
func (m *StorefrontMetrics) IncWebhookEvent(eventType, outcome string) {
	if m == nil || m.webhookEvents == nil {
		return
	}
	m.webhookEvents.WithLabelValues(normalizeLabel(eventType), normalizeLabel(outcome)).Inc()
}

// IncEmail records a confirmation email attempt.
func (m *StorefrontMetrics) IncEmail(result string) {
	if m == nil || m.emails == nil {
		return
	}
	m.emails.WithLabelValues(normalizeLabel(result)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
