package metrics

import "github.com/prometheus/client_golang/prometheus"

// WebhookMetrics exposes counters/histograms for fulfillment webhook traffic.
type WebhookMetrics struct {
	requestsTotal  *prometheus.CounterVec
	recordsTotal   *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

func NewWebhookMetrics(reg prometheus.Registerer) *WebhookMetrics {
	m := &WebhookMetrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fulfillment",
			Subsystem: "webhook",
			Name:      "requests_total",
			Help:      "Total fulfillment webhook requests by branch",
		}, []string{"branch"}),
		recordsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fulfillment",
			Subsystem: "webhook",
			Name:      "conversation_records_total",
			Help:      "Total support conversation persist attempts",
		}, []string{"status"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "fulfillment",
			Subsystem: "webhook",
			Name:      "request_latency_seconds",
			Help:      "Latency of fulfillment webhook processing",
			Buckets:   prometheus.DefBuckets,
		}, []string{"branch"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsTotal, m.recordsTotal, m.requestLatency)
	return m
}

func (m *WebhookMetrics) ObserveRequest(branch string, seconds float64) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(branch).Inc()
	m.requestLatency.WithLabelValues(branch).Observe(seconds)
}

func (m *WebhookMetrics) ObserveRecord(status string) {
	if m == nil {
		return
	}
	m.recordsTotal.WithLabelValues(status).Inc()
}
