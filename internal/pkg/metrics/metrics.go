// Package metrics exposes prometheus instrumentation for the fulfillment
// engine and its HTTP adapter.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// FulfillmentMetrics counts the outcomes of the engine's transactional
// operations. Counters are incremented by the HTTP adapter after each command
// completes, never inside the transaction itself.
type FulfillmentMetrics struct {
	OrdersCreated     prometheus.Counter
	OrdersCancelled   prometheus.Counter
	InsufficientStock prometheus.Counter
	HTTPRequests      *prometheus.CounterVec
	HTTPLatencyMS     *prometheus.HistogramVec
}

// NewFulfillmentMetrics registers and returns the service's metric set.
// Panics on duplicate registration, so call it once from the composition root.
func NewFulfillmentMetrics(registry prometheus.Registerer) *FulfillmentMetrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	m := &FulfillmentMetrics{
		OrdersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pedidos",
			Name:      "orders_created_total",
			Help:      "Total number of orders created with items.",
		}),
		OrdersCancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pedidos",
			Name:      "orders_cancelled_total",
			Help:      "Total number of orders cancelled with stock restoration.",
		}),
		InsufficientStock: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pedidos",
			Name:      "insufficient_stock_rejections_total",
			Help:      "Total number of order creations rejected for insufficient stock.",
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pedidos",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"handler", "status"}),
		HTTPLatencyMS: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pedidos",
			Name:      "http_request_duration_ms",
			Help:      "HTTP request latency in milliseconds.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}, []string{"handler"}),
	}

	registry.MustRegister(
		m.OrdersCreated,
		m.OrdersCancelled,
		m.InsufficientStock,
		m.HTTPRequests,
		m.HTTPLatencyMS,
	)
	return m
}

// ObserveHTTPRequest records one served request in the counter and latency
// histogram, labelled by route pattern.
func (m *FulfillmentMetrics) ObserveHTTPRequest(handler string, status int, elapsed time.Duration) {
	m.HTTPRequests.WithLabelValues(handler, strconv.Itoa(status)).Inc()
	m.HTTPLatencyMS.WithLabelValues(handler).Observe(float64(elapsed.Milliseconds()))
}

// Handler returns the HTTP handler serving the /metrics scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
