package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the storefront. A nil *Metrics is
// valid and records nothing, so tests can pass nil instead of registering
// collectors against the default registry twice.
type Metrics struct {
	CartMutations    *prometheus.CounterVec
	CheckoutAttempts *prometheus.CounterVec
	CatalogLoads     *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		CartMutations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "medstore_cart_mutations_total",
			Help: "Cart mutations applied, by operation.",
		}, []string{"op"}),
		CheckoutAttempts: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "medstore_checkout_attempts_total",
			Help: "Checkout submissions, by outcome.",
		}, []string{"outcome"}),
		CatalogLoads: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "medstore_catalog_loads_total",
			Help: "Catalog loads from the sheet API, by outcome.",
		}, []string{"outcome"}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "medstore_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}

func (m *Metrics) IncCartMutation(op string) {
	if m == nil {
		return
	}
	m.CartMutations.WithLabelValues(op).Inc()
}

func (m *Metrics) IncCheckout(outcome string) {
	if m == nil {
		return
	}
	m.CheckoutAttempts.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncCatalogLoad(outcome string) {
	if m == nil {
		return
	}
	m.CatalogLoads.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveRequest(method, path string, seconds float64) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(method, path).Observe(seconds)
}
