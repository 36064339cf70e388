package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// ShopMetrics records cart and checkout activity.
type ShopMetrics struct {
	cartOps   *prometheus.CounterVec
	checkouts *prometheus.CounterVec
}

// NewShopMetrics registers the storefront metrics on the provided registerer.
func NewShopMetrics(reg prometheus.Registerer) *ShopMetrics {
	if reg == nil {
		return &ShopMetrics{}
	}
	cartOps := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_operations_total",
		Help: "Cart mutations by operation.",
	}, []string{"operation"})
	checkouts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_attempts_total",
		Help: "Checkout submissions by outcome.",
	}, []string{"outcome"})
	reg.MustRegister(cartOps, checkouts)
	return &ShopMetrics{
		cartOps:   cartOps,
		checkouts: checkouts,
	}
}

// IncCartOp increments the counter for the named cart operation.
func (m *ShopMetrics) IncCartOp(operation string) {
	if m == nil || m.cartOps == nil {
		return
	}
	m.cartOps.WithLabelValues(normalizeLabel(operation)).Inc()
}

// IncCheckout increments the counter for the given checkout outcome.
func (m *ShopMetrics) IncCheckout(outcome string) {
	if m == nil || m.checkouts == nil {
		return
	}
	m.checkouts.WithLabelValues(normalizeLabel(outcome)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
