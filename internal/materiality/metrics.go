package materiality

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics carries the data-quality signals emitted by the derivation engine.
// The business process assumes at most one contract and one invoice per
// proforma; when more rows show up the engine still resolves a status via
// its tie-breaks, but the anomaly is worth counting.
type Metrics struct {
	MultiRowContracts prometheus.Counter
	MultiRowInvoices  prometheus.Counter
}

func NewMetrics() *Metrics {
	return &Metrics{
		MultiRowContracts: promauto.NewCounter(prometheus.CounterOpts{
			Name: "materialidad_multirow_contracts_total",
			Help: "Proformas observed with more than one contract row",
		}),
		MultiRowInvoices: promauto.NewCounter(prometheus.CounterOpts{
			Name: "materialidad_multirow_invoices_total",
			Help: "Proformas observed with more than one invoice row",
		}),
	}
}

// A nil *Metrics disables emission, so the engine stays usable in tests and
// one-off tooling without a registry.

func (m *Metrics) ObserveMultiRowContracts() {
	if m == nil {
		return
	}

	m.MultiRowContracts.Inc()
}

func (m *Metrics) ObserveMultiRowInvoices() {
	if m == nil {
		return
	}

	m.MultiRowInvoices.Inc()
}
