// Package metrics exposes Prometheus collectors for the ledger service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

const namespace = "groupledger"

// Metrics owns a private registry so tests can create isolated instances.
type Metrics struct {
	registry *prometheus.Registry

	entriesRecorded *prometheus.CounterVec
	amountRecorded  *prometheus.CounterVec
	entriesRejected *prometheus.CounterVec
	settlements     *prometheus.CounterVec
	rpcDuration     *prometheus.HistogramVec
}

// New creates the collectors and registers them, together with the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		entriesRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entries_recorded_total",
			Help:      "Ledger entries appended, by kind.",
		}, []string{"kind"}),
		amountRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "amount_recorded_total",
			Help:      "Sum of recorded entry amounts, by kind.",
		}, []string{"kind"}),
		entriesRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entries_rejected_total",
			Help:      "Record requests rejected before reaching the ledger, by kind and reason.",
		}, []string{"kind", "reason"}),
		settlements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settlements_total",
			Help:      "Balance computations, by outcome.",
		}, []string{"outcome"}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "RPC latency, by procedure and code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure", "code"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.entriesRecorded,
		m.amountRecorded,
		m.entriesRejected,
		m.settlements,
		m.rpcDuration,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// EntryRecorded counts an appended entry and its amount.
func (m *Metrics) EntryRecorded(kind string, amount decimal.Decimal) {
	m.entriesRecorded.WithLabelValues(kind).Inc()
	m.amountRecorded.WithLabelValues(kind).Add(amount.InexactFloat64())
}

// EntryRejected counts a record request that failed validation.
func (m *Metrics) EntryRejected(kind, reason string) {
	m.entriesRejected.WithLabelValues(kind, reason).Inc()
}

// SettlementComputed counts a balance computation by outcome
// ("settled" or "no_members").
func (m *Metrics) SettlementComputed(outcome string) {
	m.settlements.WithLabelValues(outcome).Inc()
}

// ObserveRPC records the latency of one RPC.
func (m *Metrics) ObserveRPC(procedure, code string, d time.Duration) {
	m.rpcDuration.WithLabelValues(procedure, code).Observe(d.Seconds())
}
