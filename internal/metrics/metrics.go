// Package metrics exposes Prometheus instrumentation for the service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	VerificationsTotal   *prometheus.CounterVec
	CacheEventsTotal     *prometheus.CounterVec
	EvidenceItemsTotal   *prometheus.CounterVec
	ModelRequestDuration *prometheus.HistogramVec

	registry *prometheus.Registry
}

func New() *Metrics {
	return newWith(prometheus.DefaultRegisterer, nil)
}

// NewWith registers against a private registry; tests use this to avoid
// duplicate-registration panics on the global one.
func NewWith(reg *prometheus.Registry) *Metrics {
	return newWith(reg, reg)
}

func newWith(reg prometheus.Registerer, registry *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		VerificationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "veritas_verifications_total",
			Help: "Completed verifications by verdict and evidence mode",
		}, []string{"verdict", "mode"}),

		CacheEventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "veritas_cache_events_total",
			Help: "Verdict cache lookups by outcome (hit, miss, error)",
		}, []string{"event"}),

		EvidenceItemsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "veritas_evidence_items_total",
			Help: "Evidence items attached to verdicts by credibility label",
		}, []string{"credibility"}),

		ModelRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "veritas_model_request_duration_seconds",
			Help:    "Latency of generative model calls",
			Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 30, 60},
		}, []string{"provider"}),

		registry: registry,
	}
}

// Handler serves the Prometheus exposition endpoint backed by whichever
// registry the metrics were registered into.
func (m *Metrics) Handler() http.Handler {
	if m.registry != nil {
		return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	}
	return promhttp.Handler()
}
