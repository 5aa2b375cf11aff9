// SPDX-License-Identifier: MIT

package server

import (
	"time"

	"github.com/katalvlaran/stoich"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "stoich"
	kindOK           = "ok"
)

// Metrics holds the balance endpoint collectors.
type Metrics struct {
	requests *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewMetrics creates and registers the collectors on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "balance_requests_total",
			Help:      "Balance requests by outcome kind.",
		}, []string{"kind"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "balance_duration_seconds",
			Help:      "Time spent parsing and balancing one equation.",
			Buckets:   prometheus.ExponentialBuckets(0.00005, 4, 8),
		}),
	}
	for _, c := range []prometheus.Collector{m.requests, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	// Pre-create every label so dashboards see zeros.
	m.requests.WithLabelValues(kindOK)
	for _, k := range stoich.Kinds() {
		m.requests.WithLabelValues(k.String())
	}

	return m, nil
}

// observe records one balance attempt; err nil counts as "ok".
func (m *Metrics) observe(elapsed time.Duration, err error) {
	kind := kindOK
	if err != nil {
		kind = stoich.KindOf(err).String()
	}
	m.requests.WithLabelValues(kind).Inc()
	m.duration.Observe(elapsed.Seconds())
}
