// Package metrics defines the service's prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the prometheus collectors shared across the service.
type Metrics struct {
	CacheHits     prometheus.Counter
	CacheMisses   prometheus.Counter
	StaleServes   prometheus.Counter
	SourceFetches *prometheus.CounterVec
	Conversions   prometheus.Counter
}

// NewMetrics registers the service collectors with reg and returns them.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		CacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "rate_cache_hits_total",
			Help: "Total number of rate table cache hits",
		}),
		CacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "rate_cache_misses_total",
			Help: "Total number of rate table cache misses",
		}),
		StaleServes: factory.NewCounter(prometheus.CounterOpts{
			Name: "rate_stale_serves_total",
			Help: "Total number of quotes served from an expired table after a failed refresh",
		}),
		SourceFetches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rate_source_fetches_total",
			Help: "Total number of external rate fetches by source and outcome",
		}, []string{"source", "outcome"}),
		Conversions: factory.NewCounter(prometheus.CounterOpts{
			Name: "conversions_total",
			Help: "Total number of currency conversions performed",
		}),
	}
}
