package provider

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var _ RateSource = (*InstrumentedSource)(nil)

// InstrumentedSource counts fetch outcomes per source.
type InstrumentedSource struct {
	source  RateSource
	fetches *prometheus.CounterVec // labels: source, outcome
}

// NewInstrumentedSource wraps a source with fetch counting.
func NewInstrumentedSource(source RateSource, fetches *prometheus.CounterVec) *InstrumentedSource {
	return &InstrumentedSource{source: source, fetches: fetches}
}

// Name identifies the underlying source in logs and metrics.
func (s *InstrumentedSource) Name() string { return s.source.Name() }

// FetchRates fetches the latest table and records the outcome.
func (s *InstrumentedSource) FetchRates(ctx context.Context, base string) (*RateTable, error) {
	table, err := s.source.FetchRates(ctx, base)
	s.count(err)
	return table, err
}

// FetchRatesAt fetches a historical table and records the outcome.
func (s *InstrumentedSource) FetchRatesAt(ctx context.Context, base string, day time.Time) (*RateTable, error) {
	table, err := s.source.FetchRatesAt(ctx, base, day)
	s.count(err)
	return table, err
}

func (s *InstrumentedSource) count(err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	s.fetches.WithLabelValues(s.source.Name(), outcome).Inc()
}
