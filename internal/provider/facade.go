package provider

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var _ RateSource = (*SourceFacade)(nil)

// SourceFacade is an abstraction that calls rate sources sequentially.
type SourceFacade struct {
	sources []RateSource
}

// NewSourceFacade creates a new SourceFacade with the given list of sources.
func NewSourceFacade(sources ...RateSource) *SourceFacade {
	return &SourceFacade{
		sources: sources,
	}
}

// Name identifies the facade in logs and metrics.
func (f *SourceFacade) Name() string { return "facade" }

// FetchRates calls sources sequentially until one succeeds.
func (f *SourceFacade) FetchRates(ctx context.Context, base string) (*RateTable, error) {
	var errs []error
	for _, src := range f.sources {
		table, err := src.FetchRates(ctx, base)
		if err == nil {
			return table, nil
		}
		errs = append(errs, err)
	}

	return nil, fmt.Errorf("all sources failed: %w", errors.Join(errs...))
}

// FetchRatesAt calls sources sequentially until one succeeds.
func (f *SourceFacade) FetchRatesAt(ctx context.Context, base string, day time.Time) (*RateTable, error) {
	var errs []error
	for _, src := range f.sources {
		table, err := src.FetchRatesAt(ctx, base, day)
		if err == nil {
			return table, nil
		}
		errs = append(errs, err)
	}

	return nil, fmt.Errorf("all sources failed: %w", errors.Join(errs...))
}
