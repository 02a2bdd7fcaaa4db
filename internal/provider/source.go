package provider

import (
	"context"
	"time"
)

// RateTable is one full set of conversion rates fetched for a base currency.
type RateTable struct {
	Base      string
	Rates     map[string]float64
	FetchedAt time.Time
}

// RateSource defines an interface for fetching rate tables from external sources.
type RateSource interface {
	// FetchRates returns the latest full rate table for the base currency.
	FetchRates(ctx context.Context, base string) (*RateTable, error)
	// FetchRatesAt returns the rate table for the base currency on a past day.
	FetchRatesAt(ctx context.Context, base string, day time.Time) (*RateTable, error)
	// Name identifies the source in logs and metrics.
	Name() string
}
