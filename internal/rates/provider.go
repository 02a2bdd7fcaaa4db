// Package rates implements the rate lookup layer: a process-local TTL cache of
// full rate tables in front of the configured external sources.
package rates

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"converterservice/internal/metrics"
	"converterservice/internal/provider"
)

var (
	// ErrUnknownCurrency is returned when a currency code is absent from a
	// fetched rate table.
	ErrUnknownCurrency = errors.New("unknown currency")
	// ErrRateUnavailable is returned when no rate could be obtained and no
	// cached table exists to fall back on.
	ErrRateUnavailable = errors.New("rate unavailable")
)

// Quote is an immutable exchange rate quote for a currency pair.
type Quote struct {
	Base      string
	Target    string
	Rate      float64
	FetchedAt time.Time
	Stale     bool
}

// Snapshot is a full rate table for a base currency plus its fetch metadata.
type Snapshot struct {
	Base      string
	Rates     map[string]float64
	FetchedAt time.Time
	Stale     bool
}

const (
	latestBucket    = "latest"
	dayBucketLayout = "2006-01-02"
)

// Provider resolves exchange rate quotes through the table cache. Concurrent
// lookups of the same (base, bucket) key collapse into a single fetch, which
// also serializes cache writes per key.
type Provider struct {
	source  provider.RateSource
	cache   *tableCache
	group   singleflight.Group
	metrics *metrics.Metrics
	log     *zap.SugaredLogger
}

// NewProvider creates a Provider over the given source with the given table TTL.
func NewProvider(source provider.RateSource, ttl time.Duration, m *metrics.Metrics, logger *zap.SugaredLogger) *Provider {
	return &Provider{
		source:  source,
		cache:   newTableCache(ttl),
		metrics: m,
		log:     logger,
	}
}

// GetRate resolves the latest rate from base to target. A pair with
// base == target is 1.0 by convention and consults no source.
func (p *Provider) GetRate(ctx context.Context, base, target string) (Quote, error) {
	if base == target {
		return Quote{Base: base, Target: target, Rate: 1, FetchedAt: p.cache.now()}, nil
	}

	table, stale, err := p.table(ctx, base, latestBucket)
	if err != nil {
		return Quote{}, err
	}
	return p.quote(table, target, stale)
}

// GetRateAt resolves the rate from base to target for a past day.
func (p *Provider) GetRateAt(ctx context.Context, base, target string, day time.Time) (Quote, error) {
	if base == target {
		return Quote{Base: base, Target: target, Rate: 1, FetchedAt: p.cache.now()}, nil
	}

	table, stale, err := p.table(ctx, base, day.UTC().Format(dayBucketLayout))
	if err != nil {
		return Quote{}, err
	}
	return p.quote(table, target, stale)
}

// Table returns the full latest rate table for the base currency.
func (p *Provider) Table(ctx context.Context, base string) (Snapshot, error) {
	table, stale, err := p.table(ctx, base, latestBucket)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		Base:      table.Base,
		Rates:     maps.Clone(table.Rates),
		FetchedAt: table.FetchedAt,
		Stale:     stale,
	}, nil
}

func (p *Provider) quote(table *provider.RateTable, target string, stale bool) (Quote, error) {
	rate, ok := table.Rates[target]
	if !ok {
		return Quote{}, fmt.Errorf("%w: no rate for %s in %s table", ErrUnknownCurrency, target, table.Base)
	}
	return Quote{
		Base:      table.Base,
		Target:    target,
		Rate:      rate,
		FetchedAt: table.FetchedAt,
		Stale:     stale,
	}, nil
}

// table returns the cached table for (base, bucket), fetching when the entry
// is missing or expired. A failed refresh falls back to the expired entry.
func (p *Provider) table(ctx context.Context, base, bucket string) (*provider.RateTable, bool, error) {
	key := base + ":" + bucket
	if table, fresh := p.cache.lookup(key); fresh {
		p.metrics.CacheHits.Inc()
		return table, false, nil
	}
	p.metrics.CacheMisses.Inc()

	v, err, _ := p.group.Do(key, func() (any, error) {
		// Another caller may have refreshed the entry while this one
		// waited for the flight slot.
		if table, fresh := p.cache.lookup(key); fresh {
			return table, nil
		}
		table, err := p.fetch(ctx, base, bucket)
		if err != nil {
			return nil, err
		}
		p.cache.store(key, table)
		return table, nil
	})
	if err == nil {
		return v.(*provider.RateTable), false, nil
	}

	if table, _ := p.cache.lookup(key); table != nil {
		p.log.Warnw("serving stale rates after failed refresh",
			"base", base, "bucket", bucket, "error", err)
		p.metrics.StaleServes.Inc()
		return table, true, nil
	}
	return nil, false, fmt.Errorf("%w: %v", ErrRateUnavailable, err)
}

func (p *Provider) fetch(ctx context.Context, base, bucket string) (*provider.RateTable, error) {
	if bucket == latestBucket {
		return p.source.FetchRates(ctx, base)
	}
	day, err := time.Parse(dayBucketLayout, bucket)
	if err != nil {
		return nil, fmt.Errorf("invalid day bucket %q: %w", bucket, err)
	}
	return p.source.FetchRatesAt(ctx, base, day)
}
