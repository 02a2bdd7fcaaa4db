package provider

import (
	"context"
	"time"
)

var _ RateSource = (*RetrySource)(nil)

// RetrySource retries a failed fetch exactly once after a fixed delay.
// A zero delay disables retrying.
type RetrySource struct {
	source RateSource
	delay  time.Duration
}

// NewRetrySource wraps a source with a single bounded retry.
func NewRetrySource(source RateSource, delay time.Duration) *RetrySource {
	return &RetrySource{source: source, delay: delay}
}

// Name identifies the underlying source in logs and metrics.
func (r *RetrySource) Name() string { return r.source.Name() }

// FetchRates fetches the latest table, retrying once on failure.
func (r *RetrySource) FetchRates(ctx context.Context, base string) (*RateTable, error) {
	table, err := r.source.FetchRates(ctx, base)
	if err == nil || r.delay <= 0 {
		return table, err
	}
	if waitErr := r.wait(ctx); waitErr != nil {
		return nil, err
	}
	return r.source.FetchRates(ctx, base)
}

// FetchRatesAt fetches a historical table, retrying once on failure.
func (r *RetrySource) FetchRatesAt(ctx context.Context, base string, day time.Time) (*RateTable, error) {
	table, err := r.source.FetchRatesAt(ctx, base, day)
	if err == nil || r.delay <= 0 {
		return table, err
	}
	if waitErr := r.wait(ctx); waitErr != nil {
		return nil, err
	}
	return r.source.FetchRatesAt(ctx, base, day)
}

// wait blocks for the retry delay or until the context is done.
func (r *RetrySource) wait(ctx context.Context) error {
	timer := time.NewTimer(r.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
