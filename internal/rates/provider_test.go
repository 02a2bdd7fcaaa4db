package rates

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"converterservice/internal/metrics"
	"converterservice/internal/provider"
)

type fakeSource struct {
	mu          sync.Mutex
	fetches     int
	fetchFunc   func(ctx context.Context, base string) (*provider.RateTable, error)
	fetchAtFunc func(ctx context.Context, base string, day time.Time) (*provider.RateTable, error)
}

func (f *fakeSource) FetchRates(ctx context.Context, base string) (*provider.RateTable, error) {
	f.mu.Lock()
	f.fetches++
	f.mu.Unlock()
	return f.fetchFunc(ctx, base)
}

func (f *fakeSource) FetchRatesAt(ctx context.Context, base string, day time.Time) (*provider.RateTable, error) {
	f.mu.Lock()
	f.fetches++
	f.mu.Unlock()
	return f.fetchAtFunc(ctx, base, day)
}

func (f *fakeSource) Name() string { return "fake" }

func (f *fakeSource) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetches
}

func newTestProvider(src provider.RateSource, ttl time.Duration) *Provider {
	logger, _ := zap.NewDevelopment()
	return NewProvider(src, ttl, metrics.NewMetrics(prometheus.NewRegistry()), logger.Sugar())
}

func usdTable(fetchedAt time.Time) *provider.RateTable {
	return &provider.RateTable{
		Base:      "USD",
		Rates:     map[string]float64{"USD": 1, "EUR": 0.9, "JPY": 147.25},
		FetchedAt: fetchedAt,
	}
}

func TestGetRate_SameCurrency(t *testing.T) {
	src := &fakeSource{
		fetchFunc: func(ctx context.Context, base string) (*provider.RateTable, error) {
			return nil, errors.New("should not be called")
		},
	}
	p := newTestProvider(src, time.Hour)

	q, err := p.GetRate(context.Background(), "EUR", "EUR")
	if err != nil {
		t.Fatalf("GetRate returned error: %v", err)
	}
	if q.Rate != 1.0 {
		t.Errorf("expected rate 1.0 for identical pair, got %v", q.Rate)
	}
	if src.count() != 0 {
		t.Errorf("expected no fetches for identical pair, got %d", src.count())
	}
}

func TestGetRate_FetchOncePerTTL(t *testing.T) {
	now := time.Now().UTC()
	src := &fakeSource{
		fetchFunc: func(ctx context.Context, base string) (*provider.RateTable, error) {
			return usdTable(now), nil
		},
	}
	p := newTestProvider(src, time.Hour)

	q1, err := p.GetRate(context.Background(), "USD", "EUR")
	if err != nil {
		t.Fatalf("first GetRate returned error: %v", err)
	}
	q2, err := p.GetRate(context.Background(), "USD", "EUR")
	if err != nil {
		t.Fatalf("second GetRate returned error: %v", err)
	}

	if src.count() != 1 {
		t.Errorf("expected exactly one fetch within the TTL, got %d", src.count())
	}
	if !q1.FetchedAt.Equal(q2.FetchedAt) {
		t.Errorf("expected identical fetch timestamps, got %v and %v", q1.FetchedAt, q2.FetchedAt)
	}
	if q1.Rate != 0.9 || q2.Rate != 0.9 {
		t.Errorf("expected rate 0.9, got %v and %v", q1.Rate, q2.Rate)
	}
	if q1.Stale || q2.Stale {
		t.Error("expected fresh quotes")
	}
}

func TestGetRate_RefetchAfterTTL(t *testing.T) {
	current := time.Now().UTC()
	src := &fakeSource{}
	src.fetchFunc = func(ctx context.Context, base string) (*provider.RateTable, error) {
		return usdTable(current), nil
	}
	p := newTestProvider(src, time.Hour)
	p.cache.now = func() time.Time { return current }

	if _, err := p.GetRate(context.Background(), "USD", "EUR"); err != nil {
		t.Fatalf("first GetRate returned error: %v", err)
	}

	current = current.Add(2 * time.Hour)

	if _, err := p.GetRate(context.Background(), "USD", "EUR"); err != nil {
		t.Fatalf("second GetRate returned error: %v", err)
	}
	if src.count() != 2 {
		t.Errorf("expected a refetch after the TTL expired, got %d fetches", src.count())
	}
}

func TestGetRate_UnknownTarget(t *testing.T) {
	src := &fakeSource{
		fetchFunc: func(ctx context.Context, base string) (*provider.RateTable, error) {
			return usdTable(time.Now().UTC()), nil
		},
	}
	p := newTestProvider(src, time.Hour)

	_, err := p.GetRate(context.Background(), "USD", "XXX")
	if !errors.Is(err, ErrUnknownCurrency) {
		t.Errorf("expected ErrUnknownCurrency, got %v", err)
	}
}

func TestGetRate_StaleServeOnFailedRefresh(t *testing.T) {
	current := time.Now().UTC()
	firstFetch := current
	src := &fakeSource{}
	src.fetchFunc = func(ctx context.Context, base string) (*provider.RateTable, error) {
		if src.count() > 1 {
			return nil, errors.New("upstream down")
		}
		return usdTable(firstFetch), nil
	}
	p := newTestProvider(src, time.Hour)
	p.cache.now = func() time.Time { return current }

	q1, err := p.GetRate(context.Background(), "USD", "EUR")
	if err != nil {
		t.Fatalf("first GetRate returned error: %v", err)
	}
	if q1.Stale {
		t.Error("expected fresh quote before expiry")
	}

	current = current.Add(2 * time.Hour)

	q2, err := p.GetRate(context.Background(), "USD", "EUR")
	if err != nil {
		t.Fatalf("expected stale quote after failed refresh, got error: %v", err)
	}
	if !q2.Stale {
		t.Error("expected Stale flag on quote served from expired table")
	}
	if !q2.FetchedAt.Equal(firstFetch) {
		t.Errorf("expected the original fetch timestamp, got %v", q2.FetchedAt)
	}
	if src.count() != 2 {
		t.Errorf("expected a refresh attempt, got %d fetches", src.count())
	}
}

func TestGetRate_UnavailableWithoutCache(t *testing.T) {
	src := &fakeSource{
		fetchFunc: func(ctx context.Context, base string) (*provider.RateTable, error) {
			return nil, errors.New("upstream down")
		},
	}
	p := newTestProvider(src, time.Hour)

	_, err := p.GetRate(context.Background(), "USD", "EUR")
	if !errors.Is(err, ErrRateUnavailable) {
		t.Errorf("expected ErrRateUnavailable, got %v", err)
	}
}

func TestGetRate_ConcurrentRequestsCollapse(t *testing.T) {
	now := time.Now().UTC()
	src := &fakeSource{}
	src.fetchFunc = func(ctx context.Context, base string) (*provider.RateTable, error) {
		time.Sleep(20 * time.Millisecond)
		return usdTable(now), nil
	}
	p := newTestProvider(src, time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := p.GetRate(context.Background(), "USD", "EUR"); err != nil {
				t.Errorf("GetRate returned error: %v", err)
			}
		}()
	}
	wg.Wait()

	if src.count() != 1 {
		t.Errorf("expected concurrent requests to share one fetch, got %d", src.count())
	}
}

func TestGetRateAt_CachesPerDay(t *testing.T) {
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	var gotDay time.Time
	src := &fakeSource{}
	src.fetchAtFunc = func(ctx context.Context, base string, d time.Time) (*provider.RateTable, error) {
		gotDay = d
		return &provider.RateTable{
			Base:      "USD",
			Rates:     map[string]float64{"USD": 1, "EUR": 0.92},
			FetchedAt: time.Now().UTC(),
		}, nil
	}
	p := newTestProvider(src, time.Hour)

	q, err := p.GetRateAt(context.Background(), "USD", "EUR", day)
	if err != nil {
		t.Fatalf("GetRateAt returned error: %v", err)
	}
	if q.Rate != 0.92 {
		t.Errorf("expected rate 0.92, got %v", q.Rate)
	}
	if !gotDay.Equal(day) {
		t.Errorf("expected fetch for %v, got %v", day, gotDay)
	}

	// Same day again, different target: served from the cached table.
	if _, err := p.GetRateAt(context.Background(), "USD", "USD", day); err != nil {
		t.Fatalf("GetRateAt returned error: %v", err)
	}
	if _, err := p.GetRateAt(context.Background(), "USD", "EUR", day); err != nil {
		t.Fatalf("GetRateAt returned error: %v", err)
	}
	if src.count() != 1 {
		t.Errorf("expected one fetch per day bucket, got %d", src.count())
	}
}

func TestTable_ReturnsCopy(t *testing.T) {
	src := &fakeSource{
		fetchFunc: func(ctx context.Context, base string) (*provider.RateTable, error) {
			return usdTable(time.Now().UTC()), nil
		},
	}
	p := newTestProvider(src, time.Hour)

	snap1, err := p.Table(context.Background(), "USD")
	if err != nil {
		t.Fatalf("Table returned error: %v", err)
	}
	snap1.Rates["EUR"] = 42

	snap2, err := p.Table(context.Background(), "USD")
	if err != nil {
		t.Fatalf("Table returned error: %v", err)
	}
	if snap2.Rates["EUR"] != 0.9 {
		t.Errorf("cached table was mutated through a snapshot: got %v", snap2.Rates["EUR"])
	}
}
