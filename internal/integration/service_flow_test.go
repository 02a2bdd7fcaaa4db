//go:build integration

package integration

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"converterservice/internal/config"
	"converterservice/internal/metrics"
	"converterservice/internal/provider"
	"converterservice/internal/rates"
	"converterservice/internal/repository"
	"converterservice/internal/service"
)

// fakeSource implements provider.RateSource with fixed tables and call counters.
type fakeSource struct {
	mu        sync.Mutex
	fetches   int
	fetchesAt int
}

func (f *fakeSource) FetchRates(_ context.Context, base string) (*provider.RateTable, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches++
	return &provider.RateTable{
		Base:      base,
		Rates:     map[string]float64{base: 1, "EUR": 0.9, "JPY": 147.25},
		FetchedAt: time.Now().UTC(),
	}, nil
}

func (f *fakeSource) FetchRatesAt(_ context.Context, base string, _ time.Time) (*provider.RateTable, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetchesAt++
	return &provider.RateTable{
		Base:      base,
		Rates:     map[string]float64{base: 1, "EUR": 0.88, "JPY": 146.0},
		FetchedAt: time.Now().UTC(),
	}, nil
}

func (f *fakeSource) Name() string { return "fake" }

func (f *fakeSource) counts() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetches, f.fetchesAt
}

var _ provider.RateSource = (*fakeSource)(nil)

func newFlowService(src provider.RateSource) service.ConverterServiceInterface {
	logger := zap.NewNop().Sugar()
	m := metrics.NewMetrics(prometheus.NewRegistry())
	rateProvider := rates.NewProvider(src, time.Hour, m, logger)
	return service.NewConverterService(
		rateProvider,
		repository.NewPostgresHistoryRepository(testDB),
		repository.NewRedisFavoritesRepository(testRDB),
		m,
		logger,
		config.HistoryConfig{MaxEntries: 50},
		config.RatesConfig{DefaultBase: "USD", SeriesMaxDays: 90},
	)
}

func TestConvertFlow(t *testing.T) {
	resetTestData(t)
	ctx := testContext(t)

	src := &fakeSource{}
	svc := newFlowService(src)

	// 1. Convert and verify the arithmetic.
	res, err := svc.Convert(ctx, "USD", "EUR", 100)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if math.Abs(res.Result-90.0) > 1e-9 {
		t.Fatalf("expected result 90, got %v", res.Result)
	}
	if res.Stale {
		t.Fatal("expected a fresh rate")
	}
	if res.DayChangePct == nil {
		t.Fatal("expected day change to be computed")
	}
	want := (0.9 - 0.88) / 0.88 * 100
	if math.Abs(*res.DayChangePct-want) > 1e-9 {
		t.Fatalf("expected day change %v, got %v", want, *res.DayChangePct)
	}

	// 2. The conversion is recorded.
	records, err := svc.RecentHistory(ctx)
	if err != nil {
		t.Fatalf("RecentHistory: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 history record, got %d", len(records))
	}
	if records[0].Base != "USD" || records[0].Target != "EUR" || records[0].Amount != 100 {
		t.Fatalf("unexpected history record: %+v", records[0])
	}

	// 3. A second conversion reuses the cached tables.
	if _, err := svc.Convert(ctx, "USD", "JPY", 10); err != nil {
		t.Fatalf("second Convert: %v", err)
	}
	fetches, fetchesAt := src.counts()
	if fetches != 1 {
		t.Fatalf("expected 1 latest fetch across conversions, got %d", fetches)
	}
	if fetchesAt != 1 {
		t.Fatalf("expected 1 historical fetch across conversions, got %d", fetchesAt)
	}
}

func TestFavoritesFlow(t *testing.T) {
	resetTestData(t)
	ctx := testContext(t)

	svc := newFlowService(&fakeSource{})

	if err := svc.AddFavorite(ctx, "usd", "eur"); err != nil {
		t.Fatalf("AddFavorite: %v", err)
	}

	pairs, err := svc.ListFavorites(ctx)
	if err != nil {
		t.Fatalf("ListFavorites: %v", err)
	}
	if len(pairs) != 1 || pairs[0].Base != "USD" || pairs[0].Target != "EUR" {
		t.Fatalf("expected normalized USD/EUR favorite, got %+v", pairs)
	}

	if err := svc.RemoveFavorite(ctx, "USD", "EUR"); err != nil {
		t.Fatalf("RemoveFavorite: %v", err)
	}
	if err := svc.RemoveFavorite(ctx, "USD", "EUR"); !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second remove, got %v", err)
	}
}

func TestHistoryFlow(t *testing.T) {
	resetTestData(t)
	ctx := testContext(t)

	svc := newFlowService(&fakeSource{})

	if _, err := svc.Convert(ctx, "USD", "EUR", 100); err != nil {
		t.Fatalf("Convert 1: %v", err)
	}
	if _, err := svc.Convert(ctx, "USD", "JPY", 250); err != nil {
		t.Fatalf("Convert 2: %v", err)
	}

	records, err := svc.RecentHistory(ctx)
	if err != nil {
		t.Fatalf("RecentHistory: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 history records, got %d", len(records))
	}
	amounts := map[float64]bool{}
	for _, rec := range records {
		amounts[rec.Amount] = true
	}
	if !amounts[100] || !amounts[250] {
		t.Fatalf("expected both conversions recorded, got %+v", records)
	}

	if err := svc.ClearHistory(ctx); err != nil {
		t.Fatalf("ClearHistory: %v", err)
	}
	records, err = svc.RecentHistory(ctx)
	if err != nil {
		t.Fatalf("RecentHistory after clear: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty history, got %d records", len(records))
	}
}
