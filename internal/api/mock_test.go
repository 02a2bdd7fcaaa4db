package api

import (
	"context"

	"converterservice/internal/rates"
	"converterservice/internal/repository"
	"converterservice/internal/service"
)

// mockConverterService implements service.ConverterServiceInterface for testing.
type mockConverterService struct {
	convertFunc        func(ctx context.Context, from, to string, amount float64) (*service.ConversionResult, error)
	latestRateFunc     func(ctx context.Context, base, target string) (*rates.Quote, error)
	tableFunc          func(ctx context.Context, base string) (*rates.Snapshot, error)
	rateSeriesFunc     func(ctx context.Context, base, target string, days int) ([]service.SeriesPoint, error)
	currenciesFunc     func() []string
	listFavoritesFunc  func(ctx context.Context) ([]repository.FavoritePair, error)
	addFavoriteFunc    func(ctx context.Context, base, target string) error
	removeFavoriteFunc func(ctx context.Context, base, target string) error
	recentHistoryFunc  func(ctx context.Context) ([]repository.Conversion, error)
	clearHistoryFunc   func(ctx context.Context) error
}

func (m *mockConverterService) Convert(ctx context.Context, from, to string, amount float64) (*service.ConversionResult, error) {
	return m.convertFunc(ctx, from, to, amount)
}

func (m *mockConverterService) LatestRate(ctx context.Context, base, target string) (*rates.Quote, error) {
	return m.latestRateFunc(ctx, base, target)
}

func (m *mockConverterService) Table(ctx context.Context, base string) (*rates.Snapshot, error) {
	return m.tableFunc(ctx, base)
}

func (m *mockConverterService) RateSeries(ctx context.Context, base, target string, days int) ([]service.SeriesPoint, error) {
	return m.rateSeriesFunc(ctx, base, target, days)
}

func (m *mockConverterService) Currencies() []string {
	return m.currenciesFunc()
}

func (m *mockConverterService) ListFavorites(ctx context.Context) ([]repository.FavoritePair, error) {
	return m.listFavoritesFunc(ctx)
}

func (m *mockConverterService) AddFavorite(ctx context.Context, base, target string) error {
	return m.addFavoriteFunc(ctx, base, target)
}

func (m *mockConverterService) RemoveFavorite(ctx context.Context, base, target string) error {
	return m.removeFavoriteFunc(ctx, base, target)
}

func (m *mockConverterService) RecentHistory(ctx context.Context) ([]repository.Conversion, error) {
	return m.recentHistoryFunc(ctx)
}

func (m *mockConverterService) ClearHistory(ctx context.Context) error {
	return m.clearHistoryFunc(ctx)
}
