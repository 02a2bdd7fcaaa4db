package worker

import (
	"context"

	"converterservice/internal/rates"
	"converterservice/internal/repository"
	"converterservice/internal/service"
)

// mockConverter implements service.ConverterServiceInterface for testing.
// Only the methods the worker touches are configurable.
type mockConverter struct {
	tableFunc         func(ctx context.Context, base string) (*rates.Snapshot, error)
	listFavoritesFunc func(ctx context.Context) ([]repository.FavoritePair, error)
}

func (m *mockConverter) Table(ctx context.Context, base string) (*rates.Snapshot, error) {
	return m.tableFunc(ctx, base)
}

func (m *mockConverter) ListFavorites(ctx context.Context) ([]repository.FavoritePair, error) {
	return m.listFavoritesFunc(ctx)
}

func (m *mockConverter) Convert(_ context.Context, _, _ string, _ float64) (*service.ConversionResult, error) {
	return nil, nil
}

func (m *mockConverter) LatestRate(_ context.Context, _, _ string) (*rates.Quote, error) {
	return nil, nil
}

func (m *mockConverter) RateSeries(_ context.Context, _, _ string, _ int) ([]service.SeriesPoint, error) {
	return nil, nil
}

func (m *mockConverter) Currencies() []string { return nil }

func (m *mockConverter) AddFavorite(_ context.Context, _, _ string) error { return nil }

func (m *mockConverter) RemoveFavorite(_ context.Context, _, _ string) error { return nil }

func (m *mockConverter) RecentHistory(_ context.Context) ([]repository.Conversion, error) {
	return nil, nil
}

func (m *mockConverter) ClearHistory(_ context.Context) error { return nil }
