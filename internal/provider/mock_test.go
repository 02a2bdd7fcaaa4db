package provider

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockSource struct {
	mock.Mock
}

func (m *MockSource) FetchRates(ctx context.Context, base string) (*RateTable, error) {
	args := m.Called(ctx, base)
	if table := args.Get(0); table != nil {
		return table.(*RateTable), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSource) FetchRatesAt(ctx context.Context, base string, day time.Time) (*RateTable, error) {
	args := m.Called(ctx, base, day)
	if table := args.Get(0); table != nil {
		return table.(*RateTable), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSource) Name() string { return "mock" }
