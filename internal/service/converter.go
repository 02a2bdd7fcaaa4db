// Package service implements the business logic for conversions, favorites and history.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"converterservice/internal/config"
	"converterservice/internal/currency"
	"converterservice/internal/metrics"
	"converterservice/internal/rates"
	"converterservice/internal/repository"
)

// RateResolver is the rate lookup contract the service depends on.
type RateResolver interface {
	GetRate(ctx context.Context, base, target string) (rates.Quote, error)
	GetRateAt(ctx context.Context, base, target string, day time.Time) (rates.Quote, error)
	Table(ctx context.Context, base string) (rates.Snapshot, error)
}

// ConverterServiceInterface defines the operations available to the transport layer.
type ConverterServiceInterface interface {
	Convert(ctx context.Context, from, to string, amount float64) (*ConversionResult, error)
	LatestRate(ctx context.Context, base, target string) (*rates.Quote, error)
	Table(ctx context.Context, base string) (*rates.Snapshot, error)
	RateSeries(ctx context.Context, base, target string, days int) ([]SeriesPoint, error)
	Currencies() []string
	ListFavorites(ctx context.Context) ([]repository.FavoritePair, error)
	AddFavorite(ctx context.Context, base, target string) error
	RemoveFavorite(ctx context.Context, base, target string) error
	RecentHistory(ctx context.Context) ([]repository.Conversion, error)
	ClearHistory(ctx context.Context) error
}

// ConverterService orchestrates rate lookups, favorites and conversion history.
type ConverterService struct {
	rates         RateResolver
	history       repository.HistoryRepository
	favorites     repository.FavoritesRepository
	metrics       *metrics.Metrics
	log           *zap.SugaredLogger
	maxHistory    int
	maxSeriesDays int
	defaultBase   string
	now           func() time.Time
}

// NewConverterService creates a new ConverterService.
func NewConverterService(resolver RateResolver, history repository.HistoryRepository, favorites repository.FavoritesRepository, m *metrics.Metrics, logger *zap.SugaredLogger, historyCfg config.HistoryConfig, ratesCfg config.RatesConfig) *ConverterService {
	return &ConverterService{
		rates:         resolver,
		history:       history,
		favorites:     favorites,
		metrics:       m,
		log:           logger,
		maxHistory:    historyCfg.MaxEntries,
		maxSeriesDays: ratesCfg.SeriesMaxDays,
		defaultBase:   ratesCfg.DefaultBase,
		now:           time.Now,
	}
}

// Convert validates the request, resolves the rate, computes the converted
// amount and records the conversion in the history.
func (s *ConverterService) Convert(ctx context.Context, from, to string, amount float64) (*ConversionResult, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	from, to, err := s.normalizePair(from, to)
	if err != nil {
		return nil, err
	}

	quote, err := s.rates.GetRate(ctx, from, to)
	if err != nil {
		return nil, err
	}

	res := &ConversionResult{
		From:      from,
		To:        to,
		Amount:    amount,
		Rate:      quote.Rate,
		Result:    amount * quote.Rate,
		FetchedAt: quote.FetchedAt,
		Stale:     quote.Stale,
	}
	res.DayChangePct = s.dayChange(ctx, from, to, quote.Rate)

	s.recordConversion(ctx, res)
	s.metrics.Conversions.Inc()

	s.log.Infow("Converted",
		"from", from, "to", to, "amount", amount, "rate", quote.Rate, "stale", quote.Stale)
	return res, nil
}

// LatestRate returns the current quote for the pair.
func (s *ConverterService) LatestRate(ctx context.Context, base, target string) (*rates.Quote, error) {
	base, target, err := s.normalizePair(base, target)
	if err != nil {
		return nil, err
	}
	quote, err := s.rates.GetRate(ctx, base, target)
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

// Table returns the full latest rate table for the base currency. An empty
// base falls back to the configured default.
func (s *ConverterService) Table(ctx context.Context, base string) (*rates.Snapshot, error) {
	base = currency.Normalize(base)
	if base == "" {
		base = s.defaultBase
	}
	if !currency.Supported(base) {
		return nil, ErrUnknownCurrency
	}
	snap, err := s.rates.Table(ctx, base)
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// RateSeries returns up to days daily rates for the pair, oldest first, ending
// with today's quote. Days whose rate cannot be obtained are skipped.
func (s *ConverterService) RateSeries(ctx context.Context, base, target string, days int) ([]SeriesPoint, error) {
	base, target, err := s.normalizePair(base, target)
	if err != nil {
		return nil, err
	}
	if days < 1 {
		days = 1
	}
	if days > s.maxSeriesDays {
		days = s.maxSeriesDays
	}

	today := s.now().UTC().Truncate(24 * time.Hour)
	points := make([]SeriesPoint, 0, days)
	for i := days - 1; i >= 1; i-- {
		day := today.AddDate(0, 0, -i)
		q, err := s.rates.GetRateAt(ctx, base, target, day)
		if err != nil {
			s.log.Warnw("Skipping series day with unavailable rate",
				"base", base, "target", target, "day", day.Format("2006-01-02"), "error", err)
			continue
		}
		points = append(points, SeriesPoint{Day: day, Rate: q.Rate})
	}

	q, err := s.rates.GetRate(ctx, base, target)
	if err != nil {
		s.log.Warnw("Latest rate unavailable for series", "base", base, "target", target, "error", err)
	} else {
		points = append(points, SeriesPoint{Day: today, Rate: q.Rate})
	}

	if len(points) == 0 {
		return nil, ErrRateUnavailable
	}
	return points, nil
}

// Currencies returns the supported currency codes in sorted order.
func (s *ConverterService) Currencies() []string {
	return currency.Codes()
}

// dayChange computes the rate's change against the previous day, in percent.
// Best-effort: any failure yields nil and the conversion proceeds without it.
func (s *ConverterService) dayChange(ctx context.Context, base, target string, current float64) *float64 {
	yesterday := s.now().UTC().AddDate(0, 0, -1)
	prev, err := s.rates.GetRateAt(ctx, base, target, yesterday)
	if err != nil {
		s.log.Warnw("Previous-day rate unavailable", "base", base, "target", target, "error", err)
		return nil
	}
	if prev.Rate == 0 {
		return nil
	}
	pct := (current - prev.Rate) / prev.Rate * 100
	return &pct
}

// recordConversion appends the conversion to the history and trims it to the
// configured cap. History failures are logged, never surfaced to the caller.
func (s *ConverterService) recordConversion(ctx context.Context, res *ConversionResult) {
	rec := &repository.Conversion{
		ID:        uuid.New().String(),
		Base:      res.From,
		Target:    res.To,
		Amount:    res.Amount,
		Rate:      res.Rate,
		Result:    res.Result,
		CreatedAt: s.now().UTC(),
	}
	if err := s.history.Insert(ctx, rec); err != nil {
		s.log.Errorw("Failed to record conversion", "error", err)
		return
	}
	if err := s.history.TrimTo(ctx, s.maxHistory); err != nil {
		s.log.Warnw("Failed to trim history", "error", err)
	}
}

func (s *ConverterService) normalizePair(base, target string) (string, string, error) {
	base = currency.Normalize(base)
	target = currency.Normalize(target)
	if !currency.Supported(base) || !currency.Supported(target) {
		return "", "", ErrUnknownCurrency
	}
	return base, target, nil
}
