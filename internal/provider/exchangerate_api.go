// Package provider implements external rate sources for fetching currency exchange rates.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

var _ RateSource = (*ExchangeRateAPISource)(nil)

// ExchangeRateAPISource fetches rate tables from the v6.exchangerate-api.com API.
type ExchangeRateAPISource struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewExchangeRateAPISource creates a new ExchangeRateAPISource with the given configuration.
func NewExchangeRateAPISource(baseURL, apiKey string, timeoutSec int) *ExchangeRateAPISource {
	if baseURL == "" {
		baseURL = "https://v6.exchangerate-api.com/v6"
	}
	return &ExchangeRateAPISource{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
	}
}

// Name identifies the source in logs and metrics.
func (s *ExchangeRateAPISource) Name() string { return "exchangerate-api" }

// exchangerate-api v6 response structure
type erAPIResponse struct {
	Result          string             `json:"result"`
	ErrorType       string             `json:"error-type"`
	BaseCode        string             `json:"base_code"`
	ConversionRates map[string]float64 `json:"conversion_rates"`
}

// FetchRates fetches the latest full rate table for the base currency.
func (s *ExchangeRateAPISource) FetchRates(ctx context.Context, base string) (*RateTable, error) {
	reqURL := fmt.Sprintf("%s/%s/latest/%s", s.baseURL, s.apiKey, base)
	return s.fetch(ctx, reqURL, base)
}

// FetchRatesAt fetches the rate table for the base currency on a past day.
func (s *ExchangeRateAPISource) FetchRatesAt(ctx context.Context, base string, day time.Time) (*RateTable, error) {
	reqURL := fmt.Sprintf("%s/%s/history/%s/%04d/%02d/%02d",
		s.baseURL, s.apiKey, base, day.Year(), int(day.Month()), day.Day())
	return s.fetch(ctx, reqURL, base)
}

func (s *ExchangeRateAPISource) fetch(ctx context.Context, reqURL, base string) (*RateTable, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("external API request creation failed: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("external API request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("external API returned status %d: %s", resp.StatusCode, string(body))
	}
	var result erAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode external API response: %w", err)
	}
	if result.Result != "success" {
		return nil, fmt.Errorf("external API returned result=%q (%s) for %s", result.Result, result.ErrorType, base)
	}
	if len(result.ConversionRates) == 0 {
		return nil, fmt.Errorf("no conversion rates for %s in response", base)
	}
	return &RateTable{
		Base:      base,
		Rates:     result.ConversionRates,
		FetchedAt: time.Now().UTC(),
	}, nil
}
