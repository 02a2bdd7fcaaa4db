package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

var _ RateSource = (*FrankfurterSource)(nil)

// FrankfurterSource fetches rate tables from the Frankfurter API.
type FrankfurterSource struct {
	baseURL string
	client  *http.Client
}

// NewFrankfurterSource creates a new FrankfurterSource.
func NewFrankfurterSource(baseURL string, timeoutSec int) *FrankfurterSource {
	if baseURL == "" {
		baseURL = "https://api.frankfurter.dev/v1"
	}
	return &FrankfurterSource{
		baseURL: baseURL,
		client:  &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
	}
}

// Name identifies the source in logs and metrics.
func (s *FrankfurterSource) Name() string { return "frankfurter" }

type frankfurterResponse struct {
	Amount float64            `json:"amount"`
	Base   string             `json:"base"`
	Date   string             `json:"date"`
	Rates  map[string]float64 `json:"rates"`
}

// FetchRates retrieves the latest rate table for the base currency.
func (s *FrankfurterSource) FetchRates(ctx context.Context, base string) (*RateTable, error) {
	reqURL := fmt.Sprintf("%s/latest?base=%s", s.baseURL, base)
	return s.fetch(ctx, reqURL, base)
}

// FetchRatesAt retrieves the rate table for the base currency on a past day.
func (s *FrankfurterSource) FetchRatesAt(ctx context.Context, base string, day time.Time) (*RateTable, error) {
	reqURL := fmt.Sprintf("%s/%s?base=%s", s.baseURL, day.Format("2006-01-02"), base)
	return s.fetch(ctx, reqURL, base)
}

func (s *FrankfurterSource) fetch(ctx context.Context, reqURL, base string) (*RateTable, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("frankfurter API request creation failed: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("frankfurter API request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("frankfurter API returned status %d: %s", resp.StatusCode, string(body))
	}

	var result frankfurterResponse
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode frankfurter API response: %w", err)
	}

	if len(result.Rates) == 0 {
		return nil, fmt.Errorf("no rates for %s in frankfurter response", base)
	}

	// Frankfurter omits the base from its own table.
	result.Rates[base] = 1

	return &RateTable{
		Base:      base,
		Rates:     result.Rates,
		FetchedAt: time.Now().UTC(),
	}, nil
}
