package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"converterservice/internal/service"
)

// ConvertRequest represents the request body for a conversion
type ConvertRequest struct {
	From   string  `json:"from" example:"USD"`
	To     string  `json:"to" example:"EUR"`
	Amount float64 `json:"amount" example:"100"`
}

// ConversionResponse represents the result of a conversion
type ConversionResponse struct {
	From         string   `json:"from" example:"USD"`
	To           string   `json:"to" example:"EUR"`
	Amount       float64  `json:"amount" example:"100"`
	Rate         float64  `json:"rate" example:"0.9013"`
	Result       float64  `json:"result" example:"90.13"`
	FetchedAt    string   `json:"fetched_at" example:"2025-12-01T10:15:30Z"`
	Stale        bool     `json:"stale" example:"false"`
	DayChangePct *float64 `json:"day_change_pct,omitempty" example:"0.42"`
}

// QuoteResponse represents a single pair rate
type QuoteResponse struct {
	Base      string  `json:"base" example:"USD"`
	Target    string  `json:"target" example:"EUR"`
	Rate      float64 `json:"rate" example:"0.9013"`
	FetchedAt string  `json:"fetched_at" example:"2025-12-01T10:15:30Z"`
	Stale     bool    `json:"stale" example:"false"`
}

// TableResponse represents a full rate table for one base currency
type TableResponse struct {
	Base      string             `json:"base" example:"USD"`
	Rates     map[string]float64 `json:"rates"`
	FetchedAt string             `json:"fetched_at" example:"2025-12-01T10:15:30Z"`
	Stale     bool               `json:"stale" example:"false"`
}

// SeriesPointResponse represents one day of a rate series
type SeriesPointResponse struct {
	Day  string  `json:"day" example:"2025-12-01"`
	Rate float64 `json:"rate" example:"0.9013"`
}

// SeriesResponse represents a daily rate series for a pair
type SeriesResponse struct {
	Base   string                `json:"base" example:"USD"`
	Target string                `json:"target" example:"EUR"`
	Points []SeriesPointResponse `json:"points"`
}

// CurrenciesResponse lists the supported currency codes
type CurrenciesResponse struct {
	Currencies []string `json:"currencies"`
}

// HandleConvert godoc
// @Summary Convert an amount between two currencies
// @Description Converts the given amount using the latest cached rate, fetching from the external sources only when the cache has expired. The response carries stale=true when only an expired rate could be served.
// @Tags rates
// @Accept json
// @Produce json
// @Param request body ConvertRequest true "Conversion request"
// @Success 200 {object} ConversionResponse "Conversion result"
// @Failure 400 {object} ErrorResponse "Unknown currency or non-positive amount"
// @Failure 502 {object} ErrorResponse "No rate available from any source"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /api/convert [post]
func HandleConvert(svc service.ConverterServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ConvertRequest
		dec := json.NewDecoder(r.Body)
		if err := dec.Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
			return
		}
		res, err := svc.Convert(r.Context(), req.From, req.To, req.Amount)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ConversionResponse{
			From:         res.From,
			To:           res.To,
			Amount:       res.Amount,
			Rate:         res.Rate,
			Result:       res.Result,
			FetchedAt:    res.FetchedAt.UTC().Format(time.RFC3339),
			Stale:        res.Stale,
			DayChangePct: res.DayChangePct,
		})
	}
}

// HandleLatestRate godoc
// @Summary Get the latest rate for a currency pair
// @Description Returns the latest known rate for base/target. Served from the cache when fresh; otherwise triggers a fetch. stale=true marks a rate that could not be refreshed.
// @Tags rates
// @Produce json
// @Param base query string true "Base currency code (3 letters)" minlength(3) maxlength(3)
// @Param target query string true "Target currency code (3 letters)" minlength(3) maxlength(3)
// @Success 200 {object} QuoteResponse "Latest rate"
// @Failure 400 {object} ErrorResponse "Unknown currency code"
// @Failure 502 {object} ErrorResponse "No rate available from any source"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /api/rates/latest [get]
func HandleLatestRate(svc service.ConverterServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		base := r.URL.Query().Get("base")
		target := r.URL.Query().Get("target")
		if base == "" || target == "" {
			writeError(w, http.StatusBadRequest, "base and target query params are required")
			return
		}
		quote, err := svc.LatestRate(r.Context(), base, target)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, QuoteResponse{
			Base:      quote.Base,
			Target:    quote.Target,
			Rate:      quote.Rate,
			FetchedAt: quote.FetchedAt.UTC().Format(time.RFC3339),
			Stale:     quote.Stale,
		})
	}
}

// HandleRateTable godoc
// @Summary Get the full rate table for a base currency
// @Description Returns every supported rate for the base currency from the cached table. An omitted base falls back to the configured default.
// @Tags rates
// @Produce json
// @Param base query string false "Base currency code (3 letters)" minlength(3) maxlength(3)
// @Success 200 {object} TableResponse "Rate table"
// @Failure 400 {object} ErrorResponse "Unknown currency code"
// @Failure 502 {object} ErrorResponse "No rate available from any source"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /api/rates/table [get]
func HandleRateTable(svc service.ConverterServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := svc.Table(r.Context(), r.URL.Query().Get("base"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, TableResponse{
			Base:      snap.Base,
			Rates:     snap.Rates,
			FetchedAt: snap.FetchedAt.UTC().Format(time.RFC3339),
			Stale:     snap.Stale,
		})
	}
}

// HandleRateSeries godoc
// @Summary Get a daily rate series for a currency pair
// @Description Returns up to days daily rates for base/target, oldest first, ending with today. Days without an obtainable rate are omitted.
// @Tags rates
// @Produce json
// @Param base query string true "Base currency code (3 letters)" minlength(3) maxlength(3)
// @Param target query string true "Target currency code (3 letters)" minlength(3) maxlength(3)
// @Param days query int false "Number of days (default 7)" minimum(1) maximum(90)
// @Success 200 {object} SeriesResponse "Rate series"
// @Failure 400 {object} ErrorResponse "Unknown currency code or malformed days"
// @Failure 502 {object} ErrorResponse "No rate available for any day"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /api/rates/series [get]
func HandleRateSeries(svc service.ConverterServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		base := r.URL.Query().Get("base")
		target := r.URL.Query().Get("target")
		if base == "" || target == "" {
			writeError(w, http.StatusBadRequest, "base and target query params are required")
			return
		}
		days := 7
		if raw := r.URL.Query().Get("days"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				writeError(w, http.StatusBadRequest, "days must be a positive integer")
				return
			}
			days = parsed
		}

		points, err := svc.RateSeries(r.Context(), base, target, days)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		resp := SeriesResponse{
			Base:   strings.ToUpper(strings.TrimSpace(base)),
			Target: strings.ToUpper(strings.TrimSpace(target)),
			Points: make([]SeriesPointResponse, 0, len(points)),
		}
		for _, p := range points {
			resp.Points = append(resp.Points, SeriesPointResponse{
				Day:  p.Day.Format("2006-01-02"),
				Rate: p.Rate,
			})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// HandleCurrencies godoc
// @Summary List supported currency codes
// @Description Returns the currency codes accepted by every other endpoint, sorted alphabetically.
// @Tags rates
// @Produce json
// @Success 200 {object} CurrenciesResponse "Supported currencies"
// @Router /api/currencies [get]
func HandleCurrencies(svc service.ConverterServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, CurrenciesResponse{Currencies: svc.Currencies()})
	}
}

// writeServiceError maps service errors onto HTTP status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidAmount), errors.Is(err, service.ErrUnknownCurrency):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrRateUnavailable):
		writeError(w, http.StatusBadGateway, err.Error())
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "Internal error")
	}
}
