package api

import (
	"net/http"
	"time"

	"converterservice/internal/service"
)

// ConversionRecord represents one stored conversion
type ConversionRecord struct {
	ID        string  `json:"id" example:"123e4567-e89b-12d3-a456-426614174000"`
	Base      string  `json:"base" example:"USD"`
	Target    string  `json:"target" example:"EUR"`
	Amount    float64 `json:"amount" example:"100"`
	Rate      float64 `json:"rate" example:"0.9013"`
	Result    float64 `json:"result" example:"90.13"`
	CreatedAt string  `json:"created_at" example:"2025-12-01T10:15:30Z"`
}

// HistoryResponse lists recent conversions, newest first
type HistoryResponse struct {
	Conversions []ConversionRecord `json:"conversions"`
}

// HandleHistory godoc
// @Summary List recent conversions
// @Description Returns the most recent conversions, newest first, capped at the configured history size.
// @Tags history
// @Produce json
// @Success 200 {object} HistoryResponse "Recent conversions"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /api/history [get]
func HandleHistory(svc service.ConverterServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := svc.RecentHistory(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		resp := HistoryResponse{Conversions: make([]ConversionRecord, 0, len(records))}
		for _, rec := range records {
			resp.Conversions = append(resp.Conversions, ConversionRecord{
				ID:        rec.ID,
				Base:      rec.Base,
				Target:    rec.Target,
				Amount:    rec.Amount,
				Rate:      rec.Rate,
				Result:    rec.Result,
				CreatedAt: rec.CreatedAt.UTC().Format(time.RFC3339),
			})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// HandleClearHistory godoc
// @Summary Clear the conversion history
// @Description Deletes every stored conversion.
// @Tags history
// @Success 204 "History cleared"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /api/history [delete]
func HandleClearHistory(svc service.ConverterServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.ClearHistory(r.Context()); err != nil {
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
