package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"converterservice/internal/service"
)

// FavoritePairPayload represents one favorite currency pair
type FavoritePairPayload struct {
	Base   string `json:"base" example:"USD"`
	Target string `json:"target" example:"EUR"`
}

// FavoritesResponse lists the saved favorite pairs
type FavoritesResponse struct {
	Favorites []FavoritePairPayload `json:"favorites"`
}

// HandleListFavorites godoc
// @Summary List favorite currency pairs
// @Description Returns every saved favorite pair, sorted. Pair order is significant: USD/EUR and EUR/USD are distinct favorites.
// @Tags favorites
// @Produce json
// @Success 200 {object} FavoritesResponse "Saved favorites"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /api/favorites [get]
func HandleListFavorites(svc service.ConverterServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pairs, err := svc.ListFavorites(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		resp := FavoritesResponse{Favorites: make([]FavoritePairPayload, 0, len(pairs))}
		for _, p := range pairs {
			resp.Favorites = append(resp.Favorites, FavoritePairPayload{Base: p.Base, Target: p.Target})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// HandleAddFavorite godoc
// @Summary Save a favorite currency pair
// @Description Adds the pair to the favorites set. Adding an already-saved pair is a no-op.
// @Tags favorites
// @Accept json
// @Produce json
// @Param request body FavoritePairPayload true "Pair to save"
// @Success 201 {object} FavoritePairPayload "Pair saved"
// @Failure 400 {object} ErrorResponse "Unknown currency code"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /api/favorites [post]
func HandleAddFavorite(svc service.ConverterServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FavoritePairPayload
		dec := json.NewDecoder(r.Body)
		if err := dec.Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.Base) == "" || strings.TrimSpace(req.Target) == "" {
			writeError(w, http.StatusBadRequest, "base and target are required")
			return
		}
		if err := svc.AddFavorite(r.Context(), req.Base, req.Target); err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, FavoritePairPayload{
			Base:   strings.ToUpper(strings.TrimSpace(req.Base)),
			Target: strings.ToUpper(strings.TrimSpace(req.Target)),
		})
	}
}

// HandleRemoveFavorite godoc
// @Summary Remove a favorite currency pair
// @Description Removes the pair from the favorites set.
// @Tags favorites
// @Accept json
// @Success 204 "Pair removed"
// @Failure 400 {object} ErrorResponse "Unknown currency code"
// @Failure 404 {object} ErrorResponse "Pair is not a saved favorite"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /api/favorites [delete]
func HandleRemoveFavorite(svc service.ConverterServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FavoritePairPayload
		dec := json.NewDecoder(r.Body)
		if err := dec.Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.Base) == "" || strings.TrimSpace(req.Target) == "" {
			writeError(w, http.StatusBadRequest, "base and target are required")
			return
		}
		if err := svc.RemoveFavorite(r.Context(), req.Base, req.Target); err != nil {
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
