package pricing

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/kisurizzz/fleet-manager-sub001/pkg/adapters"
	"github.com/kisurizzz/fleet-manager-sub001/pkg/models/api"
	pricingservice "github.com/kisurizzz/fleet-manager-sub001/pkg/services/pricing"
)

const defaultGrade = "petrol"

type Handler struct {
	pricing pricingservice.Service
}

func NewHandler(pricing pricingservice.Service) *Handler {
	return &Handler{pricing: pricing}
}

func (h *Handler) GetCurrentPrice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	grade := gradeParam(r)

	price, err := h.pricing.Current(ctx, grade)
	if err != nil {
		logger.Error().Err(err).Str("grade", grade).Msg("failed to load current fuel price")
		http.Error(w, "failed to load current fuel price", http.StatusNotFound)
		return
	}
	writeJSON(w, logger, adapters.MapFuelPriceDomainToApi(price))
}

func (h *Handler) SetPrice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.SetFuelPriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Grade == "" {
		req.Grade = defaultGrade
	}

	price, err := h.pricing.SetPrice(ctx, req.Grade, req.PricePerLiter, req.SetBy)
	if err != nil {
		if errors.Is(err, pricingservice.ErrInvalidPrice) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		logger.Error().Err(err).Str("grade", req.Grade).Msg("failed to set fuel price")
		http.Error(w, "failed to set fuel price", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(adapters.MapFuelPriceDomainToApi(price)); err != nil {
		logger.Error().Err(err).Msg("failed to encode fuel price")
	}
}

func (h *Handler) GetPriceHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	grade := gradeParam(r)

	prices, err := h.pricing.History(ctx, grade)
	if err != nil {
		logger.Error().Err(err).Str("grade", grade).Msg("failed to load fuel price history")
		http.Error(w, "failed to load fuel price history", http.StatusInternalServerError)
		return
	}

	response := make([]api.FuelPrice, 0, len(prices))
	for _, p := range prices {
		response = append(response, adapters.MapFuelPriceDomainToApi(p))
	}
	writeJSON(w, logger, response)
}

func gradeParam(r *http.Request) string {
	grade := r.URL.Query().Get("grade")
	if grade == "" {
		return defaultGrade
	}
	return grade
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}
