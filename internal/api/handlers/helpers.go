package handlers

import (
	"carbon-logistics-service/internal/api/dto"
	"carbon-logistics-service/internal/domain"
	"carbon-logistics-service/internal/platform/obs"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		obs.Logger(r.Context()).Error("encode failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, dto.ErrorResponse{Error: msg})
}

// writeServiceError maps domain errors to HTTP statuses. Only this edge
// knows about status codes.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var (
		ve *domain.ValidationError
		ge *domain.GeocodeError
	)

	switch {
	case errors.As(err, &ve):
		writeJSON(w, r, http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request", Fields: ve.Fields})
	case errors.Is(err, domain.ErrPartNotFound):
		writeError(w, r, http.StatusNotFound, "Part not found")
	case errors.As(err, &ge) && ge.NoMatch():
		writeError(w, r, http.StatusUnprocessableEntity, "location not found: "+ge.Place)
	case errors.As(err, &ge):
		obs.Logger(r.Context()).Warn(op+" failed", zap.Error(err))
		writeError(w, r, http.StatusBadGateway, "geocoding service unavailable")
	default:
		obs.Logger(r.Context()).Error(op+" failed", zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
