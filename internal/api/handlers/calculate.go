package handlers

import (
	"carbon-logistics-service/internal/api/dto"
	"carbon-logistics-service/internal/services"
	"context"
	"encoding/json"
	"io"
	"net/http"
)

const maxBodyBytes = 64 << 10

type Calculator interface {
	Calculate(ctx context.Context, req services.CalculateRequest) (*services.CalculationResult, error)
}

type CalculateHandler struct {
	Calc Calculator
}

// Calculate runs one emission estimate. The request is handled
// synchronously; at most four geocode lookups and one routing lookup
// happen before the response is written.
func (h *CalculateHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req dto.CalculateRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	res, err := h.Calc.Calculate(r.Context(), req.ToService())
	if err != nil {
		writeServiceError(w, r, "calculate", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.CalculateResult(res))
}
