package handlers

import (
	"carbon-logistics-service/internal/api/dto"
	"carbon-logistics-service/internal/ports"
	"net/http"
	"strings"
)

// PartHandler exposes read-only catalogue endpoints.
type PartHandler struct {
	Repo ports.PartRepository
}

func (h *PartHandler) Manufacturers(w http.ResponseWriter, r *http.Request) {
	ms, err := h.Repo.ListManufacturers(r.Context())
	if err != nil {
		writeServiceError(w, r, "list manufacturers", err)
		return
	}

	writeJSON(w, r, http.StatusOK, ms)
}

func (h *PartHandler) Parts(w http.ResponseWriter, r *http.Request) {
	manufacturer := strings.TrimSpace(r.URL.Query().Get("manufacturer"))
	if manufacturer == "" {
		writeError(w, r, http.StatusBadRequest, "Manufacturer is required")
		return
	}

	parts, err := h.Repo.ListParts(r.Context(), manufacturer)
	if err != nil {
		writeServiceError(w, r, "list parts", err)
		return
	}

	res := make([]dto.PartSummaryResponse, 0, len(parts))
	for _, p := range parts {
		res = append(res, dto.PartSummaryResponse{PartName: p.PartName, SerialID: p.SerialID})
	}

	writeJSON(w, r, http.StatusOK, res)
}
