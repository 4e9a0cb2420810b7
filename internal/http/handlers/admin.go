package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brunohpsv/medagendar/internal/directory"
	"github.com/brunohpsv/medagendar/internal/marketplace"
	"github.com/brunohpsv/medagendar/pkg/logging"
)

// AdminHandler handles the administrator dashboard endpoints.
type AdminHandler struct {
	service *marketplace.Service
	logger  *logging.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(service *marketplace.Service, logger *logging.Logger) *AdminHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &AdminHandler{service: service, logger: logger}
}

// Stats handles GET /admin/stats
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats := h.service.Stats(r.Context())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

// RemoveDoctor handles DELETE /admin/doctors/{doctorID}
func (h *AdminHandler) RemoveDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, "doctorID")
	if err := h.service.RemoveDoctor(r.Context(), doctorID); err != nil {
		if errors.Is(err, directory.ErrDoctorNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		h.logger.Error("remove doctor failed", "doctor_id", doctorID, "error", err)
		http.Error(w, "failed to remove doctor", http.StatusInternalServerError)
		return
	}

	h.logger.Info("doctor removed", "doctor_id", doctorID)
	w.WriteHeader(http.StatusNoContent)
}
