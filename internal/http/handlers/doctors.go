package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brunohpsv/medagendar/internal/directory"
	"github.com/brunohpsv/medagendar/internal/marketplace"
	"github.com/brunohpsv/medagendar/internal/schedule"
	"github.com/brunohpsv/medagendar/pkg/logging"
)

// DoctorsHandler handles HTTP requests for the doctor directory.
type DoctorsHandler struct {
	service *marketplace.Service
	logger  *logging.Logger
}

// NewDoctorsHandler creates a new directory handler.
func NewDoctorsHandler(service *marketplace.Service, logger *logging.Logger) *DoctorsHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &DoctorsHandler{service: service, logger: logger}
}

// ListDoctorsResponse is the response for listing/searching doctors.
type ListDoctorsResponse struct {
	Doctors []directory.Doctor `json:"doctors"`
	Count   int                `json:"count"`
}

// List handles GET /doctors?q=&specialty=
func (h *DoctorsHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	specialty := r.URL.Query().Get("specialty")

	doctors := h.service.ListDoctors(r.Context(), query, specialty)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ListDoctorsResponse{Doctors: doctors, Count: len(doctors)})
}

// Get handles GET /doctors/{doctorID}
func (h *DoctorsHandler) Get(w http.ResponseWriter, r *http.Request) {
	doc, err := h.service.GetDoctor(r.Context(), chi.URLParam(r, "doctorID"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(doc)
}

// GetSchedule handles GET /doctors/{doctorID}/schedule
func (h *DoctorsHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	doc, err := h.service.GetDoctor(r.Context(), chi.URLParam(r, "doctorID"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(doc.Schedule)
}

// Register handles POST /doctors (professional signup)
func (h *DoctorsHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req marketplace.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode signup", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	doc, err := h.service.RegisterDoctor(r.Context(), req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.logger.Info("professional signup", "id", doc.ID, "name", doc.Name)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(doc)
}

// UpdateProfile handles PUT /doctors/{doctorID}/profile
func (h *DoctorsHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var patch marketplace.ProfilePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	doc, err := h.service.UpdateProfile(r.Context(), chi.URLParam(r, "doctorID"), patch)
	if err != nil {
		if errors.Is(err, directory.ErrDoctorNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(doc)
}

// UpdateWorkConfig handles PUT /doctors/{doctorID}/work-config
func (h *DoctorsHandler) UpdateWorkConfig(w http.ResponseWriter, r *http.Request) {
	var patch schedule.WorkConfigPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	doc, err := h.service.UpdateWorkConfig(r.Context(), chi.URLParam(r, "doctorID"), patch)
	if err != nil {
		if errors.Is(err, directory.ErrDoctorNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		var cfgErr *schedule.ConfigurationError
		if errors.As(err, &cfgErr) {
			http.Error(w, cfgErr.Error(), http.StatusUnprocessableEntity)
			return
		}
		h.logger.Error("work config update failed", "error", err)
		http.Error(w, "failed to update work config", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(doc)
}

// Specialties handles GET /specialties
func (h *DoctorsHandler) Specialties(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(directory.Specialties)
}
