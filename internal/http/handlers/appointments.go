package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brunohpsv/medagendar/internal/booking"
	"github.com/brunohpsv/medagendar/internal/marketplace"
	"github.com/brunohpsv/medagendar/pkg/logging"
)

// AppointmentsHandler handles HTTP requests for bookings.
type AppointmentsHandler struct {
	service *marketplace.Service
	logger  *logging.Logger
}

// NewAppointmentsHandler creates a new bookings handler.
func NewAppointmentsHandler(service *marketplace.Service, logger *logging.Logger) *AppointmentsHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &AppointmentsHandler{service: service, logger: logger}
}

// ListAppointmentsResponse is the response for listing appointments.
type ListAppointmentsResponse struct {
	Appointments []booking.Appointment `json:"appointments"`
	Count        int                   `json:"count"`
}

// Book handles POST /appointments
func (h *AppointmentsHandler) Book(w http.ResponseWriter, r *http.Request) {
	var req marketplace.BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode booking", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	appt, err := h.service.Book(r.Context(), req)
	if err != nil {
		if errors.Is(err, booking.ErrSlotUnavailable) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(appt)
}

// Cancel handles POST /appointments/{appointmentID}/cancel
func (h *AppointmentsHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	err := h.service.Cancel(r.Context(), chi.URLParam(r, "appointmentID"))
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrAppointmentNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, booking.ErrAlreadyCancelled):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			h.logger.Error("cancel failed", "error", err)
			http.Error(w, "failed to cancel appointment", http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// List handles GET /appointments?doctorId=
func (h *AppointmentsHandler) List(w http.ResponseWriter, r *http.Request) {
	var appts []booking.Appointment
	if doctorID := r.URL.Query().Get("doctorId"); doctorID != "" {
		appts = h.service.AppointmentsForDoctor(r.Context(), doctorID)
	} else {
		appts = h.service.Appointments(r.Context())
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ListAppointmentsResponse{Appointments: appts, Count: len(appts)})
}
