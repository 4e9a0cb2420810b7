package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/brunohpsv/medagendar/internal/triage"
	"github.com/brunohpsv/medagendar/pkg/logging"
)

// TriageHandler handles HTTP requests for symptom triage.
type TriageHandler struct {
	client triage.Client
	logger *logging.Logger
}

// NewTriageHandler creates a new triage handler.
func NewTriageHandler(client triage.Client, logger *logging.Logger) *TriageHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &TriageHandler{client: client, logger: logger}
}

// AnalyzeRequest carries the patient's symptom description.
type AnalyzeRequest struct {
	Symptoms string `json:"symptoms"`
}

// RecommendRequest carries a free-text specialist search.
type RecommendRequest struct {
	Query string `json:"query"`
}

// TriageResponse is the prose reply for both triage endpoints.
type TriageResponse struct {
	Reply string `json:"reply"`
}

// Analyze handles POST /triage/analyze
func (h *TriageHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Symptoms) == "" {
		http.Error(w, "symptoms is required", http.StatusBadRequest)
		return
	}

	reply, err := h.client.Analyze(r.Context(), req.Symptoms)
	if err != nil {
		// The fallback wrapper absorbs provider failures; reaching here
		// means misconfigured wiring.
		h.logger.Error("triage analyze returned error", "error", err)
		reply = triage.AnalyzeFallback
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(TriageResponse{Reply: reply})
}

// Recommend handles POST /triage/recommend
func (h *TriageHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		http.Error(w, "query is required", http.StatusBadRequest)
		return
	}

	reply, err := h.client.RecommendSpecialists(r.Context(), req.Query)
	if err != nil {
		h.logger.Error("triage recommend returned error", "error", err)
		reply = triage.RecommendFallback
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(TriageResponse{Reply: reply})
}
