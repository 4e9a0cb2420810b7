package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brunohpsv/medagendar/internal/triage"
	"github.com/brunohpsv/medagendar/pkg/logging"
)

type stubTriage struct {
	analyzeReply   string
	recommendReply string
}

func (s *stubTriage) Analyze(_ context.Context, _ string) (string, error) {
	return s.analyzeReply, nil
}

func (s *stubTriage) RecommendSpecialists(_ context.Context, _ string) (string, error) {
	return s.recommendReply, nil
}

func TestTriageAnalyze(t *testing.T) {
	h := NewTriageHandler(&stubTriage{analyzeReply: "Sugiro um neurologista."}, logging.New("error"))

	req := httptest.NewRequest(http.MethodPost, "/triage/analyze",
		strings.NewReader(`{"symptoms":"enxaqueca há 3 dias"}`))
	w := httptest.NewRecorder()
	h.Analyze(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp TriageResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Sugiro um neurologista.", resp.Reply)
}

func TestTriageAnalyzeMissingSymptoms(t *testing.T) {
	h := NewTriageHandler(&stubTriage{}, logging.New("error"))

	req := httptest.NewRequest(http.MethodPost, "/triage/analyze", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	h.Analyze(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTriageRecommend(t *testing.T) {
	h := NewTriageHandler(&stubTriage{recommendReply: "Ortopedia, Fisiatria, Reumatologia."}, logging.New("error"))

	req := httptest.NewRequest(http.MethodPost, "/triage/recommend",
		strings.NewReader(`{"query":"dor no joelho ao correr"}`))
	w := httptest.NewRecorder()
	h.Recommend(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp TriageResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Ortopedia, Fisiatria, Reumatologia.", resp.Reply)
}

func TestTriageFallbackEndToEnd(t *testing.T) {
	// No inner client configured: the wrapper degrades to the fixed message.
	h := NewTriageHandler(triage.WithFallback(nil, logging.New("error"), nil), logging.New("error"))

	req := httptest.NewRequest(http.MethodPost, "/triage/analyze",
		strings.NewReader(`{"symptoms":"febre"}`))
	w := httptest.NewRecorder()
	h.Analyze(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp TriageResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, triage.AnalyzeFallback, resp.Reply)
}
