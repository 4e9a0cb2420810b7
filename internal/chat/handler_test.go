package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brunohpsv/medagendar/pkg/logging"
)

type stubTriage struct {
	reply string
}

func (s *stubTriage) Analyze(_ context.Context, _ string) (string, error) {
	return s.reply, nil
}

func (s *stubTriage) RecommendSpecialists(_ context.Context, _ string) (string, error) {
	return s.reply, nil
}

func TestGenerateSessionID(t *testing.T) {
	s1 := generateSessionID()
	s2 := generateSessionID()
	assert.NotEmpty(t, s1)
	assert.NotEqual(t, s1, s2)
	assert.Len(t, s1, 32) // 16 bytes = 32 hex chars
}

func TestHandleMessage_HTTP(t *testing.T) {
	h := NewHandler(&stubTriage{reply: "Procure um neurologista."}, logging.New("error"))

	body := `{"text":"Estou com enxaqueca"}`
	req := httptest.NewRequest(http.MethodPost, "/chat/message", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	h.HandleMessage(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp messageResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Procure um neurologista.", resp.Reply)
	assert.NotEmpty(t, resp.Timestamp)
}

func TestHandleMessage_EmptyText(t *testing.T) {
	h := NewHandler(&stubTriage{}, logging.New("error"))

	req := httptest.NewRequest(http.MethodPost, "/chat/message", strings.NewReader(`{"text":"  "}`))
	w := httptest.NewRecorder()

	h.HandleMessage(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleMessage_InvalidJSON(t *testing.T) {
	h := NewHandler(&stubTriage{}, logging.New("error"))

	req := httptest.NewRequest(http.MethodPost, "/chat/message", strings.NewReader("{"))
	w := httptest.NewRecorder()

	h.HandleMessage(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
