package chat

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/websocket"

	"github.com/brunohpsv/medagendar/internal/triage"
	"github.com/brunohpsv/medagendar/pkg/logging"
)

// Handler serves the symptom-assistant widget over websocket and plain HTTP.
type Handler struct {
	triage triage.Client
	logger *logging.Logger

	mu       sync.RWMutex
	sessions map[string]*wsConn // sessionID -> active connection
}

type wsConn struct {
	conn *websocket.Conn
	done chan struct{}
}

// InboundMessage is what the widget sends.
type InboundMessage struct {
	Type string `json:"type"` // "message", "ping"
	Text string `json:"text"`
}

// OutboundMessage is what we send to the widget.
type OutboundMessage struct {
	Type      string `json:"type"` // "message", "typing", "session", "pong", "error"
	Text      string `json:"text,omitempty"`
	Role      string `json:"role,omitempty"` // "assistant"
	SessionID string `json:"session_id,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// NewHandler creates the assistant chat handler.
func NewHandler(triageClient triage.Client, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		triage:   triageClient,
		logger:   logger,
		sessions: make(map[string]*wsConn),
	}
}

// generateSessionID creates a random session identifier.
func generateSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return uuid.NewString()
	}
	return hex.EncodeToString(b)
}

// HandleWebSocket upgrades to WebSocket and runs the assistant session.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	websocket.Handler(func(conn *websocket.Conn) {
		h.serveWS(conn, r)
	}).ServeHTTP(w, r)
}

func (h *Handler) serveWS(conn *websocket.Conn, r *http.Request) {
	sessionID := r.URL.Query().Get("session")
	if sessionID == "" {
		sessionID = generateSessionID()
	}

	_ = websocket.JSON.Send(conn, OutboundMessage{
		Type:      "session",
		SessionID: sessionID,
	})

	wsc := &wsConn{conn: conn, done: make(chan struct{})}
	h.mu.Lock()
	h.sessions[sessionID] = wsc
	h.mu.Unlock()
	defer func() {
		h.mu.Lock()
		if h.sessions[sessionID] == wsc {
			delete(h.sessions, sessionID)
		}
		h.mu.Unlock()
		close(wsc.done)
	}()

	h.logger.Info("chat: connection opened", "session_id", sessionID)

	for {
		var msg InboundMessage
		if err := websocket.JSON.Receive(conn, &msg); err != nil {
			h.logger.Debug("chat: connection closed", "session_id", sessionID, "error", err)
			return
		}

		if msg.Type == "ping" {
			_ = websocket.JSON.Send(conn, OutboundMessage{Type: "pong"})
			continue
		}

		if msg.Type != "message" || strings.TrimSpace(msg.Text) == "" {
			continue
		}

		_ = websocket.JSON.Send(conn, OutboundMessage{Type: "typing"})
		reply := h.analyze(r.Context(), msg.Text)
		_ = websocket.JSON.Send(conn, OutboundMessage{
			Type:      "message",
			Role:      "assistant",
			Text:      reply,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func (h *Handler) analyze(ctx context.Context, text string) string {
	reply, err := h.triage.Analyze(ctx, text)
	if err != nil {
		// The triage client degrades internally; this is a final guard.
		h.logger.Error("chat: triage returned error", "error", err)
		return triage.AnalyzeFallback
	}
	return reply
}

// messageRequest is the plain-HTTP chat body.
type messageRequest struct {
	Text string `json:"text"`
}

// messageResponse is the plain-HTTP chat reply.
type messageResponse struct {
	Reply     string `json:"reply"`
	Timestamp string `json:"timestamp"`
}

// HandleMessage answers a single assistant message over plain HTTP, for
// clients without websocket support.
func (h *Handler) HandleMessage(w http.ResponseWriter, r *http.Request) {
	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		http.Error(w, "text is required", http.StatusBadRequest)
		return
	}

	reply := h.analyze(r.Context(), req.Text)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(messageResponse{
		Reply:     reply,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
