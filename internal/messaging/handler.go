package messaging

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"ehr-dashboard-api/internal/platform/auth"
	"ehr-dashboard-api/internal/platform/datastore"
)

const messageColumns = `*, sender:profiles!messages_sender_id_fkey(id, full_name, role), conversation:conversations(id, name, type)`

// Handler serves the care-team messaging endpoints. Rows live in the
// external data store; this layer only shapes requests and responses.
type Handler struct {
	store *datastore.Client
	log   zerolog.Logger
}

func NewHandler(store *datastore.Client, log zerolog.Logger) *Handler {
	return &Handler{store: store, log: log}
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/messages", h.ListMessages)
	r.Post("/messages", h.SendMessage)
}

func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	query := h.store.From("messages").
		Select(messageColumns).
		Order("created_at", true)

	if conversationID := r.URL.Query().Get("conversation_id"); conversationID != "" {
		query = query.Eq("conversation_id", conversationID)
	}

	messages := []Message{}
	if err := query.Get(r.Context(), &messages); err != nil {
		h.log.Error().Err(err).Msg("failed to fetch messages")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to fetch messages"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"messages": messages})
}

type sendMessageRequest struct {
	ConversationID string `json:"conversation_id"`
	Content        string `json:"content"`
	MessageType    string `json:"message_type"`
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.FromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		return
	}

	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request"})
		return
	}
	if req.ConversationID == "" || req.Content == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "conversation_id and content are required"})
		return
	}
	if req.MessageType == "" {
		req.MessageType = "text"
	}

	row := map[string]any{
		"conversation_id": req.ConversationID,
		"sender_id":       user.ID,
		"content":         req.Content,
		"message_type":    req.MessageType,
	}

	var message Message
	err := h.store.From("messages").
		Select(messageColumns).
		Insert(r.Context(), row, &message)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to send message")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to send message"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"message": message})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
