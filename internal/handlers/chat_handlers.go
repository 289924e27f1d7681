package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	api_models "charchat-backend/internal/models"
	db_models "charchat-backend/internal/models"
	"charchat-backend/pkg/httputil"

	"github.com/google/uuid"
)

// ChatService defines the interface expected from the chat service.
type ChatService interface {
	SendMessage(ctx context.Context, userID, characterID uuid.UUID, message string) (*db_models.ChatData, error)
}

type ChatHandler struct {
	chatService ChatService
}

func NewChatHandler(chatSvc ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatSvc,
	}
}

// HandleSendMessage handles the POST /v1/chat request. Requests missing
// any of message, characterId, or userId are rejected before any state
// changes; every other failure maps to a single opaque chat error so
// the client's handling stays uniform.
func (h *ChatHandler) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req api_models.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, api_models.ErrCodeMissingParameters, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if req.Message == "" || req.CharacterID == "" || req.UserID == "" {
		httputil.RespondError(w, http.StatusBadRequest, api_models.ErrCodeMissingParameters, "message, characterId and userId are required")
		return
	}

	characterID, err := uuid.Parse(req.CharacterID)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, api_models.ErrCodeMissingParameters, "Invalid characterId format")
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, api_models.ErrCodeMissingParameters, "Invalid userId format")
		return
	}

	data, err := h.chatService.SendMessage(r.Context(), userID, characterID, req.Message)
	if err != nil {
		log.Printf("Chat handler failed for user %s character %s: %v", userID, characterID, err)
		httputil.RespondError(w, http.StatusInternalServerError, api_models.ErrCodeChatFailed, "Failed to process chat message")
		return
	}

	httputil.RespondData(w, http.StatusOK, data)
}
