package handlers

import (
	"context"
	"net/http"

	api_models "charchat-backend/internal/models"
	db_models "charchat-backend/internal/models"
	"charchat-backend/pkg/httputil"

	"github.com/google/uuid"
)

// SessionService defines the interface expected from the session service.
type SessionService interface {
	ListSessions(ctx context.Context, userID uuid.UUID) []db_models.ChatSession
	ListMessages(ctx context.Context, userID, characterID uuid.UUID) []db_models.ChatMessage
}

type SessionHandler struct {
	sessionService SessionService
}

func NewSessionHandler(sessionSvc SessionService) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionSvc,
	}
}

// HandleListSessions handles the GET /v1/sessions request.
func (h *SessionHandler) HandleListSessions(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		httputil.RespondError(w, http.StatusUnauthorized, api_models.ErrCodeUnauthorized, "Authentication required")
		return
	}

	sessions := h.sessionService.ListSessions(r.Context(), userID)

	resp := api_models.ListSessionsResponse{
		Sessions: make([]api_models.SessionResponse, 0, len(sessions)),
	}
	for _, s := range sessions {
		resp.Sessions = append(resp.Sessions, api_models.NewSessionResponse(s))
	}
	httputil.RespondJSON(w, http.StatusOK, resp)
}

// HandleListMessages handles the GET /v1/sessions/messages?character_id= request.
// It returns the transcript of the user's most recent session with the
// character, oldest message first. An empty transcript is a normal
// response, not an error.
func (h *SessionHandler) HandleListMessages(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		httputil.RespondError(w, http.StatusUnauthorized, api_models.ErrCodeUnauthorized, "Authentication required")
		return
	}

	characterIDStr := r.URL.Query().Get("character_id")
	if characterIDStr == "" {
		httputil.RespondError(w, http.StatusBadRequest, api_models.ErrCodeBadRequest, "character_id query parameter is required")
		return
	}
	characterID, err := uuid.Parse(characterIDStr)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, api_models.ErrCodeBadRequest, "Invalid character_id format")
		return
	}

	messages := h.sessionService.ListMessages(r.Context(), userID, characterID)

	resp := api_models.ListMessagesResponse{
		Messages: make([]api_models.MessageResponse, 0, len(messages)),
	}
	for _, m := range messages {
		resp.Messages = append(resp.Messages, api_models.NewMessageResponse(m))
	}
	httputil.RespondJSON(w, http.StatusOK, resp)
}
