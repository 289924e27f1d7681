package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"charchat-backend/internal/ai"
	"charchat-backend/internal/handlers"
	"charchat-backend/internal/models"
	"charchat-backend/internal/services"
	"charchat-backend/internal/store/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatHandler(s *memory.MemoryStore) *handlers.ChatHandler {
	responder := ai.NewResponderWithSource(rand.NewSource(1))
	return handlers.NewChatHandler(services.NewChatService(s, nil, responder))
}

func postChat(t *testing.T, h *handlers.ChatHandler, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/chat", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.HandleSendMessage(rec, req)
	return rec
}

func TestHandleSendMessageSuccess(t *testing.T) {
	s := memory.NewSeededStore()
	h := newChatHandler(s)
	userID := uuid.New()

	rec := postChat(t, h, models.SendMessageRequest{
		Message:     "Hello there!",
		CharacterID: memory.CharacterMayaID.String(),
		UserID:      userID.String(),
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data models.ChatData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	assert.Equal(t, "Maya", envelope.Data.CharacterName)
	assert.NotEmpty(t, envelope.Data.Response)
	assert.Equal(t, envelope.Data.Response, envelope.Data.Message.Message)
	assert.NotEqual(t, uuid.Nil, envelope.Data.SessionID)

	// The exchange is persisted in the session named after the character.
	session, err := s.GetLatestSession(context.Background(), userID, memory.CharacterMayaID)
	require.NoError(t, err)
	assert.Equal(t, "Chat with Maya", session.Title)
}

func TestHandleSendMessageMissingParameters(t *testing.T) {
	s := memory.NewSeededStore()
	h := newChatHandler(s)
	userID := uuid.New()

	cases := []models.SendMessageRequest{
		{CharacterID: memory.CharacterMayaID.String(), UserID: userID.String()},
		{Message: "hi", UserID: userID.String()},
		{Message: "hi", CharacterID: memory.CharacterMayaID.String()},
	}

	for _, body := range cases {
		rec := postChat(t, h, body)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp models.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, models.ErrCodeMissingParameters, resp.Error.Code)
	}

	// Rejected requests must not leave any state behind.
	_, err := s.GetLatestSession(context.Background(), userID, memory.CharacterMayaID)
	assert.Error(t, err)
}

func TestHandleSendMessageInvalidIDs(t *testing.T) {
	h := newChatHandler(memory.NewSeededStore())

	rec := postChat(t, h, models.SendMessageRequest{
		Message:     "hi",
		CharacterID: "not-a-uuid",
		UserID:      uuid.New().String(),
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postChat(t, h, models.SendMessageRequest{
		Message:     "hi",
		CharacterID: memory.CharacterMayaID.String(),
		UserID:      "not-a-uuid",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSendMessageUnknownCharacter(t *testing.T) {
	h := newChatHandler(memory.NewSeededStore())

	rec := postChat(t, h, models.SendMessageRequest{
		Message:     "hi",
		CharacterID: uuid.New().String(),
		UserID:      uuid.New().String(),
	})

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.ErrCodeChatFailed, resp.Error.Code)
}

func TestHandleSendMessageMalformedBody(t *testing.T) {
	h := newChatHandler(memory.NewSeededStore())

	req := httptest.NewRequest(http.MethodPost, "/v1/chat", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.HandleSendMessage(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
