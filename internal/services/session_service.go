package services

import (
	"context"
	"errors"
	"log"

	"charchat-backend/internal/models"
	"charchat-backend/internal/store"

	"github.com/google/uuid"
)

// SessionService exposes read access to a user's chat sessions and
// transcripts.
type SessionService struct {
	store store.Store
}

func NewSessionService(s store.Store) *SessionService {
	return &SessionService{store: s}
}

// ListSessions returns the user's most recently updated sessions, capped
// at store.DefaultSessionLimit. A store failure degrades to an empty
// list rather than an error.
func (s *SessionService) ListSessions(ctx context.Context, userID uuid.UUID) []models.ChatSession {
	sessions, err := s.store.ListSessionsByUser(ctx, userID, store.DefaultSessionLimit)
	if err != nil {
		log.Printf("[SessionService] Error listing sessions for user %s: %v", userID, err)
		return []models.ChatSession{}
	}
	if sessions == nil {
		sessions = []models.ChatSession{}
	}
	return sessions
}

// ListMessages resolves the user's latest session with the character and
// returns its transcript oldest-first. No session means an empty
// transcript, not an error; that is the normal state before a first send.
func (s *SessionService) ListMessages(ctx context.Context, userID, characterID uuid.UUID) []models.ChatMessage {
	session, err := s.store.GetLatestSession(ctx, userID, characterID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Printf("[SessionService] Error resolving session for user %s character %s: %v", userID, characterID, err)
		}
		return []models.ChatMessage{}
	}

	messages, err := s.store.ListMessagesBySession(ctx, session.ID)
	if err != nil {
		log.Printf("[SessionService] Error listing messages for session %s: %v", session.ID, err)
		return []models.ChatMessage{}
	}
	if messages == nil {
		messages = []models.ChatMessage{}
	}
	return messages
}
