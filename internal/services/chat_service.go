package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"charchat-backend/internal/ai"
	"charchat-backend/internal/models"
	"charchat-backend/internal/store"

	"github.com/google/uuid"
)

var ErrPersistingMessage = errors.New("failed to persist chat message")

// ChatService runs the full send-message flow: resolve the character,
// generate a reply, find or create the session, and persist both sides
// of the exchange.
type ChatService struct {
	store     store.Store
	completer ai.Completer // nil when no provider is configured
	responder *ai.Responder
}

// NewChatService wires the chat flow. completer may be nil; every send
// then falls through to the canned responder, which is what demo mode
// and missing-credential deployments rely on.
func NewChatService(s store.Store, completer ai.Completer, responder *ai.Responder) *ChatService {
	return &ChatService{
		store:     s,
		completer: completer,
		responder: responder,
	}
}

// SendMessage processes one user message and returns the character's
// reply along with the session it was recorded in.
func (s *ChatService) SendMessage(ctx context.Context, userID, characterID uuid.UUID, message string) (*models.ChatData, error) {
	character, err := s.store.GetCharacterByID(ctx, characterID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCharacterNotFound
		}
		return nil, fmt.Errorf("failed to fetch character %s: %w", characterID, err)
	}

	reply := s.generateReply(ctx, *character, message)

	session, err := s.store.GetLatestSession(ctx, userID, characterID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("failed to resolve session: %w", err)
		}
		session, err = s.store.CreateSession(ctx, store.CreateSessionParams{
			UserID:      userID,
			CharacterID: characterID,
			Title:       fmt.Sprintf("Chat with %s", character.Name),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create session: %w", err)
		}
		log.Printf("[ChatService] Created session %s for user %s with character %s", session.ID, userID, character.Name)
	}

	_, err = s.store.CreateMessage(ctx, store.CreateMessageParams{
		SessionID:   session.ID,
		UserID:      userID,
		CharacterID: characterID,
		Message:     message,
		Sender:      models.SenderUser,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: user message: %v", ErrPersistingMessage, err)
	}

	aiMessage, err := s.store.CreateMessage(ctx, store.CreateMessageParams{
		SessionID:   session.ID,
		UserID:      userID,
		CharacterID: characterID,
		Message:     reply,
		Sender:      models.SenderCharacter,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: character message: %v", ErrPersistingMessage, err)
	}

	return &models.ChatData{
		Response:      reply,
		Message:       models.NewMessageResponse(*aiMessage),
		SessionID:     session.ID,
		CharacterName: character.Name,
	}, nil
}

// generateReply asks the configured completer for a response and falls
// back to a canned line on any failure. The fallback is silent from the
// client's perspective.
func (s *ChatService) generateReply(ctx context.Context, character models.Character, message string) string {
	if s.completer != nil {
		reply, err := s.completer.Complete(ctx, character, message)
		if err == nil {
			return reply
		}
		log.Printf("[ChatService] Completion failed for character %s, using canned response: %v", character.Name, err)
	}
	return s.responder.Reply(character.Name)
}
