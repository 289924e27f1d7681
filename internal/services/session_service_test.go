package services_test

import (
	"context"
	"testing"

	"charchat-backend/internal/models"
	"charchat-backend/internal/services"
	"charchat-backend/internal/store/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListSessionsForDemoUser(t *testing.T) {
	svc := services.NewSessionService(memory.NewSeededStore())

	sessions := svc.ListSessions(context.Background(), memory.DemoUserID)
	require.Len(t, sessions, 3)

	// Most recently updated first: the Maya thread carries the seed
	// exchange and so outranks the later-created Sage and Echo threads.
	assert.Equal(t, "Creative Writing Project", sessions[0].Title)
	assert.Equal(t, "Poetic Musings", sessions[1].Title)
	assert.Equal(t, "Philosophy Discussion", sessions[2].Title)
}

func TestListSessionsUnknownUserIsEmpty(t *testing.T) {
	svc := services.NewSessionService(memory.NewSeededStore())

	sessions := svc.ListSessions(context.Background(), uuid.New())
	assert.Empty(t, sessions)
	assert.NotNil(t, sessions)
}

func TestListMessagesResolvesLatestSession(t *testing.T) {
	svc := services.NewSessionService(memory.NewSeededStore())

	messages := svc.ListMessages(context.Background(), memory.DemoUserID, memory.CharacterMayaID)
	require.Len(t, messages, 2)
	assert.Equal(t, models.SenderUser, messages[0].Sender)
	assert.Equal(t, models.SenderCharacter, messages[1].Sender)
}

func TestListMessagesNoSessionIsEmptyNotError(t *testing.T) {
	svc := services.NewSessionService(memory.NewSeededStore())

	// The demo user has never chatted with Zara.
	messages := svc.ListMessages(context.Background(), memory.DemoUserID, memory.CharacterZaraID)
	assert.Empty(t, messages)
	assert.NotNil(t, messages)
}

func TestCharacterServiceList(t *testing.T) {
	svc := services.NewCharacterService(memory.NewSeededStore())

	characters := svc.ListCharacters(context.Background())
	require.Len(t, characters, 4)
	assert.Equal(t, "Zara", characters[0].Name)
}

func TestCharacterServiceGetNotFound(t *testing.T) {
	svc := services.NewCharacterService(memory.NewSeededStore())

	_, err := svc.GetCharacter(context.Background(), uuid.New())
	assert.ErrorIs(t, err, services.ErrCharacterNotFound)
}
