package memory

import (
	"context"
	"testing"
	"time"

	"charchat-backend/internal/models"
	"charchat-backend/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededStoreCatalog(t *testing.T) {
	s := NewSeededStore()
	ctx := context.Background()

	characters, err := s.ListCharacters(ctx)
	require.NoError(t, err)
	require.Len(t, characters, 4)

	// Newest first: Zara was seeded last.
	assert.Equal(t, "Zara", characters[0].Name)
	assert.Equal(t, "Maya", characters[3].Name)

	maya, err := s.GetCharacterByID(ctx, CharacterMayaID)
	require.NoError(t, err)
	assert.Equal(t, "Maya", maya.Name)
	assert.True(t, maya.IsPublic)
}

func TestListCharactersFiltersPrivate(t *testing.T) {
	s := NewMemoryStore()
	s.AddCharacter(models.Character{
		ID:        uuid.New(),
		Name:      "Public",
		IsPublic:  true,
		CreatedAt: time.Now(),
	})
	s.AddCharacter(models.Character{
		ID:        uuid.New(),
		Name:      "Private",
		IsPublic:  false,
		CreatedAt: time.Now(),
	})

	characters, err := s.ListCharacters(context.Background())
	require.NoError(t, err)
	require.Len(t, characters, 1)
	assert.Equal(t, "Public", characters[0].Name)
}

func TestGetCharacterByIDNotFound(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.GetCharacterByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSeededStoreSessionOrdering(t *testing.T) {
	s := NewSeededStore()

	sessions, err := s.ListSessionsByUser(context.Background(), DemoUserID, store.DefaultSessionLimit)
	require.NoError(t, err)
	require.Len(t, sessions, 3)

	// The Maya thread's seed exchange postdates the other sessions, so it
	// must surface first under updated-desc ordering.
	assert.Equal(t, "Creative Writing Project", sessions[0].Title)
	assert.True(t, sessions[0].UpdatedAt.After(sessions[1].UpdatedAt))
	assert.True(t, sessions[1].UpdatedAt.After(sessions[2].UpdatedAt))
}

func TestSeededStoreTranscript(t *testing.T) {
	s := NewSeededStore()
	ctx := context.Background()

	session, err := s.GetLatestSession(ctx, DemoUserID, CharacterMayaID)
	require.NoError(t, err)
	assert.Equal(t, "Creative Writing Project", session.Title)

	messages, err := s.ListMessagesBySession(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, models.SenderUser, messages[0].Sender)
	assert.Equal(t, models.SenderCharacter, messages[1].Sender)
	assert.True(t, messages[0].CreatedAt.Before(messages[1].CreatedAt))

	// The session's updated_at reflects the last message in the thread.
	assert.Equal(t, messages[1].CreatedAt, session.UpdatedAt)
}

func TestCreateMessageBumpsSession(t *testing.T) {
	s := NewSeededStore()
	ctx := context.Background()

	before, err := s.GetLatestSession(ctx, DemoUserID, CharacterEchoID)
	require.NoError(t, err)

	_, err = s.CreateMessage(ctx, store.CreateMessageParams{
		SessionID:   before.ID,
		UserID:      DemoUserID,
		CharacterID: CharacterEchoID,
		Message:     "hello",
		Sender:      models.SenderUser,
	})
	require.NoError(t, err)

	after, err := s.GetLatestSession(ctx, DemoUserID, CharacterEchoID)
	require.NoError(t, err)
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt))
}

func TestCreateMessageUnknownSession(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.CreateMessage(context.Background(), store.CreateMessageParams{
		SessionID: uuid.New(),
		Message:   "orphan",
		Sender:    models.SenderUser,
	})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestGetLatestSessionPicksMostRecentlyUpdated(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	userID := uuid.New()
	characterID := uuid.New()

	first, err := s.CreateSession(ctx, store.CreateSessionParams{
		UserID:      userID,
		CharacterID: characterID,
		Title:       "First",
	})
	require.NoError(t, err)

	second, err := s.CreateSession(ctx, store.CreateSessionParams{
		UserID:      userID,
		CharacterID: characterID,
		Title:       "Second",
	})
	require.NoError(t, err)

	// Writing to the older session makes it the latest again.
	_, err = s.CreateMessage(ctx, store.CreateMessageParams{
		SessionID:   first.ID,
		UserID:      userID,
		CharacterID: characterID,
		Message:     "back to the first thread",
		Sender:      models.SenderUser,
	})
	require.NoError(t, err)

	latest, err := s.GetLatestSession(ctx, userID, characterID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, latest.ID)
	assert.NotEqual(t, second.ID, latest.ID)
}

func TestListSessionsByUserCapped(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	userID := uuid.New()

	for i := 0; i < store.DefaultSessionLimit+5; i++ {
		_, err := s.CreateSession(ctx, store.CreateSessionParams{
			UserID:      userID,
			CharacterID: uuid.New(),
			Title:       "Session",
		})
		require.NoError(t, err)
	}

	sessions, err := s.ListSessionsByUser(ctx, userID, store.DefaultSessionLimit)
	require.NoError(t, err)
	assert.Len(t, sessions, store.DefaultSessionLimit)

	// Oversized and non-positive limits clamp to the default cap.
	sessions, err = s.ListSessionsByUser(ctx, userID, 1000)
	require.NoError(t, err)
	assert.Len(t, sessions, store.DefaultSessionLimit)
}

func TestProfileRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.GetProfileByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, store.ErrNotFound)

	profile := &models.Profile{
		UserID:         uuid.New(),
		Email:          "Someone@Example.com",
		FullName:       "Someone",
		HashedPassword: "not-a-real-hash",
	}
	require.NoError(t, s.CreateProfile(ctx, profile))

	// Lookup is case-insensitive on email.
	got, err := s.GetProfileByEmail(ctx, "someone@example.com")
	require.NoError(t, err)
	assert.Equal(t, profile.UserID, got.UserID)
	assert.False(t, got.CreatedAt.IsZero())
}
