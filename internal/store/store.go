package store

import (
	"context"
	"errors"

	"charchat-backend/internal/models"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a specific record is not found.
var ErrNotFound = errors.New("record not found")

// DefaultSessionLimit caps how many sessions a listing returns.
const DefaultSessionLimit = 10

// CreateSessionParams contains parameters for creating a chat session.
type CreateSessionParams struct {
	UserID      uuid.UUID
	CharacterID uuid.UUID
	Title       string
}

// CreateMessageParams contains parameters for appending a message to a session.
type CreateMessageParams struct {
	SessionID   uuid.UUID
	UserID      uuid.UUID
	CharacterID uuid.UUID
	Message     string
	Sender      models.Sender
}

// Store defines the interface for data access. Two implementations
// exist: the Postgres-backed live store and the seeded in-memory demo
// store. The instance is chosen once at startup and injected into the
// services, so callers never branch on the operating mode.
type Store interface {
	// Profile operations
	GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error)
	CreateProfile(ctx context.Context, profile *models.Profile) error

	// Character catalog operations. ListCharacters returns active/public
	// characters newest first; GetCharacterByID returns ErrNotFound for
	// absent or inactive characters.
	ListCharacters(ctx context.Context) ([]models.Character, error)
	GetCharacterByID(ctx context.Context, id uuid.UUID) (*models.Character, error)

	// Session operations. GetLatestSession resolves the most recently
	// updated session for a (user, character) pair; that session is the
	// active conversation when multiple exist.
	ListSessionsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.ChatSession, error)
	GetLatestSession(ctx context.Context, userID, characterID uuid.UUID) (*models.ChatSession, error)
	CreateSession(ctx context.Context, arg CreateSessionParams) (*models.ChatSession, error)

	// Message operations. Messages are keyed by session in both
	// implementations; CreateMessage also bumps the session's updated_at.
	ListMessagesBySession(ctx context.Context, sessionID uuid.UUID) ([]models.ChatMessage, error)
	CreateMessage(ctx context.Context, arg CreateMessageParams) (*models.ChatMessage, error)
}
