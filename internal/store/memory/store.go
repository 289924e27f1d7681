package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"charchat-backend/internal/models"
	"charchat-backend/internal/store"

	"github.com/google/uuid"
)

// Compile-time check to ensure MemoryStore implements store.Store
var _ store.Store = (*MemoryStore)(nil)

// MemoryStore is the demo-mode backend: a process-local, non-persistent
// stand-in for Postgres. Messages are keyed by session id, exactly like
// the live store, with the session record as the single source of truth.
type MemoryStore struct {
	mu         sync.RWMutex
	profiles   map[string]models.Profile // keyed by lowercase email
	characters []models.Character
	sessions   map[uuid.UUID]models.ChatSession
	messages   map[uuid.UUID][]models.ChatMessage // keyed by session id
}

// NewMemoryStore returns an empty in-memory store. Use NewSeededStore
// for the demo catalog.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		profiles: make(map[string]models.Profile),
		sessions: make(map[uuid.UUID]models.ChatSession),
		messages: make(map[uuid.UUID][]models.ChatMessage),
	}
}

// GetProfileByEmail retrieves a profile by email address.
func (s *MemoryStore) GetProfileByEmail(_ context.Context, email string) (*models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[strings.ToLower(email)]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &profile, nil
}

// CreateProfile stores a new profile record.
func (s *MemoryStore) CreateProfile(_ context.Context, profile *models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	if profile.UpdatedAt.IsZero() {
		profile.UpdatedAt = now
	}
	s.profiles[strings.ToLower(profile.Email)] = *profile
	return nil
}

// AddCharacter inserts a character into the catalog. Used by seeding
// and by tests; the HTTP API never creates characters.
func (s *MemoryStore) AddCharacter(character models.Character) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.characters = append(s.characters, character)
}

// ListCharacters returns all public characters, newest first.
func (s *MemoryStore) ListCharacters(_ context.Context) ([]models.Character, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []models.Character
	for _, c := range s.characters {
		if c.IsPublic {
			items = append(items, c)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

// GetCharacterByID looks up a character by identifier.
func (s *MemoryStore) GetCharacterByID(_ context.Context, id uuid.UUID) (*models.Character, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.characters {
		if c.ID == id {
			character := c
			return &character, nil
		}
	}
	return nil, store.ErrNotFound
}

// ListSessionsByUser returns sessions owned by userID, most recently
// updated first, capped at limit.
func (s *MemoryStore) ListSessionsByUser(_ context.Context, userID uuid.UUID, limit int) ([]models.ChatSession, error) {
	if limit <= 0 || limit > store.DefaultSessionLimit {
		limit = store.DefaultSessionLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []models.ChatSession
	for _, session := range s.sessions {
		if session.UserID == userID {
			items = append(items, session)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].UpdatedAt.After(items[j].UpdatedAt)
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// GetLatestSession resolves the most recently updated session for the
// (user, character) pair.
func (s *MemoryStore) GetLatestSession(_ context.Context, userID, characterID uuid.UUID) (*models.ChatSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var latest *models.ChatSession
	for _, session := range s.sessions {
		if session.UserID != userID || session.CharacterID != characterID {
			continue
		}
		if latest == nil || session.UpdatedAt.After(latest.UpdatedAt) {
			candidate := session
			latest = &candidate
		}
	}
	if latest == nil {
		return nil, store.ErrNotFound
	}
	return latest, nil
}

// CreateSession provisions a new conversation thread.
func (s *MemoryStore) CreateSession(_ context.Context, arg store.CreateSessionParams) (*models.ChatSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	session := models.ChatSession{
		ID:          uuid.New(),
		UserID:      arg.UserID,
		CharacterID: arg.CharacterID,
		Title:       arg.Title,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.sessions[session.ID] = session
	s.messages[session.ID] = make([]models.ChatMessage, 0, 16)
	return &session, nil
}

// ListMessagesBySession returns the session transcript, oldest first.
func (s *MemoryStore) ListMessagesBySession(_ context.Context, sessionID uuid.UUID) ([]models.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages, ok := s.messages[sessionID]
	if !ok {
		return nil, nil
	}

	copied := make([]models.ChatMessage, len(messages))
	copy(copied, messages)
	sort.SliceStable(copied, func(i, j int) bool {
		return copied[i].CreatedAt.Before(copied[j].CreatedAt)
	})
	return copied, nil
}

// CreateMessage appends a message to the session transcript and bumps
// the session's updated_at, mirroring the live store's behavior.
func (s *MemoryStore) CreateMessage(_ context.Context, arg store.CreateMessageParams) (*models.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[arg.SessionID]
	if !ok {
		return nil, store.ErrNotFound
	}

	message := models.ChatMessage{
		ID:          uuid.New(),
		SessionID:   arg.SessionID,
		UserID:      arg.UserID,
		CharacterID: arg.CharacterID,
		Message:     arg.Message,
		Sender:      arg.Sender,
		CreatedAt:   time.Now().UTC(),
	}
	s.messages[arg.SessionID] = append(s.messages[arg.SessionID], message)

	session.UpdatedAt = message.CreatedAt
	s.sessions[arg.SessionID] = session

	return &message, nil
}
