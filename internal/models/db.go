package models

import (
	"time"

	"github.com/google/uuid"
)

// Sender identifies which side of a conversation authored a message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderCharacter Sender = "character"
)

// Profile represents a registered user in the database.
type Profile struct {
	UserID         uuid.UUID `db:"user_id"`
	Email          string    `db:"email"`
	FullName       string    `db:"full_name"`
	HashedPassword string    `db:"hashed_password"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// Character represents a predefined AI persona from the catalog.
// Characters are immutable from the client's perspective; the live
// backend stores them with owner_id/is_active columns which are mapped
// onto CreatedBy/IsPublic here.
type Character struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Personality string    `db:"personality"`
	AvatarURL   *string   `db:"avatar_url"` // Use pointer for nullable text
	CreatedBy   uuid.UUID `db:"created_by"`
	IsPublic    bool      `db:"is_public"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// ChatSession represents one ongoing conversation between a user and a character.
// The most recently updated session per (user, character) pair is the
// active one; message inserts bump UpdatedAt.
type ChatSession struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	CharacterID uuid.UUID `db:"character_id"`
	Title       string    `db:"title"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// ChatMessage represents a single persisted turn in a chat session.
// Messages are immutable once created and ordered by CreatedAt ascending.
type ChatMessage struct {
	ID          uuid.UUID `db:"id"`
	SessionID   uuid.UUID `db:"session_id"`
	UserID      uuid.UUID `db:"user_id"`
	CharacterID uuid.UUID `db:"character_id"`
	Message     string    `db:"message"`
	Sender      Sender    `db:"sender"`
	CreatedAt   time.Time `db:"created_at"`
}
