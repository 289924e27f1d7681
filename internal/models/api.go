package models

import (
	"time"

	"github.com/google/uuid"
)

// --- Request Structs ---

// SignupRequest defines the expected body for the signup endpoint.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
}

// LoginRequest defines the expected body for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SendMessageRequest defines the body for the chat endpoint.
// All three fields are mandatory; a request missing any of them is
// rejected before any side effect occurs.
type SendMessageRequest struct {
	Message     string `json:"message"`
	CharacterID string `json:"characterId"`
	UserID      string `json:"userId"`
}

// --- Response Structs ---

// UserResponse defines the user information returned by the API.
// Avoid returning sensitive info like HashedPassword.
type UserResponse struct {
	UserID   uuid.UUID `json:"user_id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
}

// AuthResponse defines the response body for successful authentication.
type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

// CharacterResponse defines the catalog representation of a character.
type CharacterResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Personality string    `json:"personality"`
	AvatarURL   *string   `json:"avatar_url,omitempty"`
	CreatedBy   uuid.UUID `json:"created_by"`
	IsPublic    bool      `json:"is_public"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListCharactersResponse defines the response structure for listing characters.
type ListCharactersResponse struct {
	Characters []CharacterResponse `json:"characters"`
}

// SessionResponse defines the representation of a chat session.
type SessionResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	CharacterID uuid.UUID `json:"character_id"`
	Title       string    `json:"title"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListSessionsResponse defines the response structure for listing sessions.
type ListSessionsResponse struct {
	Sessions []SessionResponse `json:"sessions"`
}

// MessageResponse defines the representation of a chat message.
type MessageResponse struct {
	ID          uuid.UUID `json:"id"`
	SessionID   uuid.UUID `json:"session_id"`
	UserID      uuid.UUID `json:"user_id"`
	CharacterID uuid.UUID `json:"character_id"`
	Message     string    `json:"message"`
	Sender      Sender    `json:"sender"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListMessagesResponse defines the response structure for a transcript.
type ListMessagesResponse struct {
	Messages []MessageResponse `json:"messages"`
}

// ChatData is the success payload of the chat endpoint: the generated
// response text, the persisted character message record, the session it
// was written to, and the character's display name.
type ChatData struct {
	Response      string          `json:"response"`
	Message       MessageResponse `json:"message"`
	SessionID     uuid.UUID       `json:"session_id"`
	CharacterName string          `json:"character_name"`
}

// DataEnvelope wraps success payloads as {"data": ...}.
type DataEnvelope struct {
	Data interface{} `json:"data"`
}

// ErrorBody carries a machine-readable code plus a descriptive message.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse defines the standard structure for API errors.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// Error codes returned by the API.
const (
	ErrCodeChatFailed        = "CHAT_AI_FAILED"
	ErrCodeMissingParameters = "MISSING_PARAMETERS"
	ErrCodeBadRequest        = "BAD_REQUEST"
	ErrCodeUnauthorized      = "UNAUTHORIZED"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeConflict          = "CONFLICT"
	ErrCodeInternal          = "INTERNAL_ERROR"
)

// NewCharacterResponse maps a DB character onto its API shape.
func NewCharacterResponse(c Character) CharacterResponse {
	return CharacterResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Personality: c.Personality,
		AvatarURL:   c.AvatarURL,
		CreatedBy:   c.CreatedBy,
		IsPublic:    c.IsPublic,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// NewSessionResponse maps a DB session onto its API shape.
func NewSessionResponse(s ChatSession) SessionResponse {
	return SessionResponse{
		ID:          s.ID,
		UserID:      s.UserID,
		CharacterID: s.CharacterID,
		Title:       s.Title,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// NewMessageResponse maps a DB message onto its API shape.
func NewMessageResponse(m ChatMessage) MessageResponse {
	return MessageResponse{
		ID:          m.ID,
		SessionID:   m.SessionID,
		UserID:      m.UserID,
		CharacterID: m.CharacterID,
		Message:     m.Message,
		Sender:      m.Sender,
		CreatedAt:   m.CreatedAt,
	}
}
