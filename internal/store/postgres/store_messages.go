package postgres

import (
	"context"
	"fmt"
	"log"

	"charchat-backend/internal/models"
	"charchat-backend/internal/store"

	"github.com/google/uuid"
)

const listMessagesBySession = `-- name: ListMessagesBySession :many
SELECT id, session_id, user_id, character_id, message, sender, created_at
FROM chat_messages
WHERE session_id = $1
ORDER BY created_at ASC;
`

func (s *PostgresStore) ListMessagesBySession(ctx context.Context, sessionID uuid.UUID) ([]models.ChatMessage, error) {
	rows, err := s.db.Query(ctx, listMessagesBySession, sessionID)
	if err != nil {
		return nil, fmt.Errorf("error querying chat messages: %w", err)
	}
	defer rows.Close()

	var items []models.ChatMessage
	for rows.Next() {
		var i models.ChatMessage
		if err := rows.Scan(
			&i.ID,
			&i.SessionID,
			&i.UserID,
			&i.CharacterID,
			&i.Message,
			&i.Sender,
			&i.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning chat message row: %w", err)
		}
		items = append(items, i)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating chat message rows: %w", err)
	}

	return items, nil
}

const createMessage = `-- name: CreateMessage :one
INSERT INTO chat_messages (
    id, session_id, user_id, character_id, message, sender
) VALUES (
    $1, $2, $3, $4, $5, $6
)
RETURNING id, session_id, user_id, character_id, message, sender, created_at;
`

const touchSession = `-- name: TouchSession :exec
UPDATE chat_sessions
SET updated_at = NOW()
WHERE id = $1;
`

// CreateMessage appends a message to a session and bumps the session's
// updated_at so the "most recent session wins" resolution stays correct.
// The two statements are not wrapped in a transaction; a crash between
// them leaves a stale session timestamp, which the next send repairs.
func (s *PostgresStore) CreateMessage(ctx context.Context, arg store.CreateMessageParams) (*models.ChatMessage, error) {
	row := s.db.QueryRow(ctx, createMessage,
		uuid.New(),
		arg.SessionID,
		arg.UserID,
		arg.CharacterID,
		arg.Message,
		arg.Sender,
	)
	var i models.ChatMessage
	err := row.Scan(
		&i.ID,
		&i.SessionID,
		&i.UserID,
		&i.CharacterID,
		&i.Message,
		&i.Sender,
		&i.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("error scanning created chat message: %w", err)
	}

	if _, err := s.db.Exec(ctx, touchSession, arg.SessionID); err != nil {
		// The message itself is durable; only the ordering hint is stale.
		log.Printf("WARN [PostgresStore] CreateMessage: failed to touch session %s: %v", arg.SessionID, err)
	}

	return &i, nil
}
