package postgres

import (
	"context"
	"errors"
	"fmt"

	"charchat-backend/internal/models"
	"charchat-backend/internal/store"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const listSessionsByUser = `-- name: ListSessionsByUser :many
SELECT id, user_id, character_id, title, created_at, updated_at
FROM chat_sessions
WHERE user_id = $1
ORDER BY updated_at DESC
LIMIT $2;
`

func (s *PostgresStore) ListSessionsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.ChatSession, error) {
	if limit <= 0 || limit > store.DefaultSessionLimit {
		limit = store.DefaultSessionLimit
	}

	rows, err := s.db.Query(ctx, listSessionsByUser, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying chat sessions: %w", err)
	}
	defer rows.Close()

	var items []models.ChatSession
	for rows.Next() {
		var i models.ChatSession
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.CharacterID,
			&i.Title,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning chat session row: %w", err)
		}
		items = append(items, i)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating chat session rows: %w", err)
	}

	return items, nil
}

const getLatestSession = `-- name: GetLatestSession :one
SELECT id, user_id, character_id, title, created_at, updated_at
FROM chat_sessions
WHERE user_id = $1 AND character_id = $2
ORDER BY updated_at DESC
LIMIT 1;
`

// GetLatestSession resolves the active conversation for a (user,
// character) pair: the most recently updated session wins.
func (s *PostgresStore) GetLatestSession(ctx context.Context, userID, characterID uuid.UUID) (*models.ChatSession, error) {
	row := s.db.QueryRow(ctx, getLatestSession, userID, characterID)
	var i models.ChatSession
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.CharacterID,
		&i.Title,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("error scanning chat session: %w", err)
	}
	return &i, nil
}

const createSession = `-- name: CreateSession :one
INSERT INTO chat_sessions (
    id, user_id, character_id, title
) VALUES (
    $1, $2, $3, $4
)
RETURNING id, user_id, character_id, title, created_at, updated_at;
`

func (s *PostgresStore) CreateSession(ctx context.Context, arg store.CreateSessionParams) (*models.ChatSession, error) {
	row := s.db.QueryRow(ctx, createSession,
		uuid.New(),
		arg.UserID,
		arg.CharacterID,
		arg.Title,
	)
	var i models.ChatSession
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.CharacterID,
		&i.Title,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("error scanning created chat session: %w", err)
	}
	return &i, nil
}
