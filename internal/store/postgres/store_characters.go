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

// The backing table uses owner_id/is_active column names; they are
// scanned into CreatedBy/IsPublic so both store implementations expose
// the same character shape.

const listCharacters = `-- name: ListCharacters :many
SELECT id, name, COALESCE(description, ''), COALESCE(personality, ''), avatar_url, owner_id, is_active, created_at, updated_at
FROM characters
WHERE is_active = TRUE
ORDER BY created_at DESC;
`

func (s *PostgresStore) ListCharacters(ctx context.Context) ([]models.Character, error) {
	rows, err := s.db.Query(ctx, listCharacters)
	if err != nil {
		return nil, fmt.Errorf("error querying characters: %w", err)
	}
	defer rows.Close()

	var items []models.Character
	for rows.Next() {
		var i models.Character
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Description,
			&i.Personality,
			&i.AvatarURL,
			&i.CreatedBy,
			&i.IsPublic,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning character row: %w", err)
		}
		items = append(items, i)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating character rows: %w", err)
	}

	return items, nil
}

const getCharacterByID = `-- name: GetCharacterByID :one
SELECT id, name, COALESCE(description, ''), COALESCE(personality, ''), avatar_url, owner_id, is_active, created_at, updated_at
FROM characters
WHERE id = $1 AND is_active = TRUE;
`

func (s *PostgresStore) GetCharacterByID(ctx context.Context, id uuid.UUID) (*models.Character, error) {
	row := s.db.QueryRow(ctx, getCharacterByID, id)
	var i models.Character
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Description,
		&i.Personality,
		&i.AvatarURL,
		&i.CreatedBy,
		&i.IsPublic,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("error scanning character: %w", err)
	}
	return &i, nil
}
