package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"charchat-backend/internal/models"
	"charchat-backend/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Compile-time check to ensure PostgresStore implements store.Store
var _ store.Store = (*PostgresStore)(nil)

type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// GetProfileByEmail retrieves a profile by email address.
// Returns store.ErrNotFound if the profile does not exist.
func (s *PostgresStore) GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error) {
	log.Printf("[PostgresStore] GetProfileByEmail called for: %s", email)
	query := `
		SELECT user_id, email, full_name, hashed_password, created_at, updated_at
		FROM profiles
		WHERE email = $1`

	profile := &models.Profile{}
	err := s.db.QueryRow(ctx, query, email).Scan(
		&profile.UserID,
		&profile.Email,
		&profile.FullName,
		&profile.HashedPassword,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("[PostgresStore] GetProfileByEmail: Profile not found for email %s", email)
			return nil, store.ErrNotFound
		}
		log.Printf("ERROR [PostgresStore] GetProfileByEmail: Failed to query/scan profile for email %s: %v", email, err)
		return nil, fmt.Errorf("database error fetching profile by email: %w", err)
	}

	return profile, nil
}

// CreateProfile inserts a new profile record into the database.
func (s *PostgresStore) CreateProfile(ctx context.Context, profile *models.Profile) error {
	log.Printf("[PostgresStore] CreateProfile called for: %s (UserID: %s)", profile.Email, profile.UserID)
	query := `
		INSERT INTO profiles (user_id, email, full_name, hashed_password)
		VALUES ($1, $2, $3, $4)`
	// created_at and updated_at have database defaults (NOW())

	_, err := s.db.Exec(ctx, query,
		profile.UserID,
		profile.Email,
		profile.FullName,
		profile.HashedPassword,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			// "23505" is unique_violation (duplicate email)
			log.Printf("ERROR [PostgresStore] CreateProfile: PostgreSQL error executing insert for email %s: Code=%s, Message=%s, Detail=%s", profile.Email, pgErr.Code, pgErr.Message, pgErr.Detail)
		} else {
			log.Printf("ERROR [PostgresStore] CreateProfile: Failed to execute insert for email %s: %v", profile.Email, err)
		}
		return fmt.Errorf("database error creating profile: %w", err)
	}

	log.Printf("[PostgresStore] CreateProfile: Successfully inserted profile %s for email %s", profile.UserID, profile.Email)
	return nil
}
