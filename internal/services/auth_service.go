package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"charchat-backend/internal/auth"
	"charchat-backend/internal/config"
	"charchat-backend/internal/models"
	"charchat-backend/internal/store"

	"github.com/google/uuid"
)

// Custom errors for auth service
var (
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrHashingPassword    = errors.New("failed to hash password")
	ErrCreatingToken      = errors.New("failed to create access token")
	ErrCreatingProfile    = errors.New("failed to create profile")
	ErrValidation         = errors.New("input validation failed") // Generic validation error
)

type AuthService struct {
	store store.Store
	cfg   *config.Config
}

func NewAuthService(s store.Store, cfg *config.Config) *AuthService {
	return &AuthService{
		store: s,
		cfg:   cfg,
	}
}

// Signup creates a new profile.
func (s *AuthService) Signup(ctx context.Context, email, password, fullName string) (*models.Profile, error) {
	// Basic validation
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password cannot be empty", ErrValidation)
	}

	// Check if profile already exists
	_, err := s.store.GetProfileByEmail(ctx, email)
	if err == nil {
		// Profile found, return conflict error
		return nil, ErrUserAlreadyExists
	}
	if !errors.Is(err, store.ErrNotFound) {
		// Different error occurred during lookup
		log.Printf("Error checking profile existence for %s: %v", email, err)
		return nil, fmt.Errorf("failed to check profile existence: %w", err)
	}
	// Profile does not exist (store.ErrNotFound received), proceed.

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		log.Printf("Error hashing password for %s: %v", email, err)
		return nil, ErrHashingPassword
	}

	if fullName == "" {
		fullName = email[:strings.Index(email, "@")]
	}

	profile := &models.Profile{
		UserID:         uuid.New(),
		Email:          email,
		FullName:       fullName,
		HashedPassword: hashedPassword,
		// CreatedAt/UpdatedAt set by the store
	}
	if err := s.store.CreateProfile(ctx, profile); err != nil {
		log.Printf("Error creating profile for %s: %v", email, err)
		return nil, fmt.Errorf("%w: %v", ErrCreatingProfile, err)
	}

	log.Printf("Successfully signed up user %s (ID: %s)", email, profile.UserID)
	return profile, nil
}

// Login verifies user credentials and returns an access token and profile info.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.Profile, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return "", nil, ErrInvalidCredentials // Basic check before hitting DB
	}

	profile, err := s.store.GetProfileByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", nil, ErrInvalidCredentials // Don't reveal if user exists or password is wrong
		}
		log.Printf("Error retrieving profile %s during login: %v", email, err)
		return "", nil, fmt.Errorf("failed to retrieve profile: %w", err)
	}

	if !auth.CheckPasswordHash(password, profile.HashedPassword) {
		return "", nil, ErrInvalidCredentials // Password mismatch
	}

	token, err := auth.NewAccessToken(profile.UserID, s.cfg.JWTSecret, s.cfg.TokenExpiration)
	if err != nil {
		log.Printf("Error generating JWT for user %s (ID: %s): %v", email, profile.UserID, err)
		return "", nil, ErrCreatingToken
	}

	log.Printf("Successfully logged in user %s (ID: %s)", email, profile.UserID)
	return token, profile, nil
}
