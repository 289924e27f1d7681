package services

import (
	"context"
	"errors"
	"log"

	"charchat-backend/internal/models"
	"charchat-backend/internal/store"

	"github.com/google/uuid"
)

var ErrCharacterNotFound = errors.New("character not found")

// CharacterService exposes read access to the character catalog.
type CharacterService struct {
	store store.Store
}

func NewCharacterService(s store.Store) *CharacterService {
	return &CharacterService{store: s}
}

// ListCharacters returns all public characters, newest first. A store
// failure degrades to an empty list so the catalog page still renders.
func (s *CharacterService) ListCharacters(ctx context.Context) []models.Character {
	characters, err := s.store.ListCharacters(ctx)
	if err != nil {
		log.Printf("[CharacterService] Error listing characters: %v", err)
		return []models.Character{}
	}
	if characters == nil {
		characters = []models.Character{}
	}
	return characters
}

// GetCharacter fetches a single character by ID.
func (s *CharacterService) GetCharacter(ctx context.Context, characterID uuid.UUID) (*models.Character, error) {
	character, err := s.store.GetCharacterByID(ctx, characterID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCharacterNotFound
		}
		log.Printf("[CharacterService] Error fetching character %s: %v", characterID, err)
		return nil, err
	}
	return character, nil
}
