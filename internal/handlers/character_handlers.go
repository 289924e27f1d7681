package handlers

import (
	"context"
	"errors"
	"net/http"

	api_models "charchat-backend/internal/models"
	db_models "charchat-backend/internal/models"
	"charchat-backend/internal/services"
	"charchat-backend/pkg/httputil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// CharacterService defines the interface expected from the character service.
type CharacterService interface {
	ListCharacters(ctx context.Context) []db_models.Character
	GetCharacter(ctx context.Context, characterID uuid.UUID) (*db_models.Character, error)
}

type CharacterHandler struct {
	characterService CharacterService
}

func NewCharacterHandler(characterSvc CharacterService) *CharacterHandler {
	return &CharacterHandler{
		characterService: characterSvc,
	}
}

// HandleListCharacters handles the GET /v1/characters request.
func (h *CharacterHandler) HandleListCharacters(w http.ResponseWriter, r *http.Request) {
	characters := h.characterService.ListCharacters(r.Context())

	resp := api_models.ListCharactersResponse{
		Characters: make([]api_models.CharacterResponse, 0, len(characters)),
	}
	for _, c := range characters {
		resp.Characters = append(resp.Characters, api_models.NewCharacterResponse(c))
	}
	httputil.RespondJSON(w, http.StatusOK, resp)
}

// HandleGetCharacter handles the GET /v1/characters/{characterID} request.
func (h *CharacterHandler) HandleGetCharacter(w http.ResponseWriter, r *http.Request) {
	characterIDStr := chi.URLParam(r, "characterID")
	characterID, err := uuid.Parse(characterIDStr)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, api_models.ErrCodeBadRequest, "Invalid character ID format")
		return
	}

	character, err := h.characterService.GetCharacter(r.Context(), characterID)
	if err != nil {
		if errors.Is(err, services.ErrCharacterNotFound) {
			httputil.RespondError(w, http.StatusNotFound, api_models.ErrCodeNotFound, err.Error())
			return
		}
		httputil.RespondError(w, http.StatusInternalServerError, api_models.ErrCodeInternal, "Failed to fetch character")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, api_models.NewCharacterResponse(*character))
}
