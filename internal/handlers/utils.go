package handlers

import (
	"context"
	"fmt"

	"charchat-backend/internal/auth"

	"github.com/google/uuid"
)

// GetUserIDFromContext extracts the authenticated user ID from the context.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	userIDVal := ctx.Value(auth.UserIDKey)
	if userIDVal == nil {
		return uuid.Nil, fmt.Errorf("user ID not found in context")
	}

	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, fmt.Errorf("user ID in context is not a valid UUID")
	}

	return userID, nil
}
