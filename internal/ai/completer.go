package ai

import (
	"context"

	"charchat-backend/internal/models"
)

// Completer produces an in-character reply to a single user message.
// The chat service treats any error as a recoverable degraded mode and
// substitutes a canned response; a Completer failure must never surface
// to the client.
type Completer interface {
	Complete(ctx context.Context, character models.Character, userMessage string) (string, error)
}
