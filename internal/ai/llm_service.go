package ai

import (
	"context"
	"fmt"
	"log"

	"charchat-backend/internal/config"
	"charchat-backend/internal/models"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
)

// Compile-time check to ensure LLMService implements Completer
var _ Completer = (*LLMService)(nil)

// LLMService generates character replies through an OpenAI-compatible
// chat-completion endpoint (DeepSeek by default). The prompt carries the
// character's personality and description as system context and the
// user's text as the single user turn.
type LLMService struct {
	chain compose.Runnable[map[string]any, *schema.Message]
}

// NewLLMService builds the completion chain from configuration.
// Callers should check cfg.Enabled() first; without an API key the
// chat service skips straight to canned responses.
func NewLLMService(ctx context.Context, cfg config.AIConfig) (*LLMService, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("completion provider credential missing")
	}

	temperature := cfg.Temperature
	maxTokens := cfg.MaxTokens

	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:      cfg.APIKey,
		BaseURL:     cfg.BaseURL,
		Model:       cfg.Model,
		MaxTokens:   &maxTokens,
		Temperature: &temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &LLMService{chain: runnable}, nil
}

// Complete runs one completion for the character and user message.
func (s *LLMService) Complete(ctx context.Context, character models.Character, userMessage string) (string, error) {
	input := map[string]any{
		"system": buildSystemPrompt(character),
		"query":  userMessage,
	}

	response, err := s.chain.Invoke(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to run completion chain: %w", err)
	}
	if response.Content == "" {
		return "", fmt.Errorf("completion returned empty content")
	}

	log.Printf("[ai] generated response for character=%s, length=%d", character.ID, len(response.Content))
	return response.Content, nil
}

// buildSystemPrompt frames the persona for the model.
func buildSystemPrompt(character models.Character) string {
	return fmt.Sprintf("%s Your name is %s. %s", character.Personality, character.Name, character.Description)
}
