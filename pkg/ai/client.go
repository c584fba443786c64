// Package ai wraps the hosted LLM providers behind one small interface.
package ai

import (
	"context"
	"fmt"
	"strings"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type ChatClientInterface interface {
	Reply(ctx context.Context, system, message string) (string, error)
	Name() string
	Close() error
}

// NewChatClient returns nil, nil when no provider is configured.
func NewChatClient(ctx context.Context, provider, apiKey, model string) (ChatClientInterface, error) {
	switch strings.ToLower(provider) {
	case "":
		return nil, nil
	case ProviderOpenAI:
		return NewOpenAIChatClient(apiKey, model), nil
	case ProviderGemini:
		c, err := NewGeminiChatClient(ctx, apiKey, model)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
