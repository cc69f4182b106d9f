package providers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Settings selects and configures a provider client.
type Settings struct {
	Provider   string // "openai", "gemini", "mock", or "none"
	APIKey     string
	Model      string
	MaxRetries int
	Timeout    time.Duration
}

// NewClient builds the LLMClient named by settings. A "none" (or empty)
// provider, or a provider with no API key configured, returns a nil client
// with no error; callers treat a nil client as "fallback disabled". Only an
// unknown provider name is an error.
func NewClient(ctx context.Context, s Settings) (LLMClient, error) {
	provider := strings.ToLower(strings.TrimSpace(s.Provider))
	switch provider {
	case "", "none":
		return nil, nil
	case OpenAIName:
		if s.APIKey == "" {
			slog.Warn("no API key configured, fallback extraction disabled", "provider", provider)
			return nil, nil
		}
		return NewOpenAIClient(OpenAIConfig{
			APIKey:     s.APIKey,
			Model:      s.Model,
			MaxRetries: s.MaxRetries,
			Timeout:    s.Timeout,
		}), nil
	case GeminiName:
		if s.APIKey == "" {
			slog.Warn("no API key configured, fallback extraction disabled", "provider", provider)
			return nil, nil
		}
		return NewGeminiClient(ctx, GeminiConfig{
			APIKey:     s.APIKey,
			Model:      s.Model,
			MaxRetries: s.MaxRetries,
		})
	case MockClientName:
		return NewMockClient(), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", s.Provider)
	}
}
