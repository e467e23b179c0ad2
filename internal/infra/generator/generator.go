// Package generator provides the chat-completion adapters behind the post
// generation gateway: Groq's OpenAI-compatible API, Anthropic's Claude API
// and a mock for running without credentials.
package generator

import (
	"postforge/internal/config"
	"postforge/internal/usecase/post"
)

// New selects the generator implementation for the configured provider.
// It returns nil when the required credential is absent, so the gateway can
// report a configuration error per request instead of failing at startup.
func New(cfg config.GeneratorConfig) post.Generator {
	switch cfg.Provider {
	case config.ProviderMock:
		return NewMock()
	case config.ProviderClaude:
		if cfg.AnthropicAPIKey == "" {
			return nil
		}
		return NewClaude(cfg)
	default:
		if cfg.GroqAPIKey == "" {
			return nil
		}
		return NewGroq(cfg)
	}
}
