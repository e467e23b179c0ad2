package config

import "time"

// Generator provider identifiers, selected via LLM_PROVIDER.
const (
	ProviderGroq   = "groq"
	ProviderClaude = "claude"
	ProviderMock   = "mock"
)

// GeneratorConfig holds configuration for the post-generation LLM.
// A missing credential does not abort startup: the gateway reports a
// configuration error per request instead, matching the serverless origin
// of these endpoints.
type GeneratorConfig struct {
	// Provider selects the backing API: "groq", "claude" or "mock".
	// Loaded from LLM_PROVIDER. Default: "groq".
	Provider string

	// GroqAPIKey authenticates against Groq's OpenAI-compatible API.
	// Loaded from GROQ_API_KEY.
	GroqAPIKey string

	// AnthropicAPIKey authenticates against the Anthropic API.
	// Loaded from ANTHROPIC_API_KEY.
	AnthropicAPIKey string

	// GroqModel is the chat-completion model id used with the groq provider.
	// Default: "llama3-8b-8192".
	GroqModel string

	// ClaudeModel is the model id used with the claude provider.
	ClaudeModel string

	// Temperature for post generation. Default: 0.7.
	Temperature float32

	// MaxTokens bounds the generated post length. Default: 300.
	MaxTokens int

	// Timeout is the maximum duration for a single generation call.
	// Default: 60s.
	Timeout time.Duration
}

// LoadGeneratorConfig loads the post generator configuration from the
// environment.
func LoadGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Provider:        envStr("LLM_PROVIDER", ProviderGroq),
		GroqAPIKey:      envStr("GROQ_API_KEY", ""),
		AnthropicAPIKey: envStr("ANTHROPIC_API_KEY", ""),
		GroqModel:       envStr("GROQ_MODEL", "llama3-8b-8192"),
		ClaudeModel:     envStr("CLAUDE_MODEL", "claude-sonnet-4-5-20250929"),
		Temperature:     float32(envFloat("LLM_TEMPERATURE", 0.7)),
		MaxTokens:       envInt("LLM_MAX_TOKENS", 300),
		Timeout:         envDuration("LLM_TIMEOUT", 60*time.Second),
	}
}

// DefaultSearchQuery is used when the caller (or the scheduler) supplies no
// query of its own.
const DefaultSearchQuery = "latest news in delivery, transport and electric vehicles industry"

// SearchConfig holds configuration for the search-capable LLM behind the
// news search gateway.
type SearchConfig struct {
	// APIKey authenticates against the Perplexity API.
	// Loaded from PERPLEXITY_API_KEY.
	APIKey string

	// Model is the search-capable chat-completion model id.
	// Default: "llama-3.1-sonar-small-128k-online".
	Model string

	// Temperature for news search. Low by design: the response must be
	// machine-parseable JSON. Default: 0.2.
	Temperature float32

	// MaxTokens bounds the search response. Default: 2000.
	MaxTokens int

	// ItemCount is the number of news items the model is asked for.
	// Default: 5.
	ItemCount int

	// DefaultQuery replaces an empty caller query. Scheduled runs always
	// use it.
	DefaultQuery string

	// Timeout is the maximum duration for a single search call.
	// Default: 60s.
	Timeout time.Duration
}

// LoadSearchConfig loads the news search configuration from the environment.
func LoadSearchConfig() SearchConfig {
	return SearchConfig{
		APIKey:       envStr("PERPLEXITY_API_KEY", ""),
		Model:        envStr("SEARCH_MODEL", "llama-3.1-sonar-small-128k-online"),
		Temperature:  float32(envFloat("SEARCH_TEMPERATURE", 0.2)),
		MaxTokens:    envInt("SEARCH_MAX_TOKENS", 2000),
		ItemCount:    envInt("SEARCH_ITEM_COUNT", 5),
		DefaultQuery: envStr("SEARCH_DEFAULT_QUERY", DefaultSearchQuery),
		Timeout:      envDuration("SEARCH_TIMEOUT", 60*time.Second),
	}
}
