// Package searcher provides the search-capable LLM adapter behind the news
// search gateway.
package searcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"

	"postforge/internal/config"
	"postforge/internal/pkg/llmapi"
	"postforge/internal/usecase/news"
)

const perplexityBaseURL = "https://api.perplexity.ai"

// systemPromptFormat instructs the model to answer with a bare JSON array of
// news objects. The field names are the canonical news item schema; the
// model is nevertheless free to omit ids, which the use case backfills.
const systemPromptFormat = `You are a helpful assistant that provides the latest news about transportation, delivery, and electric vehicles.
Format your response as JSON that matches this structure:
[
  {
    "id": "unique-id",
    "title": "News title",
    "summary": "Brief summary of the news in 2-3 sentences",
    "publishedDate": "ISO date string of when the news was published",
    "source": "Source publication name",
    "sourceLink": "URL to the original news source"
  }
]
Provide exactly %d news items. Each news item must include all fields. Make sure the summary is 2-3 sentences long.
The publishedDate should be the actual publication date of the news article.
The sourceLink should be a valid URL to the original news source if available.`

const userPromptSuffix = "\nFormat your response strictly as JSON that can be parsed directly."

// Perplexity searches the web through Perplexity's OpenAI-compatible
// chat-completion API and returns the raw completion text for parsing.
type Perplexity struct {
	client *openai.Client
	cfg    config.SearchConfig
}

var _ news.Searcher = (*Perplexity)(nil)

// NewPerplexity creates a Perplexity searcher with the configured credential.
func NewPerplexity(cfg config.SearchConfig) *Perplexity {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = perplexityBaseURL

	slog.Info("initialized perplexity news searcher",
		slog.String("model", cfg.Model),
		slog.Int("item_count", cfg.ItemCount))

	return &Perplexity{client: openai.NewClientWithConfig(clientCfg), cfg: cfg}
}

// Search sends exactly one search completion for the query and returns the
// raw completion text. A non-2xx upstream response surfaces as
// *llmapi.UpstreamError; nothing is retried.
func (p *Perplexity) Search(ctx context.Context, query string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	requestID := uuid.New().String()
	slog.InfoContext(ctx, "searching for news",
		slog.String("request_id", requestID),
		slog.String("query", query))

	start := time.Now()
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: fmt.Sprintf(systemPromptFormat, p.cfg.ItemCount)},
			{Role: openai.ChatMessageRoleUser, Content: query + userPromptSuffix},
		},
		Temperature: p.cfg.Temperature,
		MaxTokens:   p.cfg.MaxTokens,
	})
	duration := time.Since(start)

	if err != nil {
		slog.ErrorContext(ctx, "perplexity search failed",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))

		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", &llmapi.UpstreamError{
				Status:  apiErr.HTTPStatusCode,
				Details: llmapi.Truncate(apiErr.Message),
			}
		}
		return "", fmt.Errorf("perplexity api error: %w", err)
	}

	slog.InfoContext(ctx, "perplexity search finished",
		slog.String("request_id", requestID),
		slog.Duration("duration", duration))

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("perplexity api returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// NewFromConfig returns the searcher, or nil when no credential is
// configured so the gateway can report a configuration error per request.
func NewFromConfig(cfg config.SearchConfig) news.Searcher {
	if cfg.APIKey == "" {
		return nil
	}
	return NewPerplexity(cfg)
}
