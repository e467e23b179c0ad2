package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"

	"postforge/internal/config"
	"postforge/internal/observability/metrics"
	"postforge/internal/pkg/llmapi"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

// Groq generates posts through Groq's OpenAI-compatible chat completion API.
type Groq struct {
	client *openai.Client
	cfg    config.GeneratorConfig
}

// NewGroq creates a Groq generator with the configured credential and model.
func NewGroq(cfg config.GeneratorConfig) *Groq {
	clientCfg := openai.DefaultConfig(cfg.GroqAPIKey)
	clientCfg.BaseURL = groqBaseURL

	slog.Info("initialized groq post generator",
		slog.String("model", cfg.GroqModel),
		slog.Int("max_tokens", cfg.MaxTokens))

	return &Groq{client: openai.NewClientWithConfig(clientCfg), cfg: cfg}
}

// Generate sends exactly one chat-completion request and returns the first
// choice's text. A non-2xx upstream response surfaces as *llmapi.UpstreamError
// carrying the upstream status; nothing is retried.
func (g *Groq) Generate(ctx context.Context, system, user string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	requestID := uuid.New().String()
	start := time.Now()

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.cfg.GroqModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: g.cfg.Temperature,
		MaxTokens:   g.cfg.MaxTokens,
	})
	duration := time.Since(start)

	if err != nil {
		metrics.RecordPostGenerated(false, duration)
		slog.ErrorContext(ctx, "groq completion failed",
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
		return "", fmt.Errorf("groq api error: %w", err)
	}

	metrics.RecordPostGenerated(true, duration)
	slog.InfoContext(ctx, "groq completion finished",
		slog.String("request_id", requestID),
		slog.Duration("duration", duration))

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
