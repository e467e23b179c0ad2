package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"

	"postforge/internal/config"
	"postforge/internal/observability/metrics"
	"postforge/internal/pkg/llmapi"
)

// Claude generates posts through Anthropic's Claude API. It is the
// alternative provider for deployments without a Groq credential.
type Claude struct {
	client anthropic.Client
	cfg    config.GeneratorConfig
}

// NewClaude creates a Claude generator with the configured credential.
func NewClaude(cfg config.GeneratorConfig) *Claude {
	slog.Info("initialized claude post generator",
		slog.String("model", cfg.ClaudeModel),
		slog.Int("max_tokens", cfg.MaxTokens))

	return &Claude{
		client: anthropic.NewClient(option.WithAPIKey(cfg.AnthropicAPIKey)),
		cfg:    cfg,
	}
}

// Generate sends exactly one message request and returns the first text
// block. A non-2xx upstream response surfaces as *llmapi.UpstreamError.
func (c *Claude) Generate(ctx context.Context, system, user string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	requestID := uuid.New().String()
	start := time.Now()

	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.cfg.ClaudeModel),
		MaxTokens:   int64(c.cfg.MaxTokens),
		Temperature: anthropic.Float(float64(c.cfg.Temperature)),
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
	})
	duration := time.Since(start)

	if err != nil {
		metrics.RecordPostGenerated(false, duration)
		slog.ErrorContext(ctx, "claude completion failed",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))

		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return "", &llmapi.UpstreamError{
				Status:  apiErr.StatusCode,
				Details: llmapi.Truncate(apiErr.Error()),
			}
		}
		return "", fmt.Errorf("claude api error: %w", err)
	}

	metrics.RecordPostGenerated(true, duration)
	slog.InfoContext(ctx, "claude completion finished",
		slog.String("request_id", requestID),
		slog.Duration("duration", duration))

	if len(message.Content) == 0 {
		return "", nil
	}
	textBlock, ok := message.Content[0].AsAny().(anthropic.TextBlock)
	if !ok {
		return "", fmt.Errorf("claude api returned unexpected response type")
	}
	return textBlock.Text, nil
}
