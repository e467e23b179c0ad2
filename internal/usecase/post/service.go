package post

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"postforge/internal/domain/entity"
	uctext "postforge/internal/utils/text"
)

// Generator produces one chat completion for a system/user message pair.
// Implementations live under internal/infra/generator.
type Generator interface {
	Generate(ctx context.Context, system, user string) (string, error)
}

// FallbackPost is returned when the upstream call succeeds but the first
// choice carries no text.
const FallbackPost = "Unable to generate post. Please try again."

// GenerateInput carries the company fields plus the optional topic and
// selected news for one generation request.
type GenerateInput struct {
	Profile      entity.CompanyProfile
	Topic        string
	SelectedNews []NewsRef
}

// Service provides the post-generation use case.
type Service struct {
	// Gen is nil when no generator credential is configured; Generate then
	// fails with ErrGeneratorNotConfigured before any outbound call.
	Gen Generator
}

// Generate validates the input, builds the prompt and requests exactly one
// completion. Validation failures and missing configuration are reported
// before any outbound call is attempted.
func (s *Service) Generate(ctx context.Context, in GenerateInput) (string, error) {
	if err := validate(in.Profile); err != nil {
		return "", err
	}
	if s.Gen == nil {
		return "", ErrGeneratorNotConfigured
	}

	text, err := s.Gen.Generate(ctx, SystemMessage(), UserMessage(in.Profile, in.Topic, in.SelectedNews))
	if err != nil {
		return "", fmt.Errorf("generate post: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return FallbackPost, nil
	}

	// The budget is a prompt-level ask, not a hard limit; an oversized post
	// is returned as-is but flagged for prompt tuning.
	if !uctext.WithinTarget(text) {
		slog.WarnContext(ctx, "generated post exceeds length target",
			slog.Int("chars", uctext.CountRunes(text)),
			slog.Int("target", uctext.TargetPostLength))
	}
	return text, nil
}

// validate enforces the required company fields. The remaining profile
// fields are optional; an empty selling-point list degrades the prompt but
// does not fail the request.
func validate(p entity.CompanyProfile) error {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return &entity.ValidationError{Field: "companyName", Message: "is required"}
	case strings.TrimSpace(p.Industry) == "":
		return &entity.ValidationError{Field: "industry", Message: "is required"}
	case strings.TrimSpace(p.TargetAudience) == "":
		return &entity.ValidationError{Field: "targetAudience", Message: "is required"}
	}
	return nil
}
