package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dskvich/ai-proxy/pkg/domain"
	"github.com/dskvich/ai-proxy/pkg/logger"
	"github.com/dskvich/ai-proxy/pkg/prompt"
)

type TextGenerator interface {
	CompleteText(ctx context.Context, prompt string) (string, int64, error)
}

type Moderator interface {
	ModerateText(ctx context.Context, text string) (bool, error)
	ModerateImage(ctx context.Context, imageB64 string) (bool, error)
}

type textService struct {
	generator TextGenerator
	moderator Moderator
}

// NewTextService creates the text pipeline. A nil moderator disables the
// moderation gate entirely.
func NewTextService(generator TextGenerator, moderator Moderator) *textService {
	return &textService{
		generator: generator,
		moderator: moderator,
	}
}

// GenerateText moderates the raw user prompt before any generation happens.
// A flagged prompt short-circuits with the fixed flagged message and never
// reaches the provider. Moderation failures fail open.
func (s *textService) GenerateText(ctx context.Context, userPrompt string) (*domain.TextResponse, error) {
	if s.moderator != nil {
		flagged, err := s.moderator.ModerateText(ctx, userPrompt)
		if err != nil {
			slog.WarnContext(ctx, "Moderation failed, proceeding unmoderated", logger.Err(err))
		}
		if flagged {
			slog.InfoContext(ctx, "Prompt flagged by moderation")
			return &domain.TextResponse{
				Response:  domain.FlaggedContentMessage,
				CreatedAt: time.Now().Unix(),
			}, nil
		}
	}

	templated := prompt.Apply(prompt.ChatTemplate, userPrompt)

	text, createdAt, err := s.generator.CompleteText(ctx, templated)
	if err != nil {
		return nil, fmt.Errorf("completing text: %w", err)
	}

	return &domain.TextResponse{Response: text, CreatedAt: createdAt}, nil
}
