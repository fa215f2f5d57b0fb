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

type ImageGenerator interface {
	GenerateImage(ctx context.Context, params domain.ImageParams) (string, error)
}

type imageService struct {
	generator ImageGenerator
	moderator Moderator
}

func NewImageService(generator ImageGenerator, moderator Moderator) *imageService {
	return &imageService{
		generator: generator,
		moderator: moderator,
	}
}

// GenerateImage generates the image first and moderates the produced
// output, not the prompt. Moderation failures fail open.
func (s *imageService) GenerateImage(ctx context.Context, userPrompt string, width, height int, seed int64) (*domain.ImageResult, error) {
	slog.InfoContext(ctx, "Starting image generation", "width", width, "height", height)

	params := domain.ImageParams{
		Prompt:         prompt.Apply(prompt.ImageTemplate, userPrompt),
		NegativePrompt: prompt.ImageNegativePrompt,
		Width:          width,
		Height:         height,
		Seed:           seed,
	}

	data, err := s.generator.GenerateImage(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("generating image: %w", err)
	}

	slog.InfoContext(ctx, "Image generated", "size", len(data))

	if s.moderator != nil {
		flagged, err := s.moderator.ModerateImage(ctx, data)
		if err != nil {
			slog.WarnContext(ctx, "Moderation failed, proceeding unmoderated", logger.Err(err))
		}
		if flagged {
			slog.InfoContext(ctx, "Generated image flagged by moderation")
			return &domain.ImageResult{Flagged: true, CreatedAt: time.Now().Unix()}, nil
		}
	}

	return &domain.ImageResult{Data: data}, nil
}
