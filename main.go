package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"

	"github.com/dskvich/ai-proxy/pkg/api"
	"github.com/dskvich/ai-proxy/pkg/logger"
	"github.com/dskvich/ai-proxy/pkg/openai"
	"github.com/dskvich/ai-proxy/pkg/services"
	"github.com/dskvich/ai-proxy/pkg/workers"
)

type Config struct {
	Address           string   `env:"ADDRESS" envDefault:":8080"`
	OpenAIToken       string   `env:"OPEN_AI_TOKEN,required"`
	ModerationToken   string   `env:"MODERATION_TOKEN"`
	OpenAIBaseURL     string   `env:"OPEN_AI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	ImageBaseURL      string   `env:"IMAGE_BASE_URL" envDefault:"https://api.openai.com/v1"`
	ModerationBaseURL string   `env:"MODERATION_BASE_URL" envDefault:"https://api.openai.com/v1"`
	TextModel         string   `env:"TEXT_MODEL" envDefault:"gpt-3.5-turbo-instruct"`
	ImageModel        string   `env:"IMAGE_MODEL" envDefault:"stable-diffusion-xl-base-1.0"`
	MaxTokens         int      `env:"MAX_TOKENS" envDefault:"512"`
	DefaultImageSize  int      `env:"DEFAULT_IMAGE_SIZE" envDefault:"512"`
	MaxImageSize      int      `env:"MAX_IMAGE_SIZE" envDefault:"1400"`
	ImageSteps        int      `env:"IMAGE_STEPS" envDefault:"20"`
	AllowedOrigins    []string `env:"ALLOWED_ORIGINS" envSeparator:" " envDefault:"https://app.example.com http://localhost:3000"`
}

func main() {
	slog.SetDefault(slog.New(logger.NewHandler(os.Stderr, logger.DefaultOptions)))

	if err := runMain(); err != nil {
		slog.Error("shutting down due to error", logger.Err(err))
		os.Exit(1)
	}
	slog.Info("shutdown complete")
}

func runMain() error {
	workerGroup, err := setupWorkers()
	if err != nil {
		return err
	}

	ctx, cancelFn := context.WithCancel(context.Background())
	defer cancelFn()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGHUP)
		select {
		case s := <-sigCh:
			slog.Info("shutting down due to signal", "signal", s.String())
			cancelFn()
		case <-ctx.Done():
		}
	}()

	return workerGroup.Start(ctx)
}

func setupWorkers() (workers.Group, error) {
	_ = godotenv.Load()

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing env config: %w", err)
	}

	textClient, err := openai.NewTextClient(cfg.OpenAIBaseURL, cfg.OpenAIToken, cfg.TextModel, cfg.MaxTokens)
	if err != nil {
		return nil, fmt.Errorf("creating text client: %w", err)
	}

	streamClient, err := openai.NewStreamClient(cfg.OpenAIBaseURL, cfg.OpenAIToken, cfg.TextModel)
	if err != nil {
		return nil, fmt.Errorf("creating stream client: %w", err)
	}

	imageClient, err := openai.NewImageClient(cfg.ImageBaseURL, cfg.OpenAIToken, cfg.ImageModel, cfg.ImageSteps)
	if err != nil {
		return nil, fmt.Errorf("creating image client: %w", err)
	}

	var moderator services.Moderator
	if cfg.ModerationToken != "" {
		moderator = openai.NewModerationClient(cfg.ModerationBaseURL, cfg.ModerationToken)
	} else {
		slog.Warn("moderation token is empty, moderation disabled")
	}

	textService := services.NewTextService(textClient, moderator)
	imageService := services.NewImageService(imageClient, moderator)

	router := api.NewRouter(api.RouterConfig{
		TextService:      textService,
		ImageService:     imageService,
		Streamer:         streamClient,
		AllowedOrigins:   cfg.AllowedOrigins,
		DefaultImageSize: cfg.DefaultImageSize,
		MaxImageSize:     cfg.MaxImageSize,
	})

	var workerGroup workers.Group

	worker, err := workers.NewHTTPServer(cfg.Address, router)
	if err != nil {
		return nil, fmt.Errorf("creating http server worker: %w", err)
	}
	workerGroup = append(workerGroup, worker)

	return workerGroup, nil
}
