package openai

import (
	"context"
	"fmt"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"
)

type textClient struct {
	api       *goopenai.Client
	model     string
	maxTokens int
}

func NewTextClient(baseURL, token, model string, maxTokens int) (*textClient, error) {
	if token == "" {
		return nil, fmt.Errorf("token is empty")
	}

	cfg := goopenai.DefaultConfig(token)
	cfg.BaseURL = baseURL

	return &textClient{
		api:       goopenai.NewClientWithConfig(cfg),
		model:     model,
		maxTokens: maxTokens,
	}, nil
}

// CompleteText issues a single non-streaming completion and concatenates
// all returned choice texts in order. The second return value is the
// provider's created timestamp.
func (c *textClient) CompleteText(ctx context.Context, prompt string) (string, int64, error) {
	resp, err := c.api.CreateCompletion(ctx, goopenai.CompletionRequest{
		Model:     c.model,
		Prompt:    prompt,
		MaxTokens: c.maxTokens,
	})
	if err != nil {
		return "", 0, fmt.Errorf("creating completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", 0, fmt.Errorf("no choices in response")
	}

	var sb strings.Builder
	for _, choice := range resp.Choices {
		sb.WriteString(choice.Text)
	}

	return sb.String(), resp.Created, nil
}
