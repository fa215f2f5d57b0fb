package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/samber/lo"

	"github.com/dskvich/ai-proxy/pkg/domain"
)

const moderationModel = "omni-moderation-latest"

type moderationClient struct {
	baseURL string
	token   string
	hc      *http.Client
}

func NewModerationClient(baseURL, token string) *moderationClient {
	return &moderationClient{
		baseURL: baseURL,
		token:   token,
		hc:      &http.Client{},
	}
}

// ModerateText classifies a plain text prompt. When the call itself fails,
// the verdict is not flagged and the error describes the failure; the
// caller decides whether to proceed.
func (c *moderationClient) ModerateText(ctx context.Context, text string) (bool, error) {
	return c.moderate(ctx, moderationInput{Type: "text", Text: text})
}

// ModerateImage classifies a generated image passed as a base64 PNG.
func (c *moderationClient) ModerateImage(ctx context.Context, imageB64 string) (bool, error) {
	return c.moderate(ctx, moderationInput{
		Type:     "image_url",
		ImageURL: &moderationImageURL{URL: "data:image/png;base64," + imageB64},
	})
}

func (c *moderationClient) moderate(ctx context.Context, input moderationInput) (bool, error) {
	body, err := json.Marshal(moderationsRequest{
		Model: moderationModel,
		Input: []moderationInput{input},
	})
	if err != nil {
		return false, fmt.Errorf("marshaling moderation request: %w", err)
	}

	url := c.baseURL + "/moderations"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("creating HTTP request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.hc.Do(req)
	if err != nil {
		return false, fmt.Errorf("sending request to %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errBody, _ := io.ReadAll(resp.Body)
		return false, &domain.UpstreamError{StatusCode: resp.StatusCode, Body: string(errBody)}
	}

	var moderationResponse moderationsResponse
	if err := json.NewDecoder(resp.Body).Decode(&moderationResponse); err != nil {
		return false, fmt.Errorf("decoding moderation response: %w", err)
	}

	flagged := lo.SomeBy(moderationResponse.Results, func(r moderationResult) bool {
		return r.Flagged
	})

	return flagged, nil
}
