package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dskvich/ai-proxy/pkg/domain"
)

type imageClient struct {
	baseURL string
	token   string
	model   string
	steps   int
	hc      *http.Client
}

func NewImageClient(baseURL, token, model string, steps int) (*imageClient, error) {
	if token == "" {
		return nil, fmt.Errorf("token is empty")
	}
	return &imageClient{
		baseURL: baseURL,
		token:   token,
		model:   model,
		steps:   steps,
		hc:      &http.Client{},
	}, nil
}

// GenerateImage requests a single image and returns its base64 payload.
// A non-success status from the provider is returned as a
// domain.UpstreamError carrying the provider's raw error body.
func (c *imageClient) GenerateImage(ctx context.Context, params domain.ImageParams) (string, error) {
	imageRequest := imagesGenerationsRequest{
		Model:          c.model,
		Prompt:         params.Prompt,
		NegativePrompt: params.NegativePrompt,
		Width:          params.Width,
		Height:         params.Height,
		Steps:          c.steps,
		Seed:           params.Seed,
		N:              1,
		ResponseFormat: "b64_json",
	}

	body, err := json.Marshal(imageRequest)
	if err != nil {
		return "", fmt.Errorf("marshaling image request: %w", err)
	}

	url := c.baseURL + "/images/generations"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating HTTP request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("sending request to %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errBody, _ := io.ReadAll(resp.Body)
		return "", &domain.UpstreamError{StatusCode: resp.StatusCode, Body: string(errBody)}
	}

	var imageResponse imagesGenerationsResponse
	if err := json.NewDecoder(resp.Body).Decode(&imageResponse); err != nil {
		return "", fmt.Errorf("decoding response data: %w", err)
	}

	if len(imageResponse.Data) == 0 {
		return "", domain.ErrNoImageData
	}

	return imageResponse.Data[0].B64JSON, nil
}
