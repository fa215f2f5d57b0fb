package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/dskvich/ai-proxy/pkg/domain"
	"github.com/dskvich/ai-proxy/pkg/logger"
)

type streamClient struct {
	baseURL string
	token   string
	model   string
	hc      *http.Client
}

func NewStreamClient(baseURL, token, model string) (*streamClient, error) {
	if token == "" {
		return nil, fmt.Errorf("token is empty")
	}
	return &streamClient{
		baseURL: baseURL,
		token:   token,
		model:   model,
		hc:      &http.Client{},
	}, nil
}

// StreamCompletion relays the provider's token stream to w byte-for-byte,
// without parsing or reframing the events. An error is returned only if it
// occurs before anything was written to w; once the relay has started,
// failures are logged and the stream simply ends.
func (c *streamClient) StreamCompletion(ctx context.Context, prompt string, w http.ResponseWriter) error {
	body, err := json.Marshal(completionsRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: true,
	})
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	url := c.baseURL + "/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating HTTP request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("sending request to %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errBody, _ := io.ReadAll(resp.Body)
		return &domain.UpstreamError{StatusCode: resp.StatusCode, Body: string(errBody)}
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, _ := w.(http.Flusher)
	buf := make([]byte, 4096)
	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			if _, writeErr := w.Write(buf[:n]); writeErr != nil {
				slog.ErrorContext(ctx, "writing stream to client", logger.Err(writeErr))
				return nil
			}
			if flusher != nil {
				flusher.Flush()
			}
		}
		if readErr == io.EOF {
			return nil
		}
		if readErr != nil {
			slog.ErrorContext(ctx, "reading stream from provider", logger.Err(readErr))
			return nil
		}
	}
}
