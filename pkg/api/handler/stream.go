package handler

import (
	"context"
	"net/http"

	"github.com/dskvich/ai-proxy/pkg/prompt"
)

type Streamer interface {
	StreamCompletion(ctx context.Context, prompt string, w http.ResponseWriter) error
}

type stream struct {
	streamer Streamer
}

func NewStream(streamer Streamer) *stream {
	return &stream{streamer: streamer}
}

// Relay forwards the provider's event stream to the caller verbatim. The
// streamer reports an error only before the relay starts, so the error
// contract here is the same as for the buffered routes.
func (s *stream) Relay(w http.ResponseWriter, r *http.Request) {
	userPrompt := r.URL.Query().Get("prompt")
	if userPrompt == "" {
		http.Error(w, "Missing prompt", http.StatusBadRequest)
		return
	}

	templated := prompt.Apply(prompt.ChatTemplate, userPrompt)

	if err := s.streamer.StreamCompletion(r.Context(), templated, w); err != nil {
		writeError(w, r, err)
	}
}
