package handler

import (
	"context"
	"net/http"

	"github.com/dskvich/ai-proxy/pkg/api/response"
	"github.com/dskvich/ai-proxy/pkg/domain"
)

type TextService interface {
	GenerateText(ctx context.Context, prompt string) (*domain.TextResponse, error)
}

type text struct {
	service TextService
	writer  response.JSONResponseWriter
}

func NewText(service TextService) *text {
	return &text{
		service: service,
		writer:  response.JSONResponseWriter{},
	}
}

func (t *text) Generate(w http.ResponseWriter, r *http.Request) {
	prompt := r.URL.Query().Get("prompt")
	if prompt == "" {
		http.Error(w, "Missing prompt", http.StatusBadRequest)
		return
	}

	resp, err := t.service.GenerateText(r.Context(), prompt)
	if err != nil {
		writeError(w, r, err)
		return
	}

	t.writer.WriteSuccessResponse(w, resp)
}
