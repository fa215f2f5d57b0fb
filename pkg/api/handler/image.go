package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dskvich/ai-proxy/pkg/api/response"
	"github.com/dskvich/ai-proxy/pkg/domain"
)

type ImageService interface {
	GenerateImage(ctx context.Context, prompt string, width, height int, seed int64) (*domain.ImageResult, error)
}

type image struct {
	service     ImageService
	writer      response.JSONResponseWriter
	defaultSize int
	maxSize     int
}

func NewImage(service ImageService, defaultSize, maxSize int) *image {
	return &image{
		service:     service,
		writer:      response.JSONResponseWriter{},
		defaultSize: defaultSize,
		maxSize:     maxSize,
	}
}

func (i *image) Generate(w http.ResponseWriter, r *http.Request) {
	prompt := r.URL.Query().Get("prompt")
	if prompt == "" {
		http.Error(w, "Missing prompt", http.StatusBadRequest)
		return
	}

	width := parseDimension(r.PathValue("width"), i.defaultSize, i.maxSize)
	height := parseDimension(r.PathValue("height"), i.defaultSize, i.maxSize)

	// Seed is optional; absent or unparseable means "let the provider pick".
	seed, _ := strconv.ParseInt(r.URL.Query().Get("seed"), 10, 64)

	result, err := i.service.GenerateImage(r.Context(), prompt, width, height, seed)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if result.Flagged {
		i.writer.WriteSuccessResponse(w, domain.TextResponse{
			Response:  domain.FlaggedContentMessage,
			CreatedAt: result.CreatedAt,
		})
		return
	}

	i.writer.WriteSuccessResponse(w, domain.ImageResponse{Data: result.Data})
}

// parseDimension parses a path segment as an integer, substitutes def on
// any parse failure, and clamps the result to [1, max].
func parseDimension(raw string, def, max int) int {
	v, err := strconv.Atoi(raw)
	if err != nil {
		v = def
	}
	if v < 1 {
		v = 1
	}
	if v > max {
		v = max
	}
	return v
}
