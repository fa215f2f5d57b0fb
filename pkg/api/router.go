package api

import (
	"net/http"

	"github.com/dskvich/ai-proxy/pkg/api/handler"
	"github.com/dskvich/ai-proxy/pkg/api/middleware"
)

type RouterConfig struct {
	TextService      handler.TextService
	ImageService     handler.ImageService
	Streamer         handler.Streamer
	AllowedOrigins   []string
	DefaultImageSize int
	MaxImageSize     int
}

// NewRouter wires the routes under the shared /ai prefix and wraps them
// with the request-id and CORS middleware.
func NewRouter(cfg RouterConfig) http.Handler {
	textHandler := handler.NewText(cfg.TextService)
	imageHandler := handler.NewImage(cfg.ImageService, cfg.DefaultImageSize, cfg.MaxImageSize)
	streamHandler := handler.NewStream(cfg.Streamer)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /ai", streamHandler.Relay)
	mux.HandleFunc("GET /ai/txt2txt", textHandler.Generate)
	mux.HandleFunc("GET /ai/txt2img/{width}/{height}", imageHandler.Generate)

	return middleware.RequestID(middleware.CORS(cfg.AllowedOrigins)(mux))
}
