package workers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dskvich/ai-proxy/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

type httpServer struct {
	server *http.Server
}

func NewHTTPServer(addr string, h http.Handler) (*httpServer, error) {
	if addr == "" {
		return nil, fmt.Errorf("addr is empty")
	}
	return &httpServer{
		server: &http.Server{
			Addr:              addr,
			Handler:           h,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

func (h *httpServer) Name() string { return "http_server" }

func (h *httpServer) Start(ctx context.Context) error {
	slog.Info("Starting worker", "name", h.Name(), "addr", h.server.Addr)
	defer slog.Info("Worker stopped", "name", h.Name())

	errCh := make(chan error, 1)
	go func() {
		if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listening on %s: %w", h.server.Addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancelFn := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelFn()

	if err := h.server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutting down http server", logger.Err(err))
		return h.server.Close()
	}
	return nil
}
