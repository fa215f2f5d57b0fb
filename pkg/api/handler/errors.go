package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dskvich/ai-proxy/pkg/domain"
	"github.com/dskvich/ai-proxy/pkg/logger"
)

// writeError maps pipeline errors onto the route's error contract: the
// provider's own rejection is relayed verbatim with status 400, a missing
// image payload becomes 404, everything else is a generic 500 with the
// full error kept server-side.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var upstreamErr *domain.UpstreamError

	switch {
	case errors.As(err, &upstreamErr):
		http.Error(w, upstreamErr.Body, http.StatusBadRequest)
	case errors.Is(err, domain.ErrNoImageData):
		http.Error(w, "No data", http.StatusNotFound)
	default:
		slog.ErrorContext(r.Context(), "handling request", "path", r.URL.Path, logger.Err(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
