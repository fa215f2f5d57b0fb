package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/dskvich/ai-proxy/pkg/logger"
)

// RequestID tags every request with a short random id so log lines from
// one request can be correlated.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b := make([]byte, 4)
		_, _ = rand.Read(b)

		ctx := logger.ContextWithRequestID(r.Context(), hex.EncodeToString(b))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
