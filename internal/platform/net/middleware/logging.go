package middleware

import (
	"net/http"

	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/logger"
	pnet "github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/net"
)

// RequestLogger copies chi's request id into the logger context and echoes it back as X-Request-ID
// must run after RequestID
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := pnet.RequestID(r.Context())
		if reqID != "" {
			w.Header().Set("X-Request-ID", reqID)
		}
		ctx := logger.WithRequest(r.Context(), reqID, "")
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
