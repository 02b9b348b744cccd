package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/config"
	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/net/middleware"
)

// CommonStack returns the baseline API middleware, configured from cfg (ORIFICE_API_*)
// observe receives one call per finished request and may be nil
func CommonStack(cfg config.Conf, observe middleware.Observer) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.RequestLogger,

		// safety
		middleware.RecoverJSON,
		middleware.AllowContentType("application/json"),
		middleware.Timeout(cfg.MayDuration("REQUEST_TIMEOUT", 30*time.Second)),

		// observability
		middleware.AccessLogZerolog(middleware.AccessLogOptions{
			Slow:    cfg.MayDuration("SLOW_REQUEST", 250*time.Millisecond),
			Observe: observe,
		}),

		middleware.CORS(middleware.CORSOptions{
			AllowedOrigins: cfg.MayCSV("CORS_ORIGINS", nil),
			MaxAge:         cfg.MayInt("CORS_MAX_AGE", 300),
		}),
		middleware.NoCache(),
		middleware.Compress(flate.BestSpeed),
	}
}
