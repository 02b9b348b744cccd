package middleware

import (
	"net/http"
	"time"

	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Observer receives one call per finished request, e.g. a prometheus recorder
type Observer func(method, route string, status int, elapsed time.Duration)

// AccessLogOptions configures the zerolog access log
type AccessLogOptions struct {
	// Slow marks requests taking >= Slow as warn level, 0 disables slow marking
	Slow    time.Duration
	Observe Observer
}

// captureWriter wraps the original ResponseWriter and records status & bytes
type captureWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	n, err := cw.ResponseWriter.Write(b)
	if n > 0 {
		cw.bytes += n
	}
	return n, err
}

// AccessLogZerolog logs method, route, status, elapsed, and bytes written
// route is the chi pattern ("/api/v1/sizing/beta"), falling back to the raw path
func AccessLogZerolog(opt AccessLogOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cw := &captureWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			// a panicking handler still counts as a finished 500; the panic is
			// re-raised for the recovery middleware further out
			defer func() {
				rec := recover()
				status := cw.status
				if rec != nil {
					status = http.StatusInternalServerError
				}

				elapsed := time.Since(start)
				route := routePattern(r)
				if opt.Observe != nil {
					opt.Observe(r.Method, route, status, elapsed)
				}

				log := logger.C(r.Context())
				evt := log.Info()
				if status >= http.StatusInternalServerError {
					evt = log.Error()
				} else if opt.Slow > 0 && elapsed >= opt.Slow {
					evt = log.Warn()
				}
				evt.Int("status", status).
					Dur("elapsed", elapsed).
					Str("method", r.Method).
					Str("route", route).
					Str("path", r.URL.Path).
					Int("bytes", cw.bytes).
					Bool("panicked", rec != nil).
					Msg("request done")

				if rec != nil {
					panic(rec)
				}
			}()

			next.ServeHTTP(cw, r)
		})
	}
}

func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}
