package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	perr "github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/errors"
	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/logger"
	pnet "github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/net"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// captureLogs points the root logger at buf for the duration of the test
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	t.Cleanup(logger.Replace(zerolog.New(buf).Level(zerolog.DebugLevel)))
	return buf
}

func chain(h http.Handler, mws ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

func TestRequestLogger_PropagatesID(t *testing.T) {
	var seen string
	h := chain(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = pnet.RequestID(r.Context())
		logger.C(r.Context()).Info().Msg("inside")
	}), RequestID(), RequestLogger)

	buf := captureLogs(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if seen != "abc-123" || rec.Header().Get("X-Request-ID") != "abc-123" {
		t.Fatalf("request id not propagated: ctx=%q header=%q", seen, rec.Header().Get("X-Request-ID"))
	}
	if !strings.Contains(buf.String(), `"request_id":"abc-123"`) {
		t.Fatalf("log line missing request_id: %s", buf.String())
	}
}

func TestAccessLog_RouteStatusAndObserver(t *testing.T) {
	buf := captureLogs(t)

	var gotRoute string
	var gotStatus int
	r := chi.NewRouter()
	r.Use(AccessLogZerolog(AccessLogOptions{Observe: func(method, route string, status int, _ time.Duration) {
		gotRoute, gotStatus = route, status
	}}))
	r.Post("/sizing/{op}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte("no"))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sizing/beta", nil))

	if gotRoute != "/sizing/{op}" || gotStatus != http.StatusUnprocessableEntity {
		t.Fatalf("observer got %q %d", gotRoute, gotStatus)
	}
	var line map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("bad log line %q: %v", buf.String(), err)
	}
	if line["status"].(float64) != 422 || line["bytes"].(float64) != 2 || line["path"] != "/sizing/beta" {
		t.Fatalf("unexpected fields: %v", line)
	}
	if line["level"] != "info" {
		t.Fatalf("level = %v", line["level"])
	}
}

func TestAccessLog_Levels(t *testing.T) {
	cases := []struct {
		name   string
		opt    AccessLogOptions
		status int
		sleep  time.Duration
		want   string
	}{
		{"slow", AccessLogOptions{Slow: time.Millisecond}, http.StatusOK, 5 * time.Millisecond, "warn"},
		{"server error", AccessLogOptions{}, http.StatusInternalServerError, 0, "error"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			buf := captureLogs(t)
			h := AccessLogZerolog(c.opt)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				time.Sleep(c.sleep)
				w.WriteHeader(c.status)
			}))
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/raw", nil))
			if !strings.Contains(buf.String(), `"level":"`+c.want+`"`) {
				t.Fatalf("want level %s: %s", c.want, buf.String())
			}
			if !strings.Contains(buf.String(), `"route":"/raw"`) {
				t.Fatalf("raw path fallback missing: %s", buf.String())
			}
		})
	}
}

func TestAccessLog_PanicCountsAsServerError(t *testing.T) {
	buf := captureLogs(t)

	var gotStatus, calls int
	access := AccessLogZerolog(AccessLogOptions{Observe: func(_, _ string, status int, _ time.Duration) {
		gotStatus = status
		calls++
	}})
	h := chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("solver blew up") }), RecoverJSON, access)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sizing/beta", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("recovered status = %d", rec.Code)
	}
	if calls != 1 || gotStatus != http.StatusInternalServerError {
		t.Fatalf("observer calls = %d status = %d", calls, gotStatus)
	}
	if !strings.Contains(buf.String(), `"panicked":true`) || !strings.Contains(buf.String(), `"message":"request done"`) {
		t.Fatalf("panicking request not access-logged: %s", buf.String())
	}

	bare := access(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("again") }))
	defer func() {
		if recover() != "again" {
			t.Fatalf("access log swallowed the panic")
		}
	}()
	bare.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}

func TestRecoverJSON(t *testing.T) {
	_ = captureLogs(t)
	h := chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("kaboom") }), RequestID(), RequestLogger, RecoverJSON)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("X-Request-ID", "rid-9")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	var env pnet.Wire
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Code != perr.ErrorCodePanic || env.RequestID != "rid-9" || env.Error == "" {
		t.Fatalf("bad envelope: %+v", env)
	}
}

func TestRecoverJSON_AbortHandlerRepanics(t *testing.T) {
	h := RecoverJSON(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic(http.ErrAbortHandler) }))
	defer func() {
		if recover() != http.ErrAbortHandler {
			t.Fatalf("expected ErrAbortHandler to propagate")
		}
	}()
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}

func TestCORS_Preflight(t *testing.T) {
	h := CORS(CORSOptions{AllowedOrigins: []string{"https://plant.example"}})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/sizing/beta", nil)
	req.Header.Set("Origin", "https://plant.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://plant.example" {
		t.Fatalf("allow-origin = %q", got)
	}

	req = httptest.NewRequest(http.MethodOptions, "/api/v1/sizing/beta", nil)
	req.Header.Set("Origin", "https://plant.example")
	req.Header.Set("Access-Control-Request-Method", "DELETE")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("DELETE should not be allowed, got origin %q", got)
	}
}

func TestDefaults_Stack(t *testing.T) {
	_ = captureLogs(t)
	r := chi.NewRouter()
	r.Use(Defaults()...)
	r.Get("/boom", func(http.ResponseWriter, *http.Request) { panic("x") })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("heartbeat: %d", rec.Code)
	}
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("panic should map to 500, got %d", rec.Code)
	}
}

func TestHeartbeat(t *testing.T) {
	h := Heartbeat("/ping")(http.NotFoundHandler())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("heartbeat status = %d", rec.Code)
	}
}
