package httpkit

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/config"
	perr "github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/errors"
	phttp "github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/net/http"
)

type in struct {
	Q float64 `json:"flow_rate" validate:"gt=0"`
}

func serve(t *testing.T, mount func(Router)) http.Handler {
	t.Helper()
	srv := phttp.NewServer(config.FromMap(nil))
	mount(srv.Router())
	return srv.Handler()
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	h.ServeHTTP(rec, req)
	return rec
}

func TestMountAPIV1_WithSugar(t *testing.T) {
	h := serve(t, func(r Router) {
		MountAPIV1(r, nil, func(api Router) {
			MountScope(api, "/sizing", nil, func(s Router) {
				PostJSON(s, "/dp", func(_ *http.Request, v in) (any, error) { return v.Q * 2, nil })
				PostJSON(s, "/created", func(*http.Request, in) (any, error) {
					return Response{Status: http.StatusCreated, Body: "x"}, nil
				})
				Get(s, "/tables", func(*http.Request) (any, error) { return []string{"tap"}, nil })
				Get(s, "/fail", func(*http.Request) (any, error) { return nil, perr.NotFoundf("gone") })
				Get(s, "/raw", func(*http.Request) (any, error) { return OK("raw"), nil })
			})
		})
	})

	cases := []struct {
		method, path, body string
		want               int
		contains           string
	}{
		{http.MethodPost, "/api/v1/sizing/dp", `{"flow_rate":0.02}`, 200, "0.04"},
		{http.MethodPost, "/api/v1/sizing/dp", `{"flow_rate":-1}`, 400, "flow_rate"},
		{http.MethodPost, "/api/v1/sizing/created", `{"flow_rate":1}`, 201, ""},
		{http.MethodGet, "/api/v1/sizing/tables", "", 200, "tap"},
		{http.MethodGet, "/api/v1/sizing/fail", "", 404, "gone"},
		{http.MethodGet, "/api/v1/sizing/raw", "", 200, "raw"},
	}
	for _, c := range cases {
		rec := do(h, c.method, c.path, c.body)
		if rec.Code != c.want || !strings.Contains(rec.Body.String(), c.contains) {
			t.Fatalf("%s %s: %d %s", c.method, c.path, rec.Code, rec.Body.String())
		}
	}
}

func TestMountAPI_VersionAndMiddleware(t *testing.T) {
	var hits atomic.Int32
	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			next.ServeHTTP(w, r)
		})
	}
	h := serve(t, func(r Router) {
		MountAPI(r, "/v2/", []func(http.Handler) http.Handler{mw}, func(api Router) {
			Get(api, "/x", func(*http.Request) (any, error) { return 1, nil })
		})
	})
	if rec := do(h, http.MethodGet, "/api/v2/x", ""); rec.Code != 200 {
		t.Fatalf("status = %d", rec.Code)
	}
	if hits.Load() != 1 {
		t.Fatalf("middleware hits = %d", hits.Load())
	}
}

func TestCommonStack(t *testing.T) {
	cfg := config.FromMap(map[string]string{"CORS_ORIGINS": "https://plant.example"})
	var observed atomic.Int32
	h := serve(t, func(r Router) {
		MountAPIV1(r, CommonStack(cfg, func(string, string, int, time.Duration) { observed.Add(1) }), func(api Router) {
			Get(api, "/ok", func(*http.Request) (any, error) { return "fine", nil })
			Get(api, "/panic", func(*http.Request) (any, error) { panic("x") })
			PostJSON(api, "/echo", func(_ *http.Request, v in) (any, error) { return v.Q, nil })
		})
	})

	rec := do(h, http.MethodGet, "/api/v1/ok", "")
	if rec.Code != 200 || rec.Header().Get("X-Request-ID") == "" {
		t.Fatalf("ok: %d %v", rec.Code, rec.Header())
	}
	if rec := do(h, http.MethodGet, "/api/v1/panic", ""); rec.Code != 500 {
		t.Fatalf("panic: %d", rec.Code)
	}
	if observed.Load() != 2 {
		t.Fatalf("observer calls = %d", observed.Load())
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/echo", strings.NewReader("flow_rate=1"))
	req.Header.Set("Content-Type", "text/plain")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("text/plain body: %d", rec.Code)
	}
	req = httptest.NewRequest(http.MethodPost, "/api/v1/echo", strings.NewReader(`{"flow_rate":0.5}`))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("json body: %d %s", rec.Code, rec.Body.String())
	}
}
