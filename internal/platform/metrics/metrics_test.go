package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordCalculation(t *testing.T) {
	c := NewCollector("orifice", false)
	c.RecordCalculation("beta", "ok")
	c.RecordCalculation("beta", "ok")
	c.RecordCalculation("beta", "range")

	if got := testutil.ToFloat64(c.CalculationsTotal.WithLabelValues("beta", "ok")); got != 2 {
		t.Fatalf("ok count = %v", got)
	}
	if got := testutil.ToFloat64(c.CalculationsTotal.WithLabelValues("beta", "range")); got != 1 {
		t.Fatalf("range count = %v", got)
	}
}

func TestRecordBisection(t *testing.T) {
	c := NewCollector("orifice", false)
	c.RecordBisection(21, true)
	c.RecordBisection(100, false)
	if got := testutil.ToFloat64(c.UnconvergedTotal); got != 1 {
		t.Fatalf("unconverged = %v", got)
	}
	if n := testutil.CollectAndCount(c.BisectionIterations); n != 1 {
		t.Fatalf("histogram series = %d", n)
	}
}

func TestRecordAPIRequestAndHandler(t *testing.T) {
	c := NewCollector("orifice", false)
	c.RecordAPIRequest("POST", "/api/v1/sizing/beta", 200, 3*time.Millisecond)
	c.NewTimer("flow").ObserveDuration()

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	for _, want := range []string{
		`orifice_api_requests_total{method="POST",route="/api/v1/sizing/beta",status="200"} 1`,
		`orifice_calculation_duration_seconds_count{operation="flow"} 1`,
	} {
		if !strings.Contains(string(body), want) {
			t.Fatalf("missing %q in:\n%s", want, body)
		}
	}
}

func TestCollectorsAreIsolated(t *testing.T) {
	a := NewCollector("orifice", false)
	b := NewCollector("orifice", false)
	a.RecordCalculation("dp", "ok")
	if got := testutil.ToFloat64(b.CalculationsTotal.WithLabelValues("dp", "ok")); got != 0 {
		t.Fatalf("registries leaked: %v", got)
	}
}

func TestRuntimeCollectors(t *testing.T) {
	c := NewCollector("orifice", true)
	mfs, err := c.Registry().Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	found := false
	for _, mf := range mfs {
		if strings.HasPrefix(mf.GetName(), "go_") {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected go_ runtime metrics")
	}
}
