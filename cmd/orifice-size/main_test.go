package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/config"
	perr "github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/errors"
	kit "github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/testkit"
)

func runCLI(t *testing.T, env map[string]string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, config.FromMap(env).Prefix("ORIFICE_"), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestUsage(t *testing.T) {
	code, _, stderr := runCLI(t, nil)
	if code != exitUsage {
		t.Fatalf("no args exit = %d", code)
	}
	kit.MustContain(t, stderr, "usage: orifice-size")

	code, _, stderr = runCLI(t, nil, "weigh")
	if code != exitUsage {
		t.Fatalf("unknown command exit = %d", code)
	}
	kit.MustContain(t, stderr, `unknown command "weigh"`)

	if code, _, _ := runCLI(t, nil, "help"); code != 0 {
		t.Fatalf("help exit = %d", code)
	}
	if code, _, _ := runCLI(t, nil, "size", "-h"); code != 0 {
		t.Fatalf("size -h exit = %d", code)
	}
}

func TestSize_Example(t *testing.T) {
	code, stdout, stderr := runCLI(t, nil, "size", "-example")
	if code != 0 {
		t.Fatalf("exit = %d stderr=%s", code, stderr)
	}
	kit.MustContain(t, stdout, "beta                   0.4271")
	kit.MustContain(t, stdout, "orifice diameter       0.0641 m")
	kit.MustContain(t, stdout, "50000.00 Pa (50 kPa)")
	kit.MustContain(t, stdout, "effective coefficient  0.610")
	kit.MustContain(t, stdout, "converged")
}

func TestSize_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		code int
		frag string
	}{
		{"missing flow", []string{"size", "-D", "0.15", "-dp", "50000"}, exitUsage, "-q is required"},
		{"not a number", []string{"size", "-q", "72m3/h"}, exitUsage, "not a number"},
		{"stray arg", []string{"size", "-example", "extra"}, exitUsage, "unexpected argument"},
		{"unreachable", []string{"size", "-example", "-q", "1"}, 1, "(flow_rate)"},
		{"bad epsilon", []string{"size", "-example", "-eps", "1.5"}, 1, "(epsilon)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, nil, c.args...)
			if code != c.code {
				t.Fatalf("exit = %d, want %d (%s)", code, c.code, stderr)
			}
			kit.MustContain(t, stderr, c.frag)
		})
	}
}

func TestSize_JSONError(t *testing.T) {
	code, stdout, _ := runCLI(t, nil, "size", "-example", "-q", "1", "-json")
	if code != 1 {
		t.Fatalf("exit = %d", code)
	}
	var env struct {
		StatusCode int            `json:"status_code"`
		Code       perr.ErrorCode `json:"code"`
		Field      string         `json:"field"`
	}
	if err := json.Unmarshal([]byte(stdout), &env); err != nil {
		t.Fatalf("decode: %v (%s)", err, stdout)
	}
	if env.StatusCode != 422 || env.Code != perr.ErrorCodeRange || env.Field != "flow_rate" {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestSize_StrictTables(t *testing.T) {
	env := map[string]string{"ORIFICE_TABLES_STRICT": "true"}
	code, _, stderr := runCLI(t, env, "size", "-example", "-tap", "wedge")
	if code != 1 {
		t.Fatalf("exit = %d", code)
	}
	kit.MustContain(t, stderr, "installation.tap_type")

	if code, _, _ := runCLI(t, nil, "size", "-example", "-tap", "wedge"); code != 0 {
		t.Fatalf("lenient lookup should succeed, exit = %d", code)
	}
}

func TestFlow(t *testing.T) {
	code, stdout, stderr := runCLI(t, nil, "flow", "-example")
	if code != 0 {
		t.Fatalf("exit = %d (%s)", code, stderr)
	}
	kit.MustContain(t, stdout, "beta                   0.4774")
	kit.MustContain(t, stdout, "flow rate")

	code, _, stderr = runCLI(t, nil, "flow", "-D", "0.0266", "-dp", "24750.74")
	if code != exitUsage {
		t.Fatalf("neither beta nor d: exit = %d", code)
	}
	kit.MustContain(t, stderr, "-beta or -d")

	code, _, stderr = runCLI(t, nil, "flow", "-example", "-beta", "0")
	if code != 1 {
		t.Fatalf("beta 0: exit = %d (%s)", code, stderr)
	}
	kit.MustContain(t, stderr, "(beta)")

	code, stdout, _ = runCLI(t, nil, "flow", "-example", "-beta", "0.5", "-json")
	if code != 0 || !strings.Contains(stdout, `"beta": 0.5`) {
		t.Fatalf("beta path: %d %s", code, stdout)
	}
}

func TestDeltaP(t *testing.T) {
	code, stdout, stderr := runCLI(t, nil, "dp", "-example")
	if code != 0 {
		t.Fatalf("exit = %d (%s)", code, stderr)
	}
	kit.MustContain(t, stdout, "differential pressure")
	kit.MustContain(t, stdout, "kPa")

	code, _, stderr = runCLI(t, nil, "dp", "-example", "-d", "0.2")
	if code != 1 {
		t.Fatalf("d >= D: exit = %d", code)
	}
	kit.MustContain(t, stderr, "(orifice_diameter)")
}

func TestCorrections_Integral(t *testing.T) {
	code, stdout, stderr := runCLI(t, nil, "corrections", "-D", "0.15", "-tap", "integral")
	if code != 0 {
		t.Fatalf("exit = %d (%s)", code, stderr)
	}
	kit.MustContain(t, stdout, "0.650 (integral tap)")
	kit.MustContain(t, stdout, "effective coefficient  0.650")
}

func TestTables(t *testing.T) {
	code, stdout, _ := runCLI(t, nil, "tables")
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	kit.MustContain(t, stdout, "Correction tables v1 from embedded tables.json")
	kit.MustContain(t, stdout, "aka vena contracta")

	missing := map[string]string{"ORIFICE_TABLES_FILE": filepath.Join(t.TempDir(), "nope.yaml")}
	code, _, stderr := runCLI(t, missing, "tables")
	if code != 3 {
		t.Fatalf("missing tables exit = %d", code)
	}
	kit.MustContain(t, stderr, "load correction tables")
}

func TestTables_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	doc := "version: 1\nkinds:\n  tap: [{id: flange, factor: 0.99}]\n  material: [{id: steel, factor: 1}]\n  orifice: [{id: concentric, factor: 1}]\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	code, stdout, _ := runCLI(t, map[string]string{"ORIFICE_TABLES_FILE": path}, "corrections", "-example")
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	kit.MustContain(t, stdout, "K_tap      0.990")
}

func TestVersion(t *testing.T) {
	code, stdout, _ := runCLI(t, nil, "version")
	if code != 0 || !strings.HasPrefix(stdout, "orifice-size ") {
		t.Fatalf("version: %d %q", code, stdout)
	}
	code, stdout, _ = runCLI(t, nil, "version", "-json")
	if code != 0 || !strings.Contains(stdout, `"service": "orifice-size"`) {
		t.Fatalf("version json: %d %q", code, stdout)
	}
}

func TestFixed(t *testing.T) {
	cases := []struct {
		v      float64
		places int32
		want   string
	}{
		{0.42714, 4, "0.4271"},
		{0.42715, 4, "0.4272"},
		{0.61, 3, "0.610"},
		{49892.105, 2, "49892.11"},
	}
	for _, c := range cases {
		if got := fixed(c.v, c.places); got != c.want {
			t.Fatalf("fixed(%v, %d) = %q, want %q", c.v, c.places, got, c.want)
		}
	}
}
