package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/core/corrections"
	kit "github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/testkit"
)

const siteYAML = `version: 1
kinds:
  tap:
    - {id: flange, factor: 0.99, aliases: [flanged]}
  material:
    - {id: steel, factor: 1}
  orifice:
    - {id: concentric, factor: 1}
`

func write(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestRun_EmbeddedToStdout(t *testing.T) {
	t.Setenv("ORIFICE_TABLES_FILE", "")
	t.Chdir(t.TempDir())
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-out", "-"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit = %d (%s)", code, stderr.String())
	}
	back, err := corrections.Parse(stdout.Bytes(), "stdout")
	if err != nil {
		t.Fatalf("output does not reparse: %v", err)
	}
	if len(back.IDs(corrections.KindTap)) != 6 {
		t.Fatalf("tap ids = %v", back.IDs(corrections.KindTap))
	}
}

func TestRun_YAMLToJSONFile(t *testing.T) {
	in := write(t, "site.yaml", siteYAML)
	out := filepath.Join(t.TempDir(), "nested", "tables.json")
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-in", in, "-out", out, "-v"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit = %d (%s)", code, stderr.String())
	}
	kit.MustContain(t, stderr.String(), "wrote "+out)

	tb, err := corrections.LoadFile(out)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if tb.Lookup(corrections.KindTap, "Flanged") != 0.99 {
		t.Fatalf("alias lost")
	}
}

func TestRun_Check(t *testing.T) {
	in := write(t, "site.yaml", siteYAML)
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-in", in, "-check"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit = %d", code)
	}
	if stdout.Len() != 0 {
		t.Fatalf("check wrote output: %s", stdout.String())
	}
	kit.MustContain(t, stderr.String(), "ok: "+in+" (version 1)")

	bad := write(t, "bad.yaml", strings.Replace(siteYAML, "factor: 0.99", "factor: 2", 1))
	stderr.Reset()
	if code := run([]string{"-in", bad, "-check"}, &stdout, &stderr); code != 1 {
		t.Fatalf("bad factor exit = %d", code)
	}
	kit.MustContain(t, stderr.String(), "outside (0, 1.05]")
}

func TestRun_Missing(t *testing.T) {
	var stdout, stderr bytes.Buffer
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	if code := run([]string{"-in", missing}, &stdout, &stderr); code != 1 {
		t.Fatalf("exit = %d", code)
	}
	kit.MustContain(t, stderr.String(), "  - "+missing)

	if code := run([]string{"-bogus"}, &stdout, &stderr); code != 2 {
		t.Fatalf("bad flag exit = %d", code)
	}
}

func TestResolveInput_Env(t *testing.T) {
	in := write(t, "env.yaml", siteYAML)
	env := func(k string) string {
		if k == "ORIFICE_TABLES_FILE" {
			return in
		}
		return ""
	}
	got, _, err := resolveInput("", env)
	if err != nil || got != in {
		t.Fatalf("resolve = %q %v", got, err)
	}

	_, attempts, err := resolveInput("", func(string) string { return "/no/such/file.yaml" })
	if err == nil || len(attempts) != 1 {
		t.Fatalf("missing env file: %v %v", attempts, err)
	}
}
