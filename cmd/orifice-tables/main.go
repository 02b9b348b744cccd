// Command orifice-tables validates a correction table file and writes it out as canonical JSON
//
//	orifice-tables -in site.yaml -out ./internal/core/corrections/tables.json
//	orifice-tables -in site.yaml -check
//	orifice-tables -out -            # embedded tables to stdout
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/core/corrections"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// resolveInput tries, in order: flag, ORIFICE_TABLES_FILE, common locations.
// An empty result means the embedded tables. Attempts are returned for error messages.
func resolveInput(flagIn string, getenv func(string) string) (string, []string, error) {
	var attempts []string
	try := func(p string) bool {
		if p == "" {
			return false
		}
		attempts = append(attempts, p)
		_, err := os.Stat(p)
		return err == nil
	}

	// explicit flag must exist
	if flagIn != "" {
		if try(flagIn) {
			return flagIn, attempts, nil
		}
		return "", attempts, fmt.Errorf("table file %s not found", flagIn)
	}
	// env
	if env := strings.TrimSpace(getenv("ORIFICE_TABLES_FILE")); env != "" {
		if try(env) {
			return env, attempts, nil
		}
		return "", attempts, fmt.Errorf("ORIFICE_TABLES_FILE %s not found", env)
	}
	// common relative and absolute locations
	for _, c := range []string{"./tables.yaml", "./tables.json", "/etc/orifice/tables.yaml"} {
		if try(c) {
			return c, attempts, nil
		}
	}
	return "", attempts, nil
}

func load(path string) (*corrections.Tables, error) {
	if path == "" {
		return corrections.Load()
	}
	return corrections.LoadFile(path)
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("orifice-tables", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		in      = fs.String("in", "", "table file (YAML or JSON). If empty, ORIFICE_TABLES_FILE, ./tables.yaml, then the embedded tables")
		out     = fs.String("out", "-", "output path or '-' for stdout")
		pretty  = fs.Bool("pretty", true, "pretty-print JSON")
		check   = fs.Bool("check", false, "validate only, write nothing")
		verbose = fs.Bool("v", false, "verbose logging")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	fail := func(err error) int {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	path, attempts, err := resolveInput(strings.TrimSpace(*in), os.Getenv)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "failed to locate tables (looked in):\n")
		for _, a := range attempts {
			_, _ = fmt.Fprintf(stderr, "  - %s\n", a)
		}
		return fail(err)
	}

	tables, err := load(path)
	if err != nil {
		return fail(err)
	}
	if *verbose || *check {
		for _, k := range corrections.Kinds {
			_, _ = fmt.Fprintf(stderr, "%-8s %d entries\n", k, len(tables.Entries(k)))
		}
	}
	if *check {
		_, _ = fmt.Fprintf(stderr, "ok: %s (version %d)\n", tables.Source(), tables.Version())
		return 0
	}

	var enc []byte
	if *pretty {
		enc, err = json.MarshalIndent(tables, "", "  ")
	} else {
		enc, err = json.Marshal(tables)
	}
	if err != nil {
		return fail(err)
	}

	if *out == "-" {
		if _, err := stdout.Write(append(enc, '\n')); err != nil {
			return fail(err)
		}
		return 0
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		return fail(err)
	}
	if err := os.WriteFile(*out, enc, 0o644); err != nil {
		return fail(err)
	}
	if *verbose {
		_, _ = fmt.Fprintf(stderr, "wrote %s (%s)\n", *out, humanize.Bytes(uint64(len(enc))))
	}
	return 0
}
