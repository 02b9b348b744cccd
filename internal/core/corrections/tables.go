package corrections

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

//go:embed tables.json
var embedded []byte

// TablesVersion is the only schema version Parse accepts
const TablesVersion = 1

// factor bounds every table entry must respect
const (
	minFactor = 0.0 // exclusive
	maxFactor = 1.05
)

// NeutralFactor is returned for categories no table recognizes
const NeutralFactor = 1.00

type rawEntry struct {
	ID      string   `json:"id" yaml:"id"`
	Factor  float64  `json:"factor" yaml:"factor"`
	Aliases []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
}

type rawTables struct {
	Version int                   `json:"version" yaml:"version"`
	Meta    map[string]any        `json:"meta,omitempty" yaml:"meta,omitempty"`
	Kinds   map[string][]rawEntry `json:"kinds" yaml:"kinds"`
}

// Entry is one category row
type Entry struct {
	ID      string   `json:"id"`
	Factor  float64  `json:"factor"`
	Aliases []string `json:"aliases,omitempty"`
}

// Tables is an immutable set of correction tables; safe for concurrent use
type Tables struct {
	version int
	source  string
	meta    map[string]any
	entries [numKinds][]Entry
	index   [numKinds]map[string]float64 // folded id or alias -> factor
}

var foldPool = sync.Pool{
	New: func() any { return transform.Chain(norm.NFC, cases.Fold()) },
}

// foldKey is the case-insensitive key form; whitespace is kept so matching stays exact
func foldKey(s string) string {
	if s == "" {
		return ""
	}
	tr := foldPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	foldPool.Put(tr)
	if err != nil {
		return s
	}
	return out
}

// Parse decodes and validates a YAML or JSON table document
func Parse(data []byte, source string) (*Tables, error) {
	var rt rawTables
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&rt); err != nil {
		return nil, fmt.Errorf("corrections: parse %s: %w", source, err)
	}
	if rt.Version != TablesVersion {
		return nil, fmt.Errorf("corrections: %s: unsupported version %d (want %d)", source, rt.Version, TablesVersion)
	}

	t := &Tables{version: rt.Version, source: source, meta: rt.Meta}
	for name := range rt.Kinds {
		if _, err := ParseKind(name); err != nil {
			return nil, fmt.Errorf("%w in %s", err, source)
		}
	}
	for _, k := range Kinds {
		rows := rt.Kinds[k.String()]
		if len(rows) == 0 {
			return nil, fmt.Errorf("corrections: %s: table %q is empty", source, k)
		}
		idx := make(map[string]float64, len(rows)*2)
		entries := make([]Entry, 0, len(rows))
		for _, r := range rows {
			if r.ID == "" {
				return nil, fmt.Errorf("corrections: %s: %s entry without id", source, k)
			}
			if !(r.Factor > minFactor && r.Factor <= maxFactor) {
				return nil, fmt.Errorf("corrections: %s: %s %q factor %g outside (0, %g]", source, k, r.ID, r.Factor, maxFactor)
			}
			for _, name := range append([]string{r.ID}, r.Aliases...) {
				key := foldKey(name)
				if _, dup := idx[key]; dup {
					return nil, fmt.Errorf("corrections: %s: %s %q defined twice", source, k, name)
				}
				idx[key] = r.Factor
			}
			entries = append(entries, Entry{ID: r.ID, Factor: r.Factor, Aliases: append([]string(nil), r.Aliases...)})
		}
		t.entries[k] = entries
		t.index[k] = idx
	}
	return t, nil
}

// Load returns the tables compiled into the binary
func Load() (*Tables, error) { return Parse(embedded, "embedded tables.json") }

// LoadFile reads an operator supplied table file
func LoadFile(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("corrections: read %s: %w", path, err)
	}
	return Parse(data, path)
}

var defaultTables = sync.OnceValue(func() *Tables {
	t, err := Load()
	if err != nil {
		panic(err)
	}
	return t
})

// Default returns the embedded tables, parsed once
func Default() *Tables { return defaultTables() }

// Version returns the schema version the tables were loaded from
func (t *Tables) Version() int { return t.version }

// Source names where the tables came from
func (t *Tables) Source() string { return t.source }

// MarshalJSON writes the tables back in the document form Parse reads
func (t *Tables) MarshalJSON() ([]byte, error) {
	rt := rawTables{Version: t.version, Meta: t.meta, Kinds: make(map[string][]rawEntry, numKinds)}
	for _, k := range Kinds {
		rows := make([]rawEntry, 0, len(t.entries[k]))
		for _, e := range t.entries[k] {
			rows = append(rows, rawEntry(e))
		}
		rt.Kinds[k.String()] = rows
	}
	return json.Marshal(rt)
}

// Entries returns a copy of the rows of one table
func (t *Tables) Entries(k Kind) []Entry {
	if k >= numKinds {
		return nil
	}
	out := make([]Entry, len(t.entries[k]))
	copy(out, t.entries[k])
	return out
}

// IDs returns the canonical ids of one table in file order
func (t *Tables) IDs(k Kind) []string {
	if k >= numKinds {
		return nil
	}
	ids := make([]string, 0, len(t.entries[k]))
	for _, e := range t.entries[k] {
		ids = append(ids, e.ID)
	}
	return ids
}

// Lookup returns the factor for key, or NeutralFactor when unrecognized
func (t *Tables) Lookup(k Kind, key string) float64 {
	if f, ok := t.find(k, key); ok {
		return f
	}
	return NeutralFactor
}

// Strict is Lookup that reports unrecognized keys
func (t *Tables) Strict(k Kind, key string) (float64, error) {
	if f, ok := t.find(k, key); ok {
		return f, nil
	}
	return 0, &UnrecognizedCategoryError{Kind: k, Key: key}
}

// Recognized reports whether key names a row of table k
func (t *Tables) Recognized(k Kind, key string) bool {
	_, ok := t.find(k, key)
	return ok
}

func (t *Tables) find(k Kind, key string) (float64, bool) {
	if k >= numKinds {
		return 0, false
	}
	f, ok := t.index[k][foldKey(key)]
	return f, ok
}

// Canonical returns the table id that key resolves to, through aliases and case folding
func (t *Tables) Canonical(k Kind, key string) (string, bool) {
	if k >= numKinds {
		return "", false
	}
	fk := foldKey(key)
	for _, e := range t.entries[k] {
		if foldKey(e.ID) == fk {
			return e.ID, true
		}
		for _, a := range e.Aliases {
			if foldKey(a) == fk {
				return e.ID, true
			}
		}
	}
	return "", false
}
