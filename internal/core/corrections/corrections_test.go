package corrections

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	kit "github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/testkit"
)

func TestDefaultTables(t *testing.T) {
	tb := Default()
	cases := []struct {
		kind Kind
		key  string
		want float64
	}{
		{KindTap, "integral", 1.00},
		{KindTap, "flange", 1.00},
		{KindTap, "radius", 0.98},
		{KindTap, "vena", 0.95},
		{KindTap, "corner", 0.97},
		{KindTap, "pipe", 0.96},
		{KindMaterial, "steel", 1.00},
		{KindMaterial, "cast iron", 0.98},
		{KindMaterial, "stainless steel", 1.02},
		{KindMaterial, "plastic", 1.00},
		{KindMaterial, "copper", 1.00},
		{KindOrifice, "integral", 1.00},
		{KindOrifice, "concentric", 1.00},
		{KindOrifice, "eccentric", 0.98},
		{KindOrifice, "segmental", 0.96},
		{KindOrifice, "conical", 1.01},
		{KindOrifice, "edge", 1.00},
		{KindOrifice, "bordo", 1.00},
		{KindOrifice, "excêntrico", 0.98},
		{KindOrifice, "excentrico", 0.98},
		{KindOrifice, "conica", 1.01},
	}
	for _, c := range cases {
		if got := tb.Lookup(c.kind, c.key); got != c.want {
			t.Fatalf("Lookup(%s, %q) = %v, want %v", c.kind, c.key, got, c.want)
		}
		if !tb.Recognized(c.kind, c.key) {
			t.Fatalf("%s %q should be recognized", c.kind, c.key)
		}
	}
}

func TestLookup_CaseInsensitive(t *testing.T) {
	tb := Default()
	for _, key := range []string{"RADIUS", "Radius", "rAdIuS"} {
		if got := tb.Lookup(KindTap, key); got != 0.98 {
			t.Fatalf("Lookup(tap, %q) = %v", key, got)
		}
	}
	if got := tb.Lookup(KindMaterial, "Stainless Steel"); got != 1.02 {
		t.Fatalf("mixed case material = %v", got)
	}
	if got := tb.Lookup(KindOrifice, "EXCÊNTRICO"); got != 0.98 {
		t.Fatalf("folded accented alias = %v", got)
	}
}

func TestLookup_UnrecognizedIsExactlyNeutral(t *testing.T) {
	tb := Default()
	for _, k := range Kinds {
		for _, key := range []string{"", "unobtainium", " steel", "steel ", "cast  iron", "flange-tap"} {
			if got := tb.Lookup(k, key); got != 1.00 {
				t.Fatalf("Lookup(%s, %q) = %v, want exactly 1.00", k, key, got)
			}
		}
	}
	if got := tb.Lookup(Kind(42), "steel"); got != NeutralFactor {
		t.Fatalf("unknown kind should be neutral, got %v", got)
	}
}

func TestStrictLookup(t *testing.T) {
	tb := Default()
	if f, err := tb.Strict(KindTap, "corner"); err != nil || f != 0.97 {
		t.Fatalf("Strict(corner) = %v, %v", f, err)
	}
	_, err := tb.Strict(KindMaterial, "titanium")
	var ue *UnrecognizedCategoryError
	if !errors.As(err, &ue) || ue.Kind != KindMaterial || ue.Key != "titanium" {
		t.Fatalf("want UnrecognizedCategoryError, got %v", err)
	}
	if !errors.Is(err, ErrUnrecognizedCategory) {
		t.Fatalf("errors.Is(ErrUnrecognizedCategory) false")
	}
	kit.MustContain(t, err.Error(), `unrecognized material "titanium"`)
}

func TestInstallationFactor(t *testing.T) {
	d := 0.15
	cases := []struct {
		name     string
		up, down float64
		want     float64
	}{
		{"recommended runs", 10 * d, 5 * d, 1},
		{"longer runs", 30 * d, 20 * d, 1},
		{"half upstream", 5 * d, 5 * d, 0.5},
		{"half downstream", 10 * d, 2.5 * d, 0.5},
		{"both halved", 5 * d, 2.5 * d, 0.25},
	}
	for _, c := range cases {
		if got := InstallationFactor(d, c.up, c.down); got != c.want {
			t.Fatalf("%s: K_inst = %v, want exactly %v", c.name, got, c.want)
		}
	}
	kit.InDelta(t, "short run", InstallationFactor(0.1, 0.8, 0.5), 0.8, 1e-12)
}

func TestCompute_ScenarioIsNeutral(t *testing.T) {
	f := ComputeFactors(0.15, 1.5, 0.75, "steel", "flange", "concentric")
	want := Factors{Tap: 1, Inst: 1, Material: 1, Orifice: 1}
	if f != want {
		t.Fatalf("factors = %+v, want %+v", f, want)
	}
	if f.Effective(0.61) != 0.61 {
		t.Fatalf("C_eff = %v", f.Effective(0.61))
	}
}

func TestCompute_Product(t *testing.T) {
	f := Compute(Installation{
		D:          0.1,
		Upstream:   0.5,
		Downstream: 0.5,
		Material:   "cast iron",
		Tap:        "vena",
		Orifice:    "segmental",
	})
	if f.Tap != 0.95 || f.Material != 0.98 || f.Orifice != 0.96 || f.Inst != 0.5 {
		t.Fatalf("factors = %+v", f)
	}
	kit.InDelta(t, "product", f.Product(), 0.95*0.5*0.98*0.96, 1e-15)
	kit.InDelta(t, "C_eff", f.Effective(0.6), 0.6*0.95*0.5*0.98*0.96, 1e-15)
}

func TestComputeStrict(t *testing.T) {
	tb := Default()
	in := Installation{D: 0.15, Upstream: 1.5, Downstream: 0.75, Material: "steel", Tap: "flange", Orifice: "eccentric"}
	f, err := tb.ComputeStrict(in)
	if err != nil || f.Orifice != 0.98 {
		t.Fatalf("ComputeStrict = %+v, %v", f, err)
	}
	if f != tb.Compute(in) {
		t.Fatalf("strict and lenient disagree on known categories")
	}

	bad := in
	bad.Tap = "weld"
	if _, err := tb.ComputeStrict(bad); !errors.Is(err, ErrUnrecognizedCategory) {
		t.Fatalf("unknown tap should fail strict, got %v", err)
	}
	bad = in
	bad.D = 0
	if _, err := tb.ComputeStrict(bad); err == nil {
		t.Fatalf("zero diameter should fail strict")
	}
	bad = in
	bad.Downstream = -1
	if _, err := tb.ComputeStrict(bad); err == nil {
		t.Fatalf("negative run should fail strict")
	}

	none := in
	none.Upstream = 0
	f, err = tb.ComputeStrict(none)
	if err != nil || f.Inst != 0 {
		t.Fatalf("zero upstream run: K_inst = %v, err = %v", f.Inst, err)
	}
}

func TestFactorsStayInBounds(t *testing.T) {
	tb := Default()
	for _, k := range Kinds {
		for _, e := range tb.Entries(k) {
			if !(e.Factor > 0 && e.Factor <= 1.05) {
				t.Fatalf("%s %q factor %v out of bounds", k, e.ID, e.Factor)
			}
		}
	}
	if ids := tb.IDs(KindTap); len(ids) != 6 || ids[0] != "integral" {
		t.Fatalf("tap ids = %v", ids)
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	tb := Default()
	rows := tb.Entries(KindMaterial)
	rows[0].Factor = 0.1
	if tb.Lookup(KindMaterial, rows[0].ID) == 0.1 {
		t.Fatalf("Entries leaked internal state")
	}
}

func TestKindNames(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Fatalf("ParseKind(%q) = %v, %v", k, got, err)
		}
	}
	if _, err := ParseKind("flange"); err == nil {
		t.Fatalf("ParseKind should reject non-kind names")
	}
	if Kind(9).String() != "kind(9)" {
		t.Fatalf("out of range kind name = %q", Kind(9))
	}
}

const overrideYAML = `version: 1
kinds:
  tap:
    - { id: flange, factor: 0.99 }
    - { id: corner, factor: 0.97 }
  material:
    - id: steel
      factor: 1.0
    - id: duplex
      factor: 1.01
      aliases: [duplex stainless]
  orifice:
    - { id: concentric, factor: 1.0 }
`

func TestLoadFile_YAMLOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	if err := os.WriteFile(path, []byte(overrideYAML), 0o600); err != nil {
		t.Fatal(err)
	}
	tb, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if tb.Source() != path || tb.Version() != 1 {
		t.Fatalf("source/version = %q/%d", tb.Source(), tb.Version())
	}
	if got := tb.Lookup(KindTap, "Flange"); got != 0.99 {
		t.Fatalf("override tap = %v", got)
	}
	if got := tb.Lookup(KindMaterial, "Duplex Stainless"); got != 1.01 {
		t.Fatalf("override alias = %v", got)
	}
	if got := tb.Lookup(KindTap, "radius"); got != 1.00 {
		t.Fatalf("rows absent from the override are neutral, got %v", got)
	}
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"bad version":   "version: 2\nkinds: {tap: [{id: a, factor: 1}], material: [{id: b, factor: 1}], orifice: [{id: c, factor: 1}]}",
		"missing kind":  "version: 1\nkinds: {tap: [{id: a, factor: 1}], material: [{id: b, factor: 1}]}",
		"unknown kind":  "version: 1\nkinds: {tap: [{id: a, factor: 1}], material: [{id: b, factor: 1}], orifice: [{id: c, factor: 1}], weld: [{id: d, factor: 1}]}",
		"zero factor":   "version: 1\nkinds: {tap: [{id: a, factor: 0}], material: [{id: b, factor: 1}], orifice: [{id: c, factor: 1}]}",
		"large factor":  "version: 1\nkinds: {tap: [{id: a, factor: 1.2}], material: [{id: b, factor: 1}], orifice: [{id: c, factor: 1}]}",
		"duplicate id":  "version: 1\nkinds: {tap: [{id: a, factor: 1}, {id: A, factor: 0.9}], material: [{id: b, factor: 1}], orifice: [{id: c, factor: 1}]}",
		"empty id":      "version: 1\nkinds: {tap: [{id: '', factor: 1}], material: [{id: b, factor: 1}], orifice: [{id: c, factor: 1}]}",
		"unknown field": "version: 1\nkinds: {tap: [{id: a, factor: 1, colour: red}], material: [{id: b, factor: 1}], orifice: [{id: c, factor: 1}]}",
		"not a doc":     "[1, 2",
	}
	for name, doc := range cases {
		if _, err := Parse([]byte(doc), name); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected read error")
	}
}

func TestCanonical(t *testing.T) {
	tb := Default()
	cases := []struct {
		kind Kind
		key  string
		want string
		ok   bool
	}{
		{KindTap, "INTEGRAL", "integral", true},
		{KindTap, "Vena Contracta", "vena", true},
		{KindOrifice, "Excêntrico", "eccentric", true},
		{KindOrifice, "concentrico", "concentric", true},
		{KindMaterial, "Stainless Steel", "stainless steel", true},
		{KindMaterial, "granite", "", false},
		{Kind(99), "flange", "", false},
	}
	for _, c := range cases {
		got, ok := tb.Canonical(c.kind, c.key)
		if got != c.want || ok != c.ok {
			t.Fatalf("Canonical(%v, %q) = %q %v, want %q %v", c.kind, c.key, got, ok, c.want, c.ok)
		}
	}
}

func TestTables_MarshalJSONReparses(t *testing.T) {
	tb := Default()
	data, err := json.Marshal(tb)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	back, err := Parse(data, "roundtrip")
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	for _, k := range Kinds {
		if !reflect.DeepEqual(back.Entries(k), tb.Entries(k)) {
			t.Fatalf("%s entries differ after reparse", k)
		}
	}
	if !strings.Contains(string(data), `"default_factor":1`) {
		t.Fatalf("meta dropped: %s", data)
	}
}
