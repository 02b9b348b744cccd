// Package corrections maps the installation around an orifice plate to the
// dimensionless factors that scale its base discharge coefficient
//
// Unrecognized categories are neutral (1.00) unless the strict lookups are used
package corrections

import "fmt"

// Straight-run lengths, in pipe diameters, at which installation effects vanish
const (
	UpstreamDiameters   = 10
	DownstreamDiameters = 5
)

// Installation describes the meter run; lengths and D are in metres
type Installation struct {
	D          float64
	Upstream   float64
	Downstream float64
	Material   string
	Tap        string
	Orifice    string
}

// Factors are the correction multipliers applied to C
type Factors struct {
	Tap      float64 `json:"k_tap"`
	Inst     float64 `json:"k_inst"`
	Material float64 `json:"k_material"`
	Orifice  float64 `json:"k_orifice"`
}

// Product is K_tap·K_inst·K_material·K_orifice
func (f Factors) Product() float64 { return f.Tap * f.Inst * f.Material * f.Orifice }

// Effective folds the factors into a base coefficient: C_eff = C·ΠK
func (f Factors) Effective(c float64) float64 { return c * f.Tap * f.Inst * f.Material * f.Orifice }

// InstallationFactor returns K_up·K_down; a run shorter than its recommended
// length scales linearly toward zero
func InstallationFactor(d, upstream, downstream float64) float64 {
	kUp := 1.0
	if up := UpstreamDiameters * d; upstream < up {
		kUp = upstream / up
	}
	kDown := 1.0
	if down := DownstreamDiameters * d; downstream < down {
		kDown = downstream / down
	}
	return kUp * kDown
}

// Compute evaluates every factor with lenient category lookup
func (t *Tables) Compute(in Installation) Factors {
	return Factors{
		Tap:      t.Lookup(KindTap, in.Tap),
		Inst:     InstallationFactor(in.D, in.Upstream, in.Downstream),
		Material: t.Lookup(KindMaterial, in.Material),
		Orifice:  t.Lookup(KindOrifice, in.Orifice),
	}
}

// ComputeStrict is Compute that rejects unrecognized categories and a
// non-physical geometry
func (t *Tables) ComputeStrict(in Installation) (Factors, error) {
	if !(in.D > 0) {
		return Factors{}, fmt.Errorf("corrections: pipe diameter %g must be > 0", in.D)
	}
	if !(in.Upstream >= 0) || !(in.Downstream >= 0) {
		return Factors{}, fmt.Errorf("corrections: straight runs (%g, %g) must be >= 0", in.Upstream, in.Downstream)
	}
	var (
		f   Factors
		err error
	)
	if f.Tap, err = t.Strict(KindTap, in.Tap); err != nil {
		return Factors{}, err
	}
	if f.Material, err = t.Strict(KindMaterial, in.Material); err != nil {
		return Factors{}, err
	}
	if f.Orifice, err = t.Strict(KindOrifice, in.Orifice); err != nil {
		return Factors{}, err
	}
	f.Inst = InstallationFactor(in.D, in.Upstream, in.Downstream)
	return f, nil
}

// Compute evaluates in against the embedded tables
func Compute(in Installation) Factors { return Default().Compute(in) }

// ComputeFactors is Compute in positional form
func ComputeFactors(d, upstream, downstream float64, material, tap, orifice string) Factors {
	return Compute(Installation{
		D:          d,
		Upstream:   upstream,
		Downstream: downstream,
		Material:   material,
		Tap:        tap,
		Orifice:    orifice,
	})
}
