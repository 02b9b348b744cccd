// Package beta relates orifice diameter ratio, volumetric flow and differential
// pressure through the incompressible orifice equation
//
//	Q = C_eff · ε · π(βD)²/4 · sqrt(2ΔP / (ρ(1−β⁴)))
//
// All quantities are SI: m, Pa, kg/m³, m³/s. Every function is pure
package beta

import "math"

// Meter holds the fixed pipe, fluid and coefficient values of one meter run
type Meter struct {
	D       float64 // pipe internal diameter, m
	Rho     float64 // fluid density, kg/m³
	CEff    float64 // effective discharge coefficient
	Epsilon float64 // expansibility factor, 1 for liquids
}

// Params is a Meter operating at a differential pressure
type Params struct {
	Meter
	DeltaP float64 // Pa
}

// BetaResult is a sized orifice
type BetaResult struct {
	Beta     float64 // d/D
	Diameter float64 // orifice diameter d, m
}

func finitePositive(v float64) bool { return v > 0 && !math.IsInf(v, 1) }

func (m Meter) validate() error {
	switch {
	case !finitePositive(m.D):
		return domainErr("D", m.D, "must be > 0")
	case !finitePositive(m.Rho):
		return domainErr("rho", m.Rho, "must be > 0")
	case !finitePositive(m.CEff):
		return domainErr("c_eff", m.CEff, "must be > 0")
	case !(m.Epsilon > 0 && m.Epsilon <= 1):
		return domainErr("epsilon", m.Epsilon, "must be in (0, 1]")
	}
	return nil
}

func (p Params) validate() error {
	if err := p.Meter.validate(); err != nil {
		return err
	}
	if !finitePositive(p.DeltaP) {
		return domainErr("deltaP", p.DeltaP, "must be > 0")
	}
	return nil
}

func validBeta(b float64) error {
	if !(b > 0 && b < 1) {
		return domainErr("beta", b, "must be in (0, 1)")
	}
	return nil
}

// flow evaluates the equation with no checks; callers guarantee the domain
func flow(b float64, p Params) float64 {
	d := b * p.D
	area := math.Pi * d * d / 4
	b2 := b * b
	return p.CEff * p.Epsilon * area * math.Sqrt(2*p.DeltaP/(p.Rho*(1-b2*b2)))
}

// FlowFromBeta returns the volumetric flow Q for diameter ratio b
func FlowFromBeta(b float64, p Params) (float64, error) {
	if err := validBeta(b); err != nil {
		return 0, err
	}
	if err := p.validate(); err != nil {
		return 0, err
	}
	return flow(b, p), nil
}

// FlowFromDiameter returns Q for an orifice of diameter d (β = d/D)
func FlowFromDiameter(d float64, p Params) (float64, error) {
	if !finitePositive(d) {
		return 0, domainErr("d", d, "must be > 0")
	}
	if d >= p.D {
		return 0, domainErr("d", d, "must be smaller than D")
	}
	return FlowFromBeta(d/p.D, p)
}

// DeltaPFromQd returns the differential pressure that drives flow q through an
// orifice of diameter d
//
//	ΔP = 8ρ(1−β⁴)Q² / (C_eff² ε² π² d⁴),  β = d/D
func DeltaPFromQd(q, d float64, m Meter) (float64, error) {
	if !finitePositive(q) {
		return 0, domainErr("Q", q, "must be > 0")
	}
	if !finitePositive(d) {
		return 0, domainErr("d", d, "must be > 0")
	}
	if err := m.validate(); err != nil {
		return 0, err
	}
	if d >= m.D {
		return 0, domainErr("d", d, "must be smaller than D")
	}
	b := d / m.D
	b2 := b * b
	d2 := d * d
	num := 8 * m.Rho * (1 - b2*b2) * q * q
	den := m.CEff * m.CEff * m.Epsilon * m.Epsilon * math.Pi * math.Pi * d2 * d2
	return num / den, nil
}
