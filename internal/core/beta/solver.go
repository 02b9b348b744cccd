package beta

import "math"

// Supported sizing envelope and solver defaults
const (
	BetaMin = 0.25
	BetaMax = 0.72

	DefaultTolerance     = 1e-6 // on the flow residual, m³/s
	DefaultMaxIterations = 100
)

type options struct {
	tol     float64
	maxIter int
}

// Option tunes the bisection
type Option func(*options)

// WithTolerance sets the flow residual below which the solver stops
func WithTolerance(tol float64) Option { return func(o *options) { o.tol = tol } }

// WithMaxIterations caps the number of bisection steps
func WithMaxIterations(n int) Option { return func(o *options) { o.maxIter = n } }

// Solution is the bisection outcome
// Converged is false when the iteration cap ran out; Beta is then the final bracket midpoint
type Solution struct {
	Beta       float64
	Iterations int
	Residual   float64 // Q(Beta) - Q desired, m³/s
	Converged  bool
}

// Solve finds β in [BetaMin, BetaMax] with Q(β) = q by bisection
func Solve(q float64, p Params, opts ...Option) (Solution, error) {
	o := options{tol: DefaultTolerance, maxIter: DefaultMaxIterations}
	for _, fn := range opts {
		fn(&o)
	}
	if !finitePositive(q) {
		return Solution{}, domainErr("Q", q, "must be > 0")
	}
	if err := p.validate(); err != nil {
		return Solution{}, err
	}
	if !finitePositive(o.tol) {
		return Solution{}, domainErr("tolerance", o.tol, "must be > 0")
	}
	if o.maxIter < 1 {
		return Solution{}, domainErr("max_iterations", float64(o.maxIter), "must be >= 1")
	}

	lo, hi := BetaMin, BetaMax
	qLo, qHi := flow(lo, p), flow(hi, p)
	fLo, fHi := qLo-q, qHi-q
	if fLo*fHi > 0 {
		return Solution{}, &RangeError{
			Desired:   q,
			FlowAtMin: qLo,
			FlowAtMax: qHi,
			BetaMin:   BetaMin,
			BetaMax:   BetaMax,
		}
	}
	// an exact root on an edge would otherwise be bisected away from
	if fLo == 0 {
		return Solution{Beta: lo, Converged: true}, nil
	}
	if fHi == 0 {
		return Solution{Beta: hi, Converged: true}, nil
	}

	for i := 1; i <= o.maxIter; i++ {
		mid := (lo + hi) / 2
		fMid := flow(mid, p) - q
		if math.Abs(fMid) < o.tol {
			return Solution{Beta: mid, Iterations: i, Residual: fMid, Converged: true}, nil
		}
		if fLo*fMid < 0 {
			hi = mid
		} else {
			lo, fLo = mid, fMid
		}
	}

	mid := (lo + hi) / 2
	return Solution{Beta: mid, Iterations: o.maxIter, Residual: flow(mid, p) - q}, nil
}

// FindBeta returns the diameter ratio that delivers flow q at p
// Iteration exhaustion is not an error; use Solve to observe it
func FindBeta(q float64, p Params, opts ...Option) (float64, error) {
	s, err := Solve(q, p, opts...)
	if err != nil {
		return 0, err
	}
	return s.Beta, nil
}

// Size returns β and the orifice diameter d = β·D for flow q
func Size(q float64, p Params, opts ...Option) (BetaResult, error) {
	b, err := FindBeta(q, p, opts...)
	if err != nil {
		return BetaResult{}, err
	}
	return BetaResult{Beta: b, Diameter: b * p.D}, nil
}
