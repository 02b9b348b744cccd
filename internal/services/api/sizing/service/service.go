// Package service contains the sizing workflows: corrections, then the orifice equation
package service

import (
	"context"

	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/core/beta"
	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/core/corrections"
	perr "github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/errors"
	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/logger"
	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/metrics"
	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/services/api/sizing/domain"

	"github.com/google/uuid"
)

// IntegralDischargeCoefficient replaces the base C when the pressure taps are integral
const IntegralDischargeCoefficient = 0.65

// Categories used when a request leaves one empty
const (
	DefaultTap      = "flange"
	DefaultMaterial = "steel"
	DefaultOrifice  = "concentric"

	integralID = "integral"
)

// Operation names used in logs and metrics
const (
	OpSize        = "beta"
	OpFlow        = "flow"
	OpDeltaP      = "dp"
	OpCorrections = "corrections"
)

// Service defines the sizing service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the sizing service; it is stateless past construction and safe for concurrent use
type Svc struct {
	tables  *corrections.Tables
	cfg     Config
	metrics *metrics.Collector
	newID   func() string
}

// New constructs a sizing service; m may be nil
func New(tables *corrections.Tables, cfg Config, m *metrics.Collector) *Svc {
	if tables == nil {
		panic("sizing.Service requires non nil correction tables")
	}
	return &Svc{tables: tables, cfg: cfg, metrics: m, newID: uuid.NewString}
}

// begin stamps a calculation id on ctx and starts the duration timer
func (s *Svc) begin(ctx context.Context, op string) (context.Context, string, func(error)) {
	id := s.newID()
	ctx = logger.WithCalc(ctx, id)
	var timer *metrics.Timer
	if s.metrics != nil {
		timer = s.metrics.NewTimer(op)
	}
	return ctx, id, func(err error) {
		if s.metrics == nil {
			return
		}
		timer.ObserveDuration()
		outcome := "ok"
		if err != nil {
			outcome = perr.CodeOf(err).String()
		}
		s.metrics.RecordCalculation(op, outcome)
	}
}

// Size finds β and d for the requested flow
func (s *Svc) Size(ctx context.Context, in domain.SizeInput) (out domain.SizeOutput, err error) {
	ctx, id, done := s.begin(ctx, OpSize)
	defer func() { done(err) }()
	log := logger.C(ctx)

	rep, err := s.correct(in.PipeDiameter, in.Fluid.DischargeCoefficient, in.Installation)
	if err != nil {
		return out, mapErr(OpSize, err)
	}
	p := beta.Params{Meter: meter(in.PipeDiameter, in.Fluid, rep.EffectiveCoefficient), DeltaP: in.DeltaP}
	sol, err := beta.Solve(in.FlowRate, p, s.cfg.solverOptions()...)
	if err != nil {
		log.Debug().Err(err).Float64("flow_rate", in.FlowRate).Msg("beta search rejected")
		return out, mapErr(OpSize, err)
	}
	if s.metrics != nil {
		s.metrics.RecordBisection(sol.Iterations, sol.Converged)
	}
	if !sol.Converged {
		log.Warn().
			Int("iterations", sol.Iterations).
			Float64("residual", sol.Residual).
			Float64("tolerance", s.cfg.Tolerance).
			Msg("beta search hit the iteration cap; returning bracket midpoint")
	}

	rep.CalcID = id
	out = domain.SizeOutput{
		CalcID:          id,
		Beta:            sol.Beta,
		OrificeDiameter: sol.Beta * in.PipeDiameter,
		Corrections:     rep,
		Iterations:      sol.Iterations,
		Residual:        sol.Residual,
		Converged:       sol.Converged,
	}
	log.Info().
		Float64("beta", out.Beta).
		Float64("orifice_diameter", out.OrificeDiameter).
		Float64("c_eff", rep.EffectiveCoefficient).
		Int("iterations", sol.Iterations).
		Msg("orifice sized")
	return out, nil
}

// Flow returns Q through a plate given by β or by its diameter
func (s *Svc) Flow(ctx context.Context, in domain.FlowInput) (out domain.FlowOutput, err error) {
	ctx, id, done := s.begin(ctx, OpFlow)
	defer func() { done(err) }()

	switch {
	case in.Beta == nil && in.OrificeDiameter == nil:
		return out, perr.WithOp(perr.WithField(perr.Validationf("one of beta or orifice_diameter is required"), "beta"), OpFlow)
	case in.Beta != nil && in.OrificeDiameter != nil:
		return out, perr.WithOp(perr.WithField(perr.Validationf("beta and orifice_diameter are mutually exclusive"), "orifice_diameter"), OpFlow)
	}

	rep, err := s.correct(in.PipeDiameter, in.Fluid.DischargeCoefficient, in.Installation)
	if err != nil {
		return out, mapErr(OpFlow, err)
	}
	p := beta.Params{Meter: meter(in.PipeDiameter, in.Fluid, rep.EffectiveCoefficient), DeltaP: in.DeltaP}

	var b, q float64
	if in.Beta != nil {
		b = *in.Beta
		q, err = beta.FlowFromBeta(b, p)
	} else {
		b = *in.OrificeDiameter / in.PipeDiameter
		q, err = beta.FlowFromDiameter(*in.OrificeDiameter, p)
	}
	if err != nil {
		return out, mapErr(OpFlow, err)
	}

	rep.CalcID = id
	out = domain.FlowOutput{CalcID: id, Beta: b, OrificeDiameter: b * in.PipeDiameter, FlowRate: q, Corrections: rep}
	logger.C(ctx).Info().Float64("beta", b).Float64("flow_rate", q).Msg("flow computed")
	return out, nil
}

// DeltaP returns the differential pressure the flow produces across the plate
func (s *Svc) DeltaP(ctx context.Context, in domain.DeltaPInput) (out domain.DeltaPOutput, err error) {
	ctx, id, done := s.begin(ctx, OpDeltaP)
	defer func() { done(err) }()

	rep, err := s.correct(in.PipeDiameter, in.Fluid.DischargeCoefficient, in.Installation)
	if err != nil {
		return out, mapErr(OpDeltaP, err)
	}
	dp, err := beta.DeltaPFromQd(in.FlowRate, in.OrificeDiameter, meter(in.PipeDiameter, in.Fluid, rep.EffectiveCoefficient))
	if err != nil {
		return out, mapErr(OpDeltaP, err)
	}

	rep.CalcID = id
	out = domain.DeltaPOutput{CalcID: id, Beta: in.OrificeDiameter / in.PipeDiameter, DeltaP: dp, Corrections: rep}
	logger.C(ctx).Info().Float64("delta_p", dp).Msg("differential pressure computed")
	return out, nil
}

// Corrections evaluates the correction model alone
func (s *Svc) Corrections(ctx context.Context, in domain.CorrectionsInput) (out domain.CorrectionReport, err error) {
	ctx, id, done := s.begin(ctx, OpCorrections)
	defer func() { done(err) }()

	out, err = s.correct(in.PipeDiameter, in.DischargeCoefficient, in.Installation)
	if err != nil {
		return out, mapErr(OpCorrections, err)
	}
	out.CalcID = id
	logger.C(ctx).Debug().Float64("product", out.Product).Msg("corrections computed")
	return out, nil
}

// Tables returns the active correction tables in file order
func (s *Svc) Tables(context.Context) (domain.TablesOutput, error) {
	out := domain.TablesOutput{
		Version: s.tables.Version(),
		Source:  s.tables.Source(),
		Strict:  s.cfg.Strict,
		Kinds:   make(map[string][]domain.TableEntry, len(corrections.Kinds)),
	}
	for _, k := range corrections.Kinds {
		rows := s.tables.Entries(k)
		entries := make([]domain.TableEntry, 0, len(rows))
		for _, e := range rows {
			entries = append(entries, domain.TableEntry{ID: e.ID, Factor: e.Factor, Aliases: e.Aliases})
		}
		out.Kinds[k.String()] = entries
	}
	return out, nil
}

// correct resolves defaults, applies the integral tap rule and evaluates the factors
func (s *Svc) correct(d, c float64, in domain.Installation) (domain.CorrectionReport, error) {
	inst := corrections.Installation{
		D:          d,
		Upstream:   orDefault(in.Upstream, corrections.UpstreamDiameters*d),
		Downstream: orDefault(in.Downstream, corrections.DownstreamDiameters*d),
		Tap:        orDefaultStr(in.Tap, DefaultTap),
		Material:   orDefaultStr(in.Material, DefaultMaterial),
		Orifice:    orDefaultStr(in.Orifice, DefaultOrifice),
	}

	integral := false
	if id, ok := s.tables.Canonical(corrections.KindTap, inst.Tap); ok && id == integralID {
		integral = true
		c = IntegralDischargeCoefficient
		inst.Orifice = integralID
	}

	var (
		f   corrections.Factors
		err error
	)
	if s.cfg.Strict {
		f, err = s.tables.ComputeStrict(inst)
		if err != nil {
			return domain.CorrectionReport{}, err
		}
	} else {
		f = s.tables.Compute(inst)
	}

	return domain.CorrectionReport{
		KTap:                 f.Tap,
		KInst:                f.Inst,
		KMaterial:            f.Material,
		KOrifice:             f.Orifice,
		Product:              f.Product(),
		BaseCoefficient:      c,
		EffectiveCoefficient: f.Effective(c),
		IntegralTap:          integral,
		Tap:                  inst.Tap,
		Material:             inst.Material,
		Orifice:              inst.Orifice,
	}, nil
}

func meter(d float64, fl domain.Fluid, cEff float64) beta.Meter {
	return beta.Meter{D: d, Rho: fl.Density, CEff: cEff, Epsilon: fl.Epsilon}
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func orDefaultStr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
