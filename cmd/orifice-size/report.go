package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/units"
	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/services/api/sizing/domain"
)

// fixed rounds half away from zero to places and keeps trailing zeros
func fixed(v float64, places int32) string {
	return decimal.NewFromFloat(v).StringFixed(places)
}

func line(w io.Writer, label, value string) {
	_, _ = fmt.Fprintf(w, "  %-22s %s\n", label, value)
}

func header(w io.Writer, title, calcID string) {
	if calcID != "" {
		_, _ = fmt.Fprintf(w, "%s  [%s]\n", title, calcID)
		return
	}
	_, _ = fmt.Fprintln(w, title)
}

// pressure prints Pa with two decimals and a readable SI form, "50000.00 Pa (50 kPa)"
func pressure(v float64) string {
	return fmt.Sprintf("%s Pa (%s)", fixed(v, 2), humanize.SIWithDigits(v, 2, "Pa"))
}

func length(v float64) string { return units.Format(v, units.Length, "%.4f") }

func flow(v float64) string { return units.Format(v, units.Flow, "%.6g") }

func fluidLines(w io.Writer, f domain.Fluid) {
	line(w, "density", units.Format(f.Density, units.Density, "%g"))
	line(w, "expansibility", fixed(f.Epsilon, 3))
}

func correctionLines(w io.Writer, r domain.CorrectionReport) {
	_, _ = fmt.Fprintln(w, "Corrections")
	line(w, "tap", fmt.Sprintf("%-16s K_tap      %s", r.Tap, fixed(r.KTap, 3)))
	line(w, "installation", fmt.Sprintf("%-16s K_inst     %s", "", fixed(r.KInst, 3)))
	line(w, "material", fmt.Sprintf("%-16s K_material %s", r.Material, fixed(r.KMaterial, 3)))
	line(w, "orifice", fmt.Sprintf("%-16s K_orifice  %s", r.Orifice, fixed(r.KOrifice, 3)))
	line(w, "product", fixed(r.Product, 3))
	base := fixed(r.BaseCoefficient, 3)
	if r.IntegralTap {
		base += " (integral tap)"
	}
	line(w, "base coefficient", base)
	line(w, "effective coefficient", fixed(r.EffectiveCoefficient, 3))
}

func sizeReport(w io.Writer, in domain.SizeInput, out domain.SizeOutput) {
	header(w, "Orifice sizing", out.CalcID)
	line(w, "flow rate", flow(in.FlowRate))
	line(w, "pipe diameter", length(in.PipeDiameter))
	line(w, "differential pressure", pressure(in.DeltaP))
	fluidLines(w, in.Fluid)
	_, _ = fmt.Fprintln(w, "Result")
	line(w, "beta", fixed(out.Beta, 4))
	line(w, "orifice diameter", length(out.OrificeDiameter))
	status := "converged"
	if !out.Converged {
		status = "NOT converged, bracket midpoint"
	}
	line(w, "iterations", fmt.Sprintf("%d (%s, residual %.3g m3/s)", out.Iterations, status, out.Residual))
	correctionLines(w, out.Corrections)
}

func flowReport(w io.Writer, in domain.FlowInput, out domain.FlowOutput) {
	header(w, "Orifice flow", out.CalcID)
	line(w, "pipe diameter", length(in.PipeDiameter))
	line(w, "differential pressure", pressure(in.DeltaP))
	fluidLines(w, in.Fluid)
	_, _ = fmt.Fprintln(w, "Result")
	line(w, "beta", fixed(out.Beta, 4))
	line(w, "orifice diameter", length(out.OrificeDiameter))
	line(w, "flow rate", flow(out.FlowRate))
	correctionLines(w, out.Corrections)
}

func deltaPReport(w io.Writer, in domain.DeltaPInput, out domain.DeltaPOutput) {
	header(w, "Orifice differential pressure", out.CalcID)
	line(w, "flow rate", flow(in.FlowRate))
	line(w, "orifice diameter", length(in.OrificeDiameter))
	line(w, "pipe diameter", length(in.PipeDiameter))
	fluidLines(w, in.Fluid)
	_, _ = fmt.Fprintln(w, "Result")
	line(w, "beta", fixed(out.Beta, 4))
	line(w, "differential pressure", pressure(out.DeltaP))
	correctionLines(w, out.Corrections)
}

func correctionsReport(w io.Writer, out domain.CorrectionReport) {
	header(w, "Orifice corrections", out.CalcID)
	correctionLines(w, out)
}

func tablesReport(w io.Writer, out domain.TablesOutput) {
	mode := "lenient, unknown keys use 1.000"
	if out.Strict {
		mode = "strict, unknown keys are rejected"
	}
	_, _ = fmt.Fprintf(w, "Correction tables v%d from %s (%s)\n", out.Version, out.Source, mode)
	kinds := make([]string, 0, len(out.Kinds))
	for k := range out.Kinds {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		_, _ = fmt.Fprintf(w, "%s\n", k)
		for _, e := range out.Kinds[k] {
			aliases := ""
			if len(e.Aliases) > 0 {
				aliases = "  aka " + strings.Join(e.Aliases, ", ")
			}
			line(w, e.ID, fixed(e.Factor, 3)+aliases)
		}
	}
}
